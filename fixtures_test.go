package poly

import (
	"errors"
	"slices"
)

type coordinates struct {
	X int
}

type boat struct {
	Pos int
}

func (b *boat) Invoke(c coordinates) {
	b.Pos = c.X
}

// raft has the same layout as boat, but is a different type
type raft struct {
	Pos int
}

func (r *raft) Invoke(c coordinates) {
	r.Pos = c.X
}

// logbook is not comparable and needs a deep copy
type logbook struct {
	Entries []int
}

func (l *logbook) Invoke(c coordinates) {
	l.Entries = append(l.Entries, c.X)
}

func (l logbook) Equal(other logbook) bool {
	return slices.Equal(l.Entries, other.Entries)
}

func (l logbook) Clone() logbook {
	return logbook{Entries: slices.Clone(l.Entries)}
}

var errLeaking = errors.New("leaking")

// leaky refuses to be copied while it is leaking
type leaky struct {
	Leaking bool
	Pos     int
}

func (l *leaky) Invoke(c coordinates) {
	l.Pos = c.X
}

func (l leaky) TryClone() (leaky, error) {
	if l.Leaking {
		return leaky{}, errLeaking
	}

	return l, nil
}

// anchored counts how often a value was destroyed
type anchored struct {
	Pos       int
	Destroyed *int
}

func (a *anchored) Invoke(c coordinates) {
	a.Pos = c.X
}

func (a *anchored) Destroy() {
	*a.Destroyed += 1
}

// buoy is comparable, but equality is defined by its Equal method:
// buoys in the same ten meter band are equal.
type buoy struct {
	Pos int
}

func (b *buoy) Invoke(c coordinates) {
	b.Pos = c.X
}

func (b buoy) Equal(other buoy) bool {
	return b.Pos/10 == other.Pos/10
}
