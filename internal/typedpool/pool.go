package typedpool

import (
	"sync"
	"sync/atomic"
)

// Pool hands out zeroed values of type T and keeps track of how many of
// them are currently checked out.
type Pool[T any] struct {
	pool sync.Pool
	live atomic.Int64
}

func New[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
	}
}

// Get returns a pointer to a zero T. The caller owns it until it is
// passed back to Put.
func (p *Pool[T]) Get() *T {
	p.live.Add(1)
	return p.pool.Get().(*T)
}

// Put zeroes the value and makes it available for reuse. The pointer
// must not be used afterwards.
func (p *Pool[T]) Put(value *T) {
	var zero T
	*value = zero

	p.live.Add(-1)
	p.pool.Put(value)
}

// Live reports the number of values handed out by Get and not yet returned.
func (p *Pool[T]) Live() int64 {
	return p.live.Load()
}
