package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// kayak is only used by TestTable_ConcurrentFirstUse, so its table
// does not exist before the test runs
type kayak struct {
	Pos int
}

func (k *kayak) Invoke(c coordinates) {
	k.Pos = c.X
}

func TestTable_ConcurrentFirstUse(t *testing.T) {
	const workers = 64

	values := make([]Value[coordinates], workers)

	var group errgroup.Group
	for idx := range workers {
		group.Go(func() error {
			values[idx] = New[coordinates](kayak{Pos: idx})
			return nil
		})
	}

	require.NoError(t, group.Wait())

	for idx := range values {
		require.Same(t, values[0].table, values[idx].table)
	}

	require.Equal(t, int64(workers), values[0].table.live())

	for idx := range values {
		values[idx].Destroy()
	}

	require.Equal(t, int64(0), tableOf[coordinates, kayak](nil).live())
}

func TestTable_OnePerType(t *testing.T) {
	b1 := New[coordinates](boat{})
	b2 := New[coordinates](boat{Pos: 2})
	r := New[coordinates](raft{})

	require.Same(t, b1.table, b2.table)
	require.NotSame(t, b1.table, r.table)
	require.NotEqual(t, b1.table.id, r.table.id)

	require.Equal(t, "poly.boat", b1.table.String())
	require.Equal(t, "poly.raft", r.table.String())
}

func TestTable_Validate(t *testing.T) {
	_ = Validate[coordinates, boat]()
	_ = ValidateEquatable[coordinates, logbook]()

	v := New[coordinates](boat{})
	require.Same(t, tableOf[coordinates, boat](nil), v.table)
}

func TestTable_EmptyTable(t *testing.T) {
	var empty *table[coordinates]

	require.Equal(t, "empty", empty.String())

	payload, err := empty.clone(nil)
	require.NoError(t, err)
	require.True(t, payload == nil)

	empty.invoke(nil, coordinates{X: 1})
	empty.destroy(nil)

	var a, b Value[coordinates]
	require.True(t, empty.equal(&a, &b))
}

func TestTable_EqualRejectsForeignPayload(t *testing.T) {
	b := New[coordinates](boat{Pos: 1})
	r := New[coordinates](raft{Pos: 1})

	require.Panics(t, func() { b.table.equal(&b, &r) })
	require.Panics(t, func() { r.table.equal(&b, &b) })
}
