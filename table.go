package poly

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/oliverbestmann/poly/internal/assert"
	"github.com/oliverbestmann/poly/internal/typedpool"
)

type tableId uint16

// table holds the operations of one concrete type T, working on payloads
// that point to a T. There is exactly one table per concrete type, so
// comparing two table pointers tells whether two payloads have the same type.
//
// The nil table is the table of the empty Value: all operations
// are no-ops and two empty values are equal.
type table[A any] struct {
	name string
	id   tableId

	constructValue func(source unsafe.Pointer) unsafe.Pointer
	cloneValue     func(payload unsafe.Pointer) (unsafe.Pointer, error)
	invokeValue    func(payload unsafe.Pointer, args A)
	destroyValue   func(payload unsafe.Pointer)
	equalValues    func(lhs, rhs unsafe.Pointer) bool

	// number of payloads of this type that are currently alive
	live func() int64
}

func (t *table[A]) String() string {
	if t == nil {
		return "empty"
	}

	return t.name
}

func (t *table[A]) clone(payload unsafe.Pointer) (unsafe.Pointer, error) {
	if t == nil {
		return nil, nil
	}

	return t.cloneValue(payload)
}

func (t *table[A]) invoke(payload unsafe.Pointer, args A) {
	if t == nil {
		return
	}

	t.invokeValue(payload, args)
}

func (t *table[A]) destroy(payload unsafe.Pointer) {
	if t == nil {
		return
	}

	t.destroyValue(payload)
}

// equal compares the payloads of two values that are both bound to t.
// Payloads are never reinterpreted through a table they do not belong to.
func (t *table[A]) equal(lhs, rhs *Value[A]) bool {
	assert.Same(lhs.table, t, "operation table")
	assert.Same(rhs.table, t, "operation table")

	if t == nil {
		return true
	}

	return t.equalValues(lhs.payload, rhs.payload)
}

// tables maps the runtime type of a payload to its *table[A]. The map is
// never mutated after it was published. Writers publish a modified copy.
var tables atomic.Pointer[map[unsafe.Pointer]any]

func init() {
	// initialize the lookup table
	tables.Store(&map[unsafe.Pointer]any{})
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

// tableOf returns the table of T, creating it on first use. equal is used
// to compare two values of T, unless T implements Equaler.
//
// A is fully determined by T: Go has no overloading, so *T can only have one
// Invoke method. The type assertions on the registry content always hold.
func tableOf[A any, T any, PT Storable[T, A]](equal func(lhs, rhs *T) bool) *table[A] {
	ptrToType := abiTypePointerTo(reflect.TypeFor[T]())

	if cached, ok := (*tables.Load())[ptrToType]; ok {
		return cached.(*table[A])
	}

	return ensureTable(ptrToType, func(id tableId) *table[A] {
		return makeTable[A, T, PT](id, equal)
	})
}

func ensureTable[A any](ptrToType unsafe.Pointer, makeTable func(id tableId) *table[A]) *table[A] {
	for {
		previousTables := tables.Load()
		if cached, ok := (*previousTables)[ptrToType]; ok {
			return cached.(*table[A])
		}

		newTable := makeTable(tableId(len(*previousTables) + 1))

		newTables := maps.Clone(*previousTables)
		newTables[ptrToType] = newTable

		if tables.CompareAndSwap(previousTables, &newTables) {
			slog.Debug(
				"New value type registered",
				slog.String("name", newTable.name),
				slog.Int("id", int(newTable.id)),
			)

			return newTable
		}
	}
}

func makeTable[A any, T any, PT Storable[T, A]](id tableId, equal func(lhs, rhs *T) bool) *table[A] {
	name := reflect.TypeFor[T]().String()
	pool := typedpool.New[T]()

	if _, ok := any(PT(nil)).(Equaler[T]); ok {
		equal = func(lhs, rhs *T) bool {
			return any(PT(lhs)).(Equaler[T]).Equal(*rhs)
		}
	}

	assert.That(equal != nil, "type %s has no equality", name)

	copyValue := func(target, source *T) error {
		*target = *source
		return nil
	}

	switch any(PT(nil)).(type) {
	case FallibleCloner[T]:
		copyValue = func(target, source *T) error {
			value, err := any(PT(source)).(FallibleCloner[T]).TryClone()
			if err != nil {
				return err
			}

			*target = value
			return nil
		}

	case Cloner[T]:
		copyValue = func(target, source *T) error {
			*target = any(PT(source)).(Cloner[T]).Clone()
			return nil
		}
	}

	return &table[A]{
		name: name,
		id:   id,

		constructValue: func(source unsafe.Pointer) unsafe.Pointer {
			target := pool.Get()
			*target = *(*T)(source)
			return unsafe.Pointer(target)
		},

		cloneValue: func(payload unsafe.Pointer) (unsafe.Pointer, error) {
			target := pool.Get()

			if err := copyValue(target, (*T)(payload)); err != nil {
				pool.Put(target)
				return nil, fmt.Errorf("clone %s: %w", name, err)
			}

			return unsafe.Pointer(target), nil
		},

		invokeValue: func(payload unsafe.Pointer, args A) {
			PT((*T)(payload)).Invoke(args)
		},

		destroyValue: func(payload unsafe.Pointer) {
			value := (*T)(payload)

			if destroyer, ok := any(PT(value)).(Destroyer); ok {
				destroyer.Destroy()
			}

			pool.Put(value)
		},

		equalValues: func(lhs, rhs unsafe.Pointer) bool {
			return equal((*T)(lhs), (*T)(rhs))
		},

		live: pool.Live,
	}
}
