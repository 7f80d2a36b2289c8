// Package poly keeps values of unrelated types behind one handle with
// value semantics: copies are deep, moves leave an empty handle behind.
// A type only needs an Invoke method and equality to be stored.
package poly

import (
	"fmt"
	"unsafe"
)

// Value owns a value of some concrete type that supports the domain
// operation Invoke(A). The concrete type is chosen at construction and is
// not part of the static type of the Value.
//
// The zero Value is empty: it holds nothing, Invoke is a no-op and it is
// equal to every other empty Value.
//
// A Value exclusively owns its payload. It must not be copied by
// assignment, use Clone, Take, Assign or MoveFrom instead. A Value is not
// safe for concurrent mutation.
type Value[A any] struct {
	_ noCopy

	// points to the concrete value or is nil if the Value is empty
	payload unsafe.Pointer

	// operations for the concrete type behind payload, nil if the Value is empty
	table *table[A]
}

// Empty returns an empty Value. This is the same as the zero Value.
func Empty[A any]() Value[A] {
	return Value[A]{}
}

// New moves value into a new Value. Equality is Go's == on T,
// unless T implements Equaler.
func New[A any, T comparable, PT Storable[T, A]](value T) Value[A] {
	table := tableOf[A, T, PT](func(lhs, rhs *T) bool { return *lhs == *rhs })
	return newValue(table, unsafe.Pointer(&value))
}

// NewEquatable moves value into a new Value. Equality is T's Equal method.
func NewEquatable[A any, T any, PT EquatableStorable[T, A]](value T) Value[A] {
	table := tableOf[A, T, PT](nil)
	return newValue(table, unsafe.Pointer(&value))
}

func newValue[A any](table *table[A], source unsafe.Pointer) Value[A] {
	// the payload is complete before the Value comes into existence
	payload := table.constructValue(source)
	return Value[A]{payload: payload, table: table}
}

// IsEmpty reports whether v holds no value.
func (v *Value[A]) IsEmpty() bool {
	return v.table == nil
}

// Clone returns an independent deep copy of v. Cloning an empty Value
// returns an empty Value. If the concrete type fails to copy itself,
// the error is returned and nothing is allocated.
func (v *Value[A]) Clone() (Value[A], error) {
	payload, err := v.table.clone(v.payload)
	if err != nil {
		return Value[A]{}, err
	}

	return Value[A]{payload: payload, table: v.table}, nil
}

// Take moves the content of v into a new Value and leaves v empty.
func (v *Value[A]) Take() Value[A] {
	payload, table := v.payload, v.table
	v.payload, v.table = nil, nil
	return Value[A]{payload: payload, table: table}
}

// Assign replaces the content of v with a copy of source. If copying
// fails, v is left untouched. Assigning a Value to itself is allowed.
func (v *Value[A]) Assign(source *Value[A]) error {
	tmp, err := source.Clone()
	if err != nil {
		return err
	}

	v.MoveFrom(&tmp)
	return nil
}

// MoveFrom destroys the current content of v, moves the content of
// source into v and leaves source empty.
func (v *Value[A]) MoveFrom(source *Value[A]) {
	if v == source {
		return
	}

	v.Destroy()

	v.payload, v.table = source.payload, source.table
	source.payload, source.table = nil, nil
}

// Swap exchanges the content of v and other.
func (v *Value[A]) Swap(other *Value[A]) {
	v.payload, other.payload = other.payload, v.payload
	v.table, other.table = other.table, v.table
}

// Destroy releases the content of v. v is empty afterwards and
// can be used again. Destroying an empty Value does nothing.
func (v *Value[A]) Destroy() {
	payload, table := v.payload, v.table
	v.payload, v.table = nil, nil

	table.destroy(payload)
}

// Invoke performs the domain operation on the held value.
// Invoking an empty Value does nothing.
func (v *Value[A]) Invoke(args A) {
	v.table.invoke(v.payload, args)
}

// Equal reports whether v and other hold values of the same concrete type
// that compare equal. Values of different types are never equal.
func (v *Value[A]) Equal(other *Value[A]) bool {
	if v.table != other.table {
		return false
	}

	return v.table.equal(v, other)
}

func (v *Value[A]) String() string {
	if v.table == nil {
		return "poly.Value(empty)"
	}

	return fmt.Sprintf("poly.Value[%s]", v.table.name)
}

// Equal reports whether a and b are equal, see Value.Equal.
func Equal[A any](a, b *Value[A]) bool {
	return a.Equal(b)
}

// NotEqual is the negation of Equal.
func NotEqual[A any](a, b *Value[A]) bool {
	return !a.Equal(b)
}
