package poly

// Storable is the capability contract of a value stored in a Value[A]:
// a pointer to T must be able to perform the domain operation.
//
//	type Boat struct{ Pos cp.Vector }
//
//	func (b *Boat) Invoke(c cp.Vector) { b.Pos = c }
//
// Storability is structural. T does not embed or implement anything else.
type Storable[T any, A any] interface {
	*T
	Invoke(A)
}

// EquatableStorable is a Storable that defines its own equality. Use it for
// types that are not comparable with ==, e.g. types holding slices or maps.
type EquatableStorable[T any, A any] interface {
	Storable[T, A]
	Equaler[T]
}

// Equaler is implemented by types that compare with a method instead of ==.
// If a type implements it, the method is used even if the type is comparable.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Cloner is implemented by types that need a deep copy, e.g. because
// they own a slice that would otherwise be shared between two values.
type Cloner[T any] interface {
	Clone() T
}

// FallibleCloner is a Cloner that can fail. It takes precedence over Cloner.
type FallibleCloner[T any] interface {
	TryClone() (T, error)
}

// Destroyer is implemented by types that need to release resources
// when the owning Value lets go of them.
type Destroyer interface {
	Destroy()
}
