package poly

// Validate checks at compile time that T can be stored in a Value[A] and
// registers its operation table.
//
//	type Boat struct {
//	   Pos cp.Vector
//	}
//
//	func (b *Boat) Invoke(c cp.Vector) { b.Pos = c }
//
//	var _ = poly.Validate[cp.Vector, Boat]()
//
// A type missing Invoke(A) or not being comparable fails to compile.
func Validate[A any, T comparable, PT Storable[T, A]]() struct{} {
	tableOf[A, T, PT](func(lhs, rhs *T) bool { return *lhs == *rhs })
	return struct{}{}
}

// ValidateEquatable is Validate for types that are compared using their Equal method.
func ValidateEquatable[A any, T any, PT EquatableStorable[T, A]]() struct{} {
	tableOf[A, T, PT](nil)
	return struct{}{}
}
