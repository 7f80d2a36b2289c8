package assert

import (
	"fmt"
)

// That panics with the formatted message if cond does not hold.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Same panics if lhs and rhs are not the same pointer.
func Same[T any](lhs, rhs *T, what string) {
	if lhs != rhs {
		panic(fmt.Sprintf("expected same %s, got %p and %p", what, lhs, rhs))
	}
}
