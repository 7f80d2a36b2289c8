package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThat(t *testing.T) {
	require.NotPanics(t, func() { That(true, "never") })
	require.PanicsWithValue(t, "bad value 3", func() { That(false, "bad value %d", 3) })
}

func TestSame(t *testing.T) {
	a, b := new(int), new(int)

	require.NotPanics(t, func() { Same(a, a, "int") })
	require.Panics(t, func() { Same(a, b, "int") })
	require.NotPanics(t, func() { Same[int](nil, nil, "int") })
}
