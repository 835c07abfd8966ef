package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	require.Equal(t, 3, Abs(-3))
	require.Equal(t, 3, Abs(3))
	require.Equal(t, 0.5, Abs(-0.5))
}

func TestMean(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		require.Equal(t, 0.0, Mean([]int{}), "Mean of nothing should be 0")
	})

	t.Run("integers", func(t *testing.T) {
		require.Equal(t, 6.0, Mean([]int{1, 11}))
	})

	t.Run("floats", func(t *testing.T) {
		require.InDelta(t, 0.25, Mean([]float64{0, 0, 0, 1}), 1e-9)
	})
}
