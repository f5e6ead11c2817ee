package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanged_identity(t *testing.T) {
	t.Run("nil over nil is unchanged", func(t *testing.T) {
		changed, err := Changed(nil, nil)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("same pointer is unchanged", func(t *testing.T) {
		p := &struct{ N int }{N: 1}
		changed, err := Changed(p, p)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("same slice header is unchanged even if contents differ", func(t *testing.T) {
		s := []int{1, 2, 3}
		changed, err := Changed(s, s)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("distinct slices with equal contents are unchanged via array-like path", func(t *testing.T) {
		changed, err := Changed([]int{1, 2}, []int{1, 2})
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("distinct slices with different contents are changed", func(t *testing.T) {
		changed, err := Changed([]int{1, 2}, []int{1, 3})
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("different length slices are changed", func(t *testing.T) {
		changed, err := Changed([]int{1, 2}, []int{1, 2, 3})
		require.NoError(t, err)
		assert.True(t, changed)
	})
}

func TestChanged_func(t *testing.T) {
	f1 := func() {}
	f2 := func() {}
	changed, err := Changed(f1, f2)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestChanged_nan(t *testing.T) {
	changed, err := Changed(math.NaN(), math.NaN())
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestChanged_structural(t *testing.T) {
	t.Run("equal comparable values are unchanged", func(t *testing.T) {
		changed, err := Changed(5, 5)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("different comparable values are changed", func(t *testing.T) {
		changed, err := Changed(5, 6)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("uncomparable struct panics and is reported as changed", func(t *testing.T) {
		type uncomparable struct{ S []int }
		changed, err := Changed(uncomparable{S: []int{1}}, uncomparable{S: []int{1}})
		require.Error(t, err)
		assert.True(t, changed)
	})
}

func TestChanged_map(t *testing.T) {
	t.Run("equal maps are unchanged", func(t *testing.T) {
		changed, err := Changed(map[string]int{"a": 1}, map[string]int{"a": 1})
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("maps differing in a value are changed", func(t *testing.T) {
		changed, err := Changed(map[string]int{"a": 1}, map[string]int{"a": 2})
		require.NoError(t, err)
		assert.True(t, changed)
	})
}
