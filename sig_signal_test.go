package sig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewSignal(0)
		assert.Equal(t, 0, count.Read())

		require.NoError(t, count.Write(10))
		assert.Equal(t, 10, count.Read())
	})

	t.Run("writing the same value is a no-op", func(t *testing.T) {
		count := NewSignal(5)
		before := count.Version()

		require.NoError(t, count.Write(5))
		assert.Equal(t, before, count.Version())
	})

	t.Run("writing NaN over NaN is a no-op", func(t *testing.T) {
		x := NewSignal(math.NaN())
		before := x.Version()

		require.NoError(t, x.Write(math.NaN()))
		assert.Equal(t, before, x.Version())
	})

	t.Run("writing the same slice shape and contents is a no-op", func(t *testing.T) {
		s := NewSignal([]int{1, 2, 3})
		before := s.Version()

		require.NoError(t, s.Write([]int{1, 2, 3}))
		assert.Equal(t, before, s.Version())

		require.NoError(t, s.Write([]int{1, 2}))
		assert.Greater(t, s.Version(), before)
	})

	t.Run("version strictly increases on a real change", func(t *testing.T) {
		x := NewSignal(1)
		before := x.Version()
		require.NoError(t, x.Write(2))
		assert.Greater(t, x.Version(), before)
	})

	t.Run("zero values", func(t *testing.T) {
		s := NewSignal[error](nil)
		assert.Nil(t, s.Read())
	})

	t.Run("At restores the value captured at enter, ignoring intervening writes", func(t *testing.T) {
		x := NewSignal(1)

		restore := x.At(99)
		assert.Equal(t, 99, x.Read())

		require.NoError(t, x.Write(123)) // intervening write inside the scope
		require.NoError(t, restore())

		assert.Equal(t, 1, x.Read())
	})

	t.Run("Attr/AttrSet forward to the wrapped struct", func(t *testing.T) {
		type point struct{ X, Y int }
		p := NewSignal(&point{X: 1, Y: 2})

		v, err := p.Attr("X")
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		before := p.Version()
		require.NoError(t, p.AttrSet("X", 42))
		assert.Greater(t, p.Version(), before)

		v, err = p.Attr("X")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("Item/ItemSet forward to a wrapped slice", func(t *testing.T) {
		nums := NewSignal([]int{1, 2, 3})

		v, err := nums.Item(0)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		require.NoError(t, nums.ItemSet(0, 9))

		v, err = nums.Item(0)
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})
}
