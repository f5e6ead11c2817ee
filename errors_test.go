package sig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_cyclicEvaluationIsDetectable(t *testing.T) {
	var a, b *Computed[int]
	a = NewComputedErr(func() (int, error) { return b.TryRead() })
	b = NewComputedErr(func() (int, error) { return a.TryRead() })

	_, err := a.TryRead()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCyclicEvaluation))
}

func TestErrors_readPanicsWithTheUnderlyingError(t *testing.T) {
	var a, b *Computed[int]
	a = NewComputed(func() int { return b.Read() })
	b = NewComputed(func() int { return a.Read() })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrCyclicEvaluation))
	}()

	a.Read()
}

func TestErrors_thunkErrorUnwrapsToTheOriginal(t *testing.T) {
	boom := errors.New("boom")
	c := NewComputedErr(func() (int, error) { return 0, boom })

	_, err := c.TryRead()
	require.Error(t, err)

	var thunkErr *ThunkError
	require.True(t, errors.As(err, &thunkErr))
	assert.ErrorIs(t, err, boom)
}
