package sigops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sig "github.com/signified-go/signified"
)

func TestArithmetic(t *testing.T) {
	a := sig.NewSignal(4)
	b := sig.NewSignal(2)

	assert.Equal(t, 6, Add[int](a, b).Read())
	assert.Equal(t, 2, Sub[int](a, b).Read())
	assert.Equal(t, 8, Mul[int](a, b).Read())
	assert.Equal(t, 2, Div[int](a, b).Read())
	assert.Equal(t, -4, Neg[int](a).Read())
}

func TestArithmetic_reactsToOperandChanges(t *testing.T) {
	a := sig.NewSignal(1)
	b := sig.NewSignal(1)
	sum := Add[int](a, b)

	assert.Equal(t, 2, sum.Read())
	require.NoError(t, a.Write(5))
	assert.Equal(t, 6, sum.Read())
}

func TestComparisons(t *testing.T) {
	a := sig.NewSignal(3)
	b := sig.NewSignal(5)

	assert.True(t, Lt[int](a, b).Read())
	assert.False(t, Gt[int](a, b).Read())
	assert.False(t, Eq[int](a, b).Read())
	assert.True(t, Eq[int](a, a).Read())
}

func TestBooleans(t *testing.T) {
	tru := sig.NewSignal(true)
	fls := sig.NewSignal(false)

	assert.False(t, And(tru, fls).Read())
	assert.True(t, Or(tru, fls).Read())
	assert.True(t, Not(fls).Read())
}

func TestAnd_shortCircuitsWithoutUnrefingSecondOperand(t *testing.T) {
	fls := sig.NewSignal(false)
	reads := 0
	tracked := sig.NewComputed(func() bool {
		reads++
		return true
	})

	result := And(fls, tracked)
	assert.False(t, result.Read())
	assert.Equal(t, 0, reads)
}

func TestIf_tracksOnlyTheTakenBranch(t *testing.T) {
	cond := sig.NewSignal(true)
	thenReads, elseReads := 0, 0
	then := sig.NewComputed(func() int { thenReads++; return 1 })
	els := sig.NewComputed(func() int { elseReads++; return 2 })

	result := If[int](cond, then, els)
	assert.Equal(t, 1, result.Read())
	assert.Equal(t, 1, thenReads)
	assert.Equal(t, 0, elseReads)
}
