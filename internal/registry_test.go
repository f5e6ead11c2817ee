package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeUnsubscribe_idempotent(t *testing.T) {
	s := NewSignal(1)
	c := NewComputed(func() (any, error) { return 1, nil })

	Subscribe(s, c)
	Subscribe(s, c) // idempotent

	assert.True(t, s.subs.contains(c))
	assert.Len(t, c.Dependencies(), 1)

	Unsubscribe(s, c)
	Unsubscribe(s, c) // tolerant of double-removal

	assert.False(t, s.subs.contains(c))
	assert.Len(t, c.Dependencies(), 0)
}
