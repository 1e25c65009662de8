package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingle(t *testing.T) {
	w := NewWorld()

	_, err := Single(w, counterComponent)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
	assert.Contains(t, err.Error(), "found 0")

	entry := w.Spawn(counterComponent)
	counterComponent.SetValue(entry, counter{Value: 7})

	got, err := Single(w, counterComponent)
	require.NoError(t, err)
	assert.Equal(t, 7, counterComponent.Get(got).Value)

	w.Spawn(counterComponent)
	_, err = Single(w, counterComponent)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariantViolation))
	assert.Contains(t, err.Error(), "found 2")
}
