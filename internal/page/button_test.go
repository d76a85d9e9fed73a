package page

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewButton_RequiresLabelAndCallback(t *testing.T) {
	_, err := NewButton("x", "", "g", func() {})
	assert.True(t, errors.Is(err, ErrInvalidButton))

	_, err = NewButton("x", "   ", "g", func() {})
	assert.True(t, errors.Is(err, ErrInvalidButton))

	_, err = NewButton("x", "Go", "g", nil)
	assert.True(t, errors.Is(err, ErrInvalidButton))
}

func TestButton_HotkeyAnnotation(t *testing.T) {
	with, err := NewButton("a", "Open", "o", func() {})
	require.NoError(t, err)
	assert.True(t, with.HasHotkey())
	assert.Equal(t, "o", with.Annotation())

	without, err := NewButton("b", "Open", "", func() {})
	require.NoError(t, err)
	assert.False(t, without.HasHotkey())
	assert.Empty(t, without.Annotation())
}

func TestButton_ActivateInvokesCallbackOnce(t *testing.T) {
	calls := 0
	b, err := NewButton("a", "Open", "", func() { calls++ })
	require.NoError(t, err)

	b.Activate()
	assert.Equal(t, 1, calls)
}

func TestButton_ZeroValueActivateIsNoop(t *testing.T) {
	var b Button
	assert.NotPanics(t, b.Activate)
}
