package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveCursor(t *testing.T) {
	assert.Equal(t, 1, MoveCursor(0, 5, 3, "down"))
	assert.Equal(t, 0, MoveCursor(0, 5, 3, "up"))
	assert.Equal(t, 4, MoveCursor(4, 5, 3, "down"))
	assert.Equal(t, 3, MoveCursor(0, 5, 3, "pagedown"))
	assert.Equal(t, 0, MoveCursor(2, 5, 3, "pageup"))
	assert.Equal(t, 4, MoveCursor(0, 5, 3, "end"))
	assert.Equal(t, 0, MoveCursor(3, 5, 3, "home"))
	assert.Equal(t, 0, MoveCursor(3, 0, 3, "down"))
}

func TestStatus(t *testing.T) {
	s := NewAppState()
	s.SetError("boom")
	assert.True(t, s.StatusIsError)
	s.SetStatus("ok")
	assert.False(t, s.StatusIsError)
	s.Suggestion = "/items"
	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
	assert.Empty(t, s.Suggestion)
}
