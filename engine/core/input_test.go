package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMouseButtonEdges(t *testing.T) {
	in := NewInput()
	in.BeginFrame()

	in.Handle(EventMouseButton{Button: MouseButtonLeft, Down: true})
	assert.True(t, in.IsButtonDown(MouseButtonLeft))
	assert.True(t, in.WasButtonPressed(MouseButtonLeft))
	assert.False(t, in.WasButtonReleased(MouseButtonLeft))

	// holding: the pressed edge lasts a single frame
	in.BeginFrame()
	assert.True(t, in.IsButtonDown(MouseButtonLeft))
	assert.False(t, in.WasButtonPressed(MouseButtonLeft))

	in.Handle(EventMouseButton{Button: MouseButtonLeft, Down: false})
	assert.False(t, in.IsButtonDown(MouseButtonLeft))
	assert.True(t, in.WasButtonReleased(MouseButtonLeft))
}

func TestRepeatedDownIsNotANewPress(t *testing.T) {
	in := NewInput()
	in.BeginFrame()
	in.Handle(EventKey{Key: KeyA, Down: true})
	in.BeginFrame()
	in.Handle(EventKey{Key: KeyA, Down: true}) // key repeat
	assert.True(t, in.IsKeyDown(KeyA))
	assert.False(t, in.WasKeyPressed(KeyA))
}

func TestTypedCharsAccumulatePerFrame(t *testing.T) {
	in := NewInput()
	in.BeginFrame()
	in.Handle(EventChar{Rune: 'g'})
	in.Handle(EventChar{Rune: 'o'})
	assert.Equal(t, []rune("go"), in.TypedChars())

	in.BeginFrame()
	assert.Empty(t, in.TypedChars())
}

func TestScrollAccumulatesAndResets(t *testing.T) {
	in := NewInput()
	in.BeginFrame()
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 2})
	_, y := in.Scroll()
	assert.Equal(t, 3.0, y)

	in.BeginFrame()
	_, y = in.Scroll()
	assert.Equal(t, 0.0, y)
}

func TestOutOfRangeButtonIgnored(t *testing.T) {
	in := NewInput()
	in.BeginFrame()
	in.Handle(EventMouseButton{Button: MouseButton(9), Down: true})
	assert.False(t, in.IsButtonDown(MouseButtonLeft))
}
