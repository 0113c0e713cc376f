package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputTracksEvents(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyW, Down: true})
	in.Handle(EventMouseMove{X: 10, Y: 20})
	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.IsKeyDown(KeyA))

	x, y := in.Mouse()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)

	in.Handle(EventMouseButton{Button: MouseLeft, Down: true, X: 3, Y: 4})
	assert.True(t, in.IsButtonDown(MouseLeft))
	x, y = in.Mouse()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)

	in.Handle(EventKey{Key: KeyW, Down: false})
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	assert.False(t, in.IsKeyDown(KeyW))
	assert.False(t, in.IsButtonDown(MouseLeft))
}
