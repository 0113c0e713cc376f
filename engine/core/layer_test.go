package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLayer struct {
	name               string
	handles            bool
	attached, detached bool
	updates, renders   int
	events             []Event
}

func (l *recordingLayer) OnAttach(e *Engine)                { l.attached = true }
func (l *recordingLayer) OnDetach(e *Engine)                { l.detached = true }
func (l *recordingLayer) OnUpdate(e *Engine, _, _ float64)  { l.updates++ }
func (l *recordingLayer) OnRender(e *Engine, alpha float64) { l.renders++ }
func (l *recordingLayer) OnEvent(e *Engine, ev Event) bool {
	l.events = append(l.events, ev)
	return l.handles
}

func TestLayerStackOrder(t *testing.T) {
	var ls LayerStack
	a, b, c := &recordingLayer{name: "a"}, &recordingLayer{name: "b"}, &recordingLayer{name: "c"}
	ls.Push(a)
	ls.Push(b)
	ls.Push(c)
	assert.Equal(t, 3, ls.Len())

	var fwd, rev []string
	ls.ForEach(func(l Layer) { fwd = append(fwd, l.(*recordingLayer).name) })
	ls.ForEachReverse(func(l Layer) bool {
		rev = append(rev, l.(*recordingLayer).name)
		return false
	})
	assert.Equal(t, []string{"a", "b", "c"}, fwd)
	assert.Equal(t, []string{"c", "b", "a"}, rev)
}

func TestLayerStackReverseStops(t *testing.T) {
	var ls LayerStack
	ls.Push(&recordingLayer{name: "a"})
	ls.Push(&recordingLayer{name: "b"})

	var seen []string
	ls.ForEachReverse(func(l Layer) bool {
		seen = append(seen, l.(*recordingLayer).name)
		return true
	})
	assert.Equal(t, []string{"b"}, seen)
}

func TestLayerStackPop(t *testing.T) {
	var ls LayerStack
	_, ok := ls.Pop()
	assert.False(t, ok)

	a := &recordingLayer{name: "a"}
	ls.Push(a)
	l, ok := ls.Pop()
	assert.True(t, ok)
	assert.Same(t, a, l)
	assert.Zero(t, ls.Len())
}

func TestEnginePushPopLayer(t *testing.T) {
	e := &Engine{}
	_, ok := e.PopLayer()
	assert.False(t, ok)

	a, b := &recordingLayer{name: "a"}, &recordingLayer{name: "b"}
	e.PushLayer(a)
	e.PushLayer(b)
	assert.True(t, a.attached)
	assert.Same(t, b, e.Layers.Top())

	l, ok := e.PopLayer()
	assert.True(t, ok)
	assert.Same(t, b, l)
	assert.True(t, b.detached)
	assert.False(t, a.detached)
	assert.Same(t, a, e.Layers.Top())
}
