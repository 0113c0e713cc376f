package core

// Layer receives the same hooks as the App. Layers update and render
// bottom-up and see events top-down.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, elapsed, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true stops propagation
}

// LayerStack keeps layers in push order; the last pushed is on top.
type LayerStack struct{ layers []Layer }

func (s *LayerStack) Len() int     { return len(s.layers) }
func (s *LayerStack) Push(l Layer) { s.layers = append(s.layers, l) }
func (s *LayerStack) Top() Layer   { return s.at(len(s.layers) - 1) }

func (s *LayerStack) at(i int) Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// Pop removes the top layer without detaching it.
func (s *LayerStack) Pop() (Layer, bool) {
	top := s.Top()
	if top == nil {
		return nil, false
	}
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]
	return top, true
}

// ForEach visits bottom to top.
func (s *LayerStack) ForEach(visit func(Layer)) {
	for _, l := range s.layers {
		visit(l)
	}
}

// ForEachReverse visits top to bottom until visit returns true.
func (s *LayerStack) ForEachReverse(visit func(Layer) bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if visit(s.layers[i]) {
			return
		}
	}
}

// PushLayer adds l on top of the stack and attaches it.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PopLayer detaches and removes the top layer.
func (e *Engine) PopLayer() (Layer, bool) {
	l, ok := e.Layers.Pop()
	if ok {
		l.OnDetach(e)
	}
	return l, ok
}
