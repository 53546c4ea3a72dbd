package layer

// Layers is a push-style accumulator over layers that preserve the service
// shape. Each Push wraps everything accumulated so far, so the last layer
// pushed ends up outermost.
type Layers[S any] struct {
	layer Layer[S, S]
}

// NewLayers returns an accumulator holding only Identity.
func NewLayers[S any]() Layers[S] {
	return Layers[S]{layer: Identity[S]{}}
}

// Push wraps the accumulated chain with outer.
func (l Layers[S]) Push(outer Layer[S, S]) Layers[S] {
	return Layers[S]{layer: NewStack[S, S, S](l.layer, outer)}
}

// PushOptional pushes outer when non-nil and Identity otherwise, so a
// conditionally configured layer keeps the chain's type uniform.
func (l Layers[S]) PushOptional(outer Layer[S, S]) Layers[S] {
	if outer == nil {
		return l.Push(Identity[S]{})
	}
	return l.Push(outer)
}

func (l Layers[S]) Layer(inner S) S {
	return l.layer.Layer(inner)
}
