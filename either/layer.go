package either

import "github.com/l-vitaly/layerkit/layer"

// Layer dispatches application to one of two layers sharing the same
// shape, fixed at construction.
type Layer[S, T any] struct {
	a, b layer.Layer[S, T]
	useB bool
}

// LayerA selects the first branch.
func LayerA[S, T any](l layer.Layer[S, T]) Layer[S, T] {
	return Layer[S, T]{a: l}
}

// LayerB selects the second branch.
func LayerB[S, T any](l layer.Layer[S, T]) Layer[S, T] {
	return Layer[S, T]{b: l, useB: true}
}

func (e Layer[S, T]) Layer(inner S) T {
	if e.useB {
		return e.b.Layer(inner)
	}
	return e.a.Layer(inner)
}

// OptionLayer converts an optional layer into one that always applies:
// a nil layer becomes Identity, with behavior identical to hand-written
// conditional wrapping.
func OptionLayer[S any](l layer.Layer[S, S]) Layer[S, S] {
	if l == nil {
		return LayerB[S, S](layer.Identity[S]{})
	}
	return LayerA[S, S](l)
}
