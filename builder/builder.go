// Package builder declaratively composes layers around a service.
package builder

import (
	"time"

	"github.com/l-vitaly/layerkit/either"
	"github.com/l-vitaly/layerkit/layer"
	"github.com/l-vitaly/layerkit/service"
	"github.com/l-vitaly/layerkit/timeout"
)

// Builder accumulates layers around a uniform service shape and applies
// them all when a terminal Service or ServiceFn call supplies the base.
// The first layer added ends up outermost:
//
//	builder.New[Cx, Req, Resp]().
//		Layer(a).
//		Layer(b).
//		Service(base) // a wraps b wraps base
//
// Layers that change the response type compose through layer.Stack or the
// service combinators directly rather than through the Builder.
type Builder[Cx, Req, Resp any] struct {
	layer layer.Layer[service.Service[Cx, Req, Resp], service.Service[Cx, Req, Resp]]
}

// New returns a Builder holding only the Identity layer.
func New[Cx, Req, Resp any]() *Builder[Cx, Req, Resp] {
	return &Builder[Cx, Req, Resp]{layer: layer.Identity[service.Service[Cx, Req, Resp]]{}}
}

// Layer stacks l under the layers already added, so earlier layers wrap
// later ones.
func (b *Builder[Cx, Req, Resp]) Layer(l layer.Layer[service.Service[Cx, Req, Resp], service.Service[Cx, Req, Resp]]) *Builder[Cx, Req, Resp] {
	b.layer = layer.NewStack(l, b.layer)
	return b
}

// LayerFn adds a layer built from a plain wrapping function.
func (b *Builder[Cx, Req, Resp]) LayerFn(f func(service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp]) *Builder[Cx, Req, Resp] {
	return b.Layer(layer.Fn[service.Service[Cx, Req, Resp], service.Service[Cx, Req, Resp]](f))
}

// OptionLayer adds l when non-nil and the Identity layer otherwise.
func (b *Builder[Cx, Req, Resp]) OptionLayer(l layer.Layer[service.Service[Cx, Req, Resp], service.Service[Cx, Req, Resp]]) *Builder[Cx, Req, Resp] {
	return b.Layer(either.OptionLayer(l))
}

// Timeout fails calls that outlive d. A nil d leaves calls unbounded.
func (b *Builder[Cx, Req, Resp]) Timeout(d *time.Duration) *Builder[Cx, Req, Resp] {
	return b.Layer(timeout.NewLayer[Cx, Req, Resp](d))
}

// MapErr maps the wrapped service's errors through f.
func (b *Builder[Cx, Req, Resp]) MapErr(f func(error) error) *Builder[Cx, Req, Resp] {
	return b.Layer(layer.NewMapErr[Cx, Req, Resp](f))
}

// IntoLayer returns the accumulated chain without applying it.
func (b *Builder[Cx, Req, Resp]) IntoLayer() layer.Layer[service.Service[Cx, Req, Resp], service.Service[Cx, Req, Resp]] {
	return b.layer
}

// Service wraps base with the accumulated layers, returning the composed
// service.
func (b *Builder[Cx, Req, Resp]) Service(base service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return b.layer.Layer(base)
}

// ServiceFn wraps the handler function f with the accumulated layers.
func (b *Builder[Cx, Req, Resp]) ServiceFn(f func(cx Cx, req Req) (Resp, error)) service.Service[Cx, Req, Resp] {
	return b.Service(service.Func[Cx, Req, Resp](f))
}
