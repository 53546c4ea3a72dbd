package layer

import "github.com/l-vitaly/layerkit/service"

// MapErrLayer applies the MapErr combinator as a layer.
type MapErrLayer[Cx, Req, Resp any] struct {
	f func(error) error
}

// NewMapErr returns a layer that maps the wrapped service's errors
// through f.
func NewMapErr[Cx, Req, Resp any](f func(error) error) MapErrLayer[Cx, Req, Resp] {
	return MapErrLayer[Cx, Req, Resp]{f: f}
}

func (l MapErrLayer[Cx, Req, Resp]) Layer(inner service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return service.NewMapErr(inner, l.f)
}
