// Package tracing wraps service calls with opentracing spans.
package tracing

import (
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/l-vitaly/layerkit/service"
)

// Layer starts a span per call, finishing it when the call returns and
// tagging it on error.
type Layer[Cx, Req, Resp any] struct {
	tracer        opentracing.Tracer
	operationName string
}

// NewLayer returns a tracing layer recording spans under operationName.
func NewLayer[Cx, Req, Resp any](tracer opentracing.Tracer, operationName string) Layer[Cx, Req, Resp] {
	return Layer[Cx, Req, Resp]{tracer: tracer, operationName: operationName}
}

func (l Layer[Cx, Req, Resp]) Layer(inner service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return service.Func[Cx, Req, Resp](func(cx Cx, req Req) (Resp, error) {
		span := l.tracer.StartSpan(l.operationName)
		defer span.Finish()

		resp, err := inner.Call(cx, req)
		if err != nil {
			ext.Error.Set(span, true)
			span.LogKV("error", err.Error())
		}
		return resp, err
	})
}
