// Package kitadapter converts between layerkit services and go-kit
// endpoints. The translation is pure: requests, responses and errors pass
// through unchanged and the endpoint's context becomes the call context.
// No retry or buffering semantics are added at the boundary.
package kitadapter

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/l-vitaly/layerkit/service"
)

// Endpoint exposes svc as a go-kit endpoint.
func Endpoint[Req, Resp any](svc service.Service[context.Context, Req, Resp]) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		resp, err := svc.Call(ctx, request.(Req))
		if err != nil {
			return nil, err
		}
		return resp, nil
	}
}

// Service exposes a go-kit endpoint as a layerkit service over
// context.Context.
func Service[Req, Resp any](e endpoint.Endpoint) service.Service[context.Context, Req, Resp] {
	return service.Func[context.Context, Req, Resp](func(ctx context.Context, req Req) (Resp, error) {
		resp, err := e(ctx, req)
		if err != nil {
			var zero Resp
			return zero, err
		}
		return resp.(Resp), nil
	})
}

// ServiceWith adapts e for a caller-defined context type, synthesizing the
// endpoint's context from each call's context value.
func ServiceWith[Cx, Req, Resp any](e endpoint.Endpoint, fromCx func(Cx) context.Context) service.Service[Cx, Req, Resp] {
	return service.Func[Cx, Req, Resp](func(cx Cx, req Req) (Resp, error) {
		resp, err := e(fromCx(cx), req)
		if err != nil {
			var zero Resp
			return zero, err
		}
		return resp.(Resp), nil
	})
}
