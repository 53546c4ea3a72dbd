// Package either combines two service (or layer) implementations into a
// single type, with the active branch decided at construction time. It is
// the building block for "apply this layer only if configured".
package either

import "github.com/l-vitaly/layerkit/service"

// Either dispatches every call to one of two services sharing the same
// shape. The branch is fixed when the value is built; dispatch is a single
// tag check per call.
type Either[Cx, Req, Resp any] struct {
	a, b service.Service[Cx, Req, Resp]
	useB bool
}

// A selects the first branch.
func A[Cx, Req, Resp any](svc service.Service[Cx, Req, Resp]) Either[Cx, Req, Resp] {
	return Either[Cx, Req, Resp]{a: svc}
}

// B selects the second branch.
func B[Cx, Req, Resp any](svc service.Service[Cx, Req, Resp]) Either[Cx, Req, Resp] {
	return Either[Cx, Req, Resp]{b: svc, useB: true}
}

func (e Either[Cx, Req, Resp]) Call(cx Cx, req Req) (Resp, error) {
	if e.useB {
		return e.b.Call(cx, req)
	}
	return e.a.Call(cx, req)
}
