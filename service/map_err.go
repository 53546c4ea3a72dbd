package service

// MapErr wraps a service and converts its errors through f. Successful
// responses pass through untouched; f runs exactly once per failed call
// and must be safe for reuse across calls.
type MapErr[Cx, Req, Resp any] struct {
	inner Service[Cx, Req, Resp]
	f     func(error) error
}

// NewMapErr returns inner with its errors mapped through f.
func NewMapErr[Cx, Req, Resp any](inner Service[Cx, Req, Resp], f func(error) error) MapErr[Cx, Req, Resp] {
	return MapErr[Cx, Req, Resp]{inner: inner, f: f}
}

func (s MapErr[Cx, Req, Resp]) Call(cx Cx, req Req) (Resp, error) {
	resp, err := s.inner.Call(cx, req)
	if err != nil {
		return resp, s.f(err)
	}
	return resp, nil
}
