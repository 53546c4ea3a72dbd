package service

// MapResponse wraps a service and converts its success value through f,
// possibly changing the response type. Errors pass through untouched; f
// runs exactly once per successful call.
type MapResponse[Cx, Req, Resp, Out any] struct {
	inner Service[Cx, Req, Resp]
	f     func(Resp) Out
}

// NewMapResponse returns inner with its responses mapped through f.
func NewMapResponse[Cx, Req, Resp, Out any](inner Service[Cx, Req, Resp], f func(Resp) Out) MapResponse[Cx, Req, Resp, Out] {
	return MapResponse[Cx, Req, Resp, Out]{inner: inner, f: f}
}

func (s MapResponse[Cx, Req, Resp, Out]) Call(cx Cx, req Req) (Out, error) {
	resp, err := s.inner.Call(cx, req)
	if err != nil {
		var zero Out
		return zero, err
	}
	return s.f(resp), nil
}
