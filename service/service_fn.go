package service

// Func adapts an ordinary function to the Service interface, for handlers
// where a dedicated type would be boilerplate.
type Func[Cx, Req, Resp any] func(cx Cx, req Req) (Resp, error)

func (f Func[Cx, Req, Resp]) Call(cx Cx, req Req) (Resp, error) {
	return f(cx, req)
}

// UnaryFunc adapts an ordinary function to the UnaryService interface.
type UnaryFunc[Req, Resp any] func(req Req) (Resp, error)

func (f UnaryFunc[Req, Resp]) Call(req Req) (Resp, error) {
	return f(req)
}
