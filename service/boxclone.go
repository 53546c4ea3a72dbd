package service

import (
	"io"
	"sync"
)

// CloneService constrains the concrete type erased by BoxCloneService: it
// must be a Service and able to produce an independent copy of itself. The
// bound is checked at construction, so the erasure never grants a type a
// capability it does not have.
type CloneService[Cx, Req, Resp, S any] interface {
	Service[Cx, Req, Resp]
	Cloner[S]
}

// BoxCloneService hides a concrete service type behind a uniform, cloneable
// handle. The handle owns exactly one allocation of the concrete value plus
// a dispatch table of three operations (call, clone, close) generated for
// that concrete type when the handle is constructed.
//
// The table is stateless and depends only on the concrete type, so Clone
// copies it while allocating a disjoint copy of the value; the two handles
// never share state beyond what the concrete Clone itself shares. The
// handle is safe for concurrent use exactly when the concrete service is.
type BoxCloneService[Cx, Req, Resp any] struct {
	raw       any
	vtable    serviceVtable[Cx, Req, Resp]
	closeOnce sync.Once
}

type serviceVtable[Cx, Req, Resp any] struct {
	call  func(raw any, cx Cx, req Req) (Resp, error)
	clone func(raw any) *BoxCloneService[Cx, Req, Resp]
	close func(raw any) error
}

// NewBoxCloneService moves s behind a type-erased handle. Cx, Req and Resp
// must be named at the call site; S is inferred from the argument.
func NewBoxCloneService[Cx, Req, Resp any, S CloneService[Cx, Req, Resp, S]](s S) *BoxCloneService[Cx, Req, Resp] {
	return &BoxCloneService[Cx, Req, Resp]{
		raw: s,
		vtable: serviceVtable[Cx, Req, Resp]{
			call: func(raw any, cx Cx, req Req) (Resp, error) {
				return raw.(S).Call(cx, req)
			},
			clone: func(raw any) *BoxCloneService[Cx, Req, Resp] {
				return NewBoxCloneService[Cx, Req, Resp, S](raw.(S).Clone())
			},
			close: func(raw any) error {
				if c, ok := any(raw.(S)).(io.Closer); ok {
					return c.Close()
				}
				return nil
			},
		},
	}
}

func (b *BoxCloneService[Cx, Req, Resp]) Call(cx Cx, req Req) (Resp, error) {
	return b.vtable.call(b.raw, cx, req)
}

// Clone allocates an independent copy of the underlying concrete service
// and returns a fresh handle over it. The original and the clone are
// closed separately.
func (b *BoxCloneService[Cx, Req, Resp]) Clone() *BoxCloneService[Cx, Req, Resp] {
	return b.vtable.clone(b.raw)
}

// Close runs the concrete service's teardown when it implements io.Closer.
// It runs at most once per handle and never touches a clone's allocation.
func (b *BoxCloneService[Cx, Req, Resp]) Close() error {
	var err error
	b.closeOnce.Do(func() {
		err = b.vtable.close(b.raw)
	})
	return err
}
