// Package layer defines the Layer contract for decorating services and the
// combinators that compose layers into chains.
package layer

// Layer decorates a service, producing a new service that wraps it. S is
// the inner service type and T the produced one, so a layer may change the
// request, response or error shape it exposes to its caller.
//
// Applying a layer must have no side effects beyond what the concrete
// layer documents. A Layer value is meant to be applied once.
type Layer[S, T any] interface {
	Layer(inner S) T
}
