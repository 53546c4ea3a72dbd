// Package service defines the core Service contract: an asynchronous
// function from a request to a response, decoupled from any underlying
// protocol. Both clients and servers are modeled as services, and
// middleware is written as services that wrap an inner service.
package service

// Service is an asynchronous function from a request to a response.
//
// Cx is the caller-defined per-call context type, conventionally a pointer
// to a mutable struct carrying call-scoped metadata (deadlines, tracing,
// routing hints), or context.Context where nothing richer is needed. The
// context belongs to the caller for exactly one call: implementations must
// not retain it past Call's return.
//
// A single instance may serve concurrent calls; Call must be safe without
// external synchronization, so any mutable state inside a service has to
// synchronize itself.
type Service[Cx, Req, Resp any] interface {
	Call(cx Cx, req Req) (Resp, error)
}

// UnaryService is a Service without need of a per-call context, e.g.
// dialing a connection from an address.
type UnaryService[Req, Resp any] interface {
	Call(req Req) (Resp, error)
}

// Cloner is the capability of producing an independent copy of oneself.
// BoxCloneService requires it of the concrete type it erases.
type Cloner[S any] interface {
	Clone() S
}
