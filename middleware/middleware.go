// Package middleware implements the onion model middleware chain for the
// session send path.
//
// Middleware wraps the request dispatch to add cross-cutting concerns
// (logging, timeouts, retries) without touching the dispatch itself.
//
// Onion model execution order:
//
//	Chain(A, B, C)(handler)  →  A(B(C(handler)))
//
//	Request:   A.before → B.before → C.before → handler
//	Response:  handler → C.after → B.after → A.after
//
// Each middleware can pre-process, call next, post-process, or short-circuit
// by returning early without calling next.
package middleware

import (
	"context"

	"ctrader-openapi/messages"
)

// HandlerFunc is the signature of a request dispatch: it takes the inner
// request message and resolves to the correlated response envelope.
type HandlerFunc func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error)

// Middleware takes a handler and returns a new handler that wraps it.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain composes multiple middlewares into a single middleware. It builds the
// chain from right to left so that the first middleware in the list is the
// outermost layer.
func Chain(middlewares ...Middleware) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
