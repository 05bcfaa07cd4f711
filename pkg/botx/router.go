package botx

import (
	"context"
	"strings"
)

// Router returns a multiplexer for handlers.
type Router struct {
	notFound    Handler
	handlers    map[string]Handler
	middlewares []Middleware
}

// NewRouter returns a multiplexer for handlers.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]Handler),
		notFound: NotFound,
	}
}

// Add adds a handler to the router.
func (r *Router) Add(prefix string, h Handler) {
	r.handlers[prefix] = h
}

// Use applies middleware to all handlers.
func (r *Router) Use(mvs ...Middleware) *Router {
	r.middlewares = append(r.middlewares, mvs...)
	return r
}

// NotFound sets a not found handler to the router.
func (r *Router) NotFound(h Handler) {
	r.notFound = h
}

// Handle handles request. The handler with the longest prefix
// matching the request text wins.
func (r *Router) Handle(ctx context.Context, req Request) ([]Response, error) {
	if req.Text == "" {
		return nil, nil
	}

	h, matched := r.notFound, ""
	for prefix, candidate := range r.handlers {
		if prefix == "" || len(prefix) <= len(matched) {
			continue
		}
		if strings.HasPrefix(req.Text, prefix) {
			h, matched = candidate, prefix
		}
	}

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}

	return h(ctx, req)
}
