// Package net provides utilities for working with request contexts
package net

import (
	"context"

	"griddesk/internal/core/hierarchy"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyViewer ctxKey = "viewer"

// WithRequest annotates context with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithViewer annotates context with the authenticated viewer descriptor
func WithViewer(ctx context.Context, v hierarchy.Viewer) context.Context {
	return context.WithValue(ctx, keyViewer, v)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// ViewerFrom returns the viewer descriptor on the context if present
func ViewerFrom(ctx context.Context) (hierarchy.Viewer, bool) {
	v, ok := ctx.Value(keyViewer).(hierarchy.Viewer)
	return v, ok
}
