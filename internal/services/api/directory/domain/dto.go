// Package domain holds directory lookup inputs and outputs
package domain

import "context"

// ResolveInput is the payload for /directory/resolve
type ResolveInput struct {
	Code string `json:"code" validate:"required"`
}

// ResolveOutput carries the cleaned display name for a code
type ResolveOutput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// HeaderInput is the payload for /directory/header
type HeaderInput struct {
	Code string `json:"code" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// HeaderOutput carries the composed header label
type HeaderOutput struct {
	Label string `json:"label"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Resolve(ctx context.Context, in ResolveInput) (ResolveOutput, error)
	Header(ctx context.Context, in HeaderInput) (HeaderOutput, error)
}
