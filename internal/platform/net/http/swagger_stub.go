//go:build !swag

package http

// MountSwagger is a no-op without the swag build tag
func MountSwagger(r Router, enabled bool) {}
