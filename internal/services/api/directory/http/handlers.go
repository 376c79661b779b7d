// Package http provides http transport for the office directory
package http

import (
	stdhttp "net/http"

	"griddesk/internal/modkit/httpkit"
	"griddesk/internal/services/api/directory/domain"
	svc "griddesk/internal/services/api/directory/service"
)

// Register mounts directory endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ResolveInput](r, "/resolve", h.resolve)
	httpkit.PostJSON[domain.HeaderInput](r, "/header", h.header)
}

type handlers struct{ svc svc.Service }

// @Summary Resolve a hierarchy code to its office name
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body domain.ResolveInput true "Query"
// @Success 200 {object} domain.ResolveOutput "ok"
// @Router /directory/resolve [post]
func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}

// @Summary Compose the display header for a code and role
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body domain.HeaderInput true "Query"
// @Success 200 {object} domain.HeaderOutput "ok"
// @Router /directory/header [post]
func (h *handlers) header(r *stdhttp.Request, in domain.HeaderInput) (any, error) {
	return h.svc.Header(r.Context(), in)
}
