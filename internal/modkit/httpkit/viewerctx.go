package httpkit

import (
	"net/http"

	"griddesk/internal/core/hierarchy"
	perrs "griddesk/internal/platform/errors"
	pnet "griddesk/internal/platform/net"
)

// ViewerOf returns the viewer descriptor from the request context
func ViewerOf(r *http.Request) (hierarchy.Viewer, error) {
	v, ok := pnet.ViewerFrom(r.Context())
	if !ok {
		return hierarchy.Viewer{}, perrs.Unauthorizedf("missing viewer descriptor")
	}
	return v, nil
}
