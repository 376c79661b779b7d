package middleware

import (
	"net/http"

	"griddesk/internal/core/hierarchy"
	perr "griddesk/internal/platform/errors"
	pnet "griddesk/internal/platform/net"
)

// Viewer header names supplied by the authentication collaborator.
// The descriptor is trusted as-is; scoping is not a security boundary here
const (
	HeaderViewerRole     = "X-Viewer-Role"
	HeaderViewerZone     = "X-Viewer-Zone"
	HeaderViewerRegion   = "X-Viewer-Region"
	HeaderViewerDivision = "X-Viewer-Division"
	HeaderViewerCCC      = "X-Viewer-CCC"
	HeaderViewerOffice   = "X-Viewer-Office"
)

// ViewerFromHeaders parses the viewer descriptor headers into a hierarchy.Viewer
func ViewerFromHeaders(r *http.Request) (hierarchy.Viewer, error) {
	role, ok := hierarchy.ParseRole(r.Header.Get(HeaderViewerRole))
	if !ok {
		return hierarchy.Viewer{}, perr.Unauthorizedf("missing or invalid viewer role")
	}
	return hierarchy.Viewer{
		Role: role,
		Codes: hierarchy.Codes{
			Zone:     r.Header.Get(HeaderViewerZone),
			Region:   r.Header.Get(HeaderViewerRegion),
			Division: r.Header.Get(HeaderViewerDivision),
			CCC:      r.Header.Get(HeaderViewerCCC),
		},
		OfficeName: r.Header.Get(HeaderViewerOffice),
	}, nil
}

// Viewer resolves the viewer descriptor from headers and stores it on context
// write lets the caller keep the envelope shape without importing transport here
func Viewer(write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := ViewerFromHeaders(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithViewer(r.Context(), v)
			ctx = pnet.WithRequest(ctx, pnet.RequestID(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
