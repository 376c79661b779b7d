// Package http provides http transport for reports
package http

import (
	stdhttp "net/http"

	"griddesk/internal/modkit/httpkit"
	"griddesk/internal/services/api/reports/domain"
	svc "griddesk/internal/services/api/reports/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// pending applications
	httpkit.PostJSON[domain.PendingSummaryInput](r, "/pending/summary", h.pendingSummary)
	httpkit.PostJSON[domain.PendingListInput](r, "/pending/list", h.pendingList)

	// consumer categories
	httpkit.PostJSON[domain.ConsumerDistributionInput](r, "/consumers/distribution", h.consumerDistribution)

	// grievance dockets
	httpkit.PostJSON[domain.DocketSummaryInput](r, "/dockets/summary", h.docketSummary)
	httpkit.PostJSON[domain.DocketListInput](r, "/dockets/list", h.docketList)

	// revenue collections
	httpkit.PostJSON[domain.CollectionsRollupInput](r, "/collections/rollup", h.collectionsRollup)

	// performance cards
	httpkit.PostJSON[domain.PerformanceKPIsInput](r, "/performance/kpis", h.performanceKPIs)

	// whole screen fan-in
	httpkit.PostJSON[domain.OverviewInput](r, "/overview", h.overview)
}

type handlers struct{ svc svc.Service }

// @Summary Pending delay distribution and KPIs
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.PendingSummaryInput true "Query"
// @Success 200 {object} domain.PendingSummary "ok"
// @Router /reports/pending/summary [post]
func (h *handlers) pendingSummary(r *stdhttp.Request, in domain.PendingSummaryInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PendingSummary(r.Context(), v, in)
}

// @Summary Pending application list
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.PendingListInput true "Query"
// @Success 200 {object} domain.PendingList "ok"
// @Router /reports/pending/list [post]
func (h *handlers) pendingList(r *stdhttp.Request, in domain.PendingListInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PendingList(r.Context(), v, in)
}

// @Summary Consumer category distribution
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.ConsumerDistributionInput true "Query"
// @Success 200 {object} domain.ConsumerDistribution "ok"
// @Router /reports/consumers/distribution [post]
func (h *handlers) consumerDistribution(r *stdhttp.Request, in domain.ConsumerDistributionInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ConsumerDistribution(r.Context(), v, in)
}

// @Summary Docket summary by type and status
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.DocketSummaryInput true "Query"
// @Success 200 {object} domain.DocketSummary "ok"
// @Router /reports/dockets/summary [post]
func (h *handlers) docketSummary(r *stdhttp.Request, in domain.DocketSummaryInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.DocketSummary(r.Context(), v, in)
}

// @Summary Docket list
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.DocketListInput true "Query"
// @Success 200 {object} domain.DocketList "ok"
// @Router /reports/dockets/list [post]
func (h *handlers) docketList(r *stdhttp.Request, in domain.DocketListInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.DocketList(r.Context(), v, in)
}

// @Summary Collections time series and mode split
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.CollectionsRollupInput true "Query"
// @Success 200 {object} domain.CollectionsRollup "ok"
// @Router /reports/collections/rollup [post]
func (h *handlers) collectionsRollup(r *stdhttp.Request, in domain.CollectionsRollupInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.CollectionsRollup(r.Context(), v, in)
}

// @Summary Performance KPI cards
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.PerformanceKPIsInput true "Query"
// @Success 200 {object} domain.PerformanceKPIs "ok"
// @Router /reports/performance/kpis [post]
func (h *handlers) performanceKPIs(r *stdhttp.Request, in domain.PerformanceKPIsInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PerformanceKPIs(r.Context(), v, in)
}

// @Summary Overview screen, all datasets joined
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.OverviewInput true "Query"
// @Success 200 {object} domain.Overview "ok"
// @Router /reports/overview [post]
func (h *handlers) overview(r *stdhttp.Request, in domain.OverviewInput) (any, error) {
	v, err := httpkit.ViewerOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Overview(r.Context(), v, in)
}
