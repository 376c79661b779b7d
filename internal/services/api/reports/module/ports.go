package module

import (
	"context"

	"griddesk/internal/core/hierarchy"
	"griddesk/internal/services/api/reports/domain"
	reportssvc "griddesk/internal/services/api/reports/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptReportsPort struct{ svc reportssvc.Service }

// PendingSummary proxies to the reports service
func (a adaptReportsPort) PendingSummary(ctx context.Context, v hierarchy.Viewer, in domain.PendingSummaryInput) (domain.PendingSummary, error) {
	return a.svc.PendingSummary(ctx, v, in)
}

// PendingList proxies to the reports service
func (a adaptReportsPort) PendingList(ctx context.Context, v hierarchy.Viewer, in domain.PendingListInput) (domain.PendingList, error) {
	return a.svc.PendingList(ctx, v, in)
}

// ConsumerDistribution proxies to the reports service
func (a adaptReportsPort) ConsumerDistribution(ctx context.Context, v hierarchy.Viewer, in domain.ConsumerDistributionInput) (domain.ConsumerDistribution, error) {
	return a.svc.ConsumerDistribution(ctx, v, in)
}

// DocketSummary proxies to the reports service
func (a adaptReportsPort) DocketSummary(ctx context.Context, v hierarchy.Viewer, in domain.DocketSummaryInput) (domain.DocketSummary, error) {
	return a.svc.DocketSummary(ctx, v, in)
}

// DocketList proxies to the reports service
func (a adaptReportsPort) DocketList(ctx context.Context, v hierarchy.Viewer, in domain.DocketListInput) (domain.DocketList, error) {
	return a.svc.DocketList(ctx, v, in)
}

// CollectionsRollup proxies to the reports service
func (a adaptReportsPort) CollectionsRollup(ctx context.Context, v hierarchy.Viewer, in domain.CollectionsRollupInput) (domain.CollectionsRollup, error) {
	return a.svc.CollectionsRollup(ctx, v, in)
}

// PerformanceKPIs proxies to the reports service
func (a adaptReportsPort) PerformanceKPIs(ctx context.Context, v hierarchy.Viewer, in domain.PerformanceKPIsInput) (domain.PerformanceKPIs, error) {
	return a.svc.PerformanceKPIs(ctx, v, in)
}

// Overview proxies to the reports service
func (a adaptReportsPort) Overview(ctx context.Context, v hierarchy.Viewer, in domain.OverviewInput) (domain.Overview, error) {
	return a.svc.Overview(ctx, v, in)
}
