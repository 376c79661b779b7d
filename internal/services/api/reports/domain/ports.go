package domain

import (
	"context"

	"griddesk/internal/core/hierarchy"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	PendingSummary(ctx context.Context, v hierarchy.Viewer, in PendingSummaryInput) (PendingSummary, error)
	PendingList(ctx context.Context, v hierarchy.Viewer, in PendingListInput) (PendingList, error)
	ConsumerDistribution(ctx context.Context, v hierarchy.Viewer, in ConsumerDistributionInput) (ConsumerDistribution, error)
	DocketSummary(ctx context.Context, v hierarchy.Viewer, in DocketSummaryInput) (DocketSummary, error)
	DocketList(ctx context.Context, v hierarchy.Viewer, in DocketListInput) (DocketList, error)
	CollectionsRollup(ctx context.Context, v hierarchy.Viewer, in CollectionsRollupInput) (CollectionsRollup, error)
	PerformanceKPIs(ctx context.Context, v hierarchy.Viewer, in PerformanceKPIsInput) (PerformanceKPIs, error)
	Overview(ctx context.Context, v hierarchy.Viewer, in OverviewInput) (Overview, error)
}
