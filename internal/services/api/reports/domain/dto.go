package domain

import (
	"griddesk/internal/core/rollup"
	ds "griddesk/internal/services/datasets/domain"
)

// KPI is one headline tuple rendered by dashboard cards
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// PendingSummaryInput is the payload for /reports/pending/summary
type PendingSummaryInput struct {
	Filter PendingFilter `json:"filter"`
}

// PendingSummary is the delay distribution plus headline KPIs
type PendingSummary struct {
	Distribution rollup.Result `json:"distribution"`
	KPIs         []KPI         `json:"kpis"`
}

// PendingListInput is the payload for /reports/pending/list
type PendingListInput struct {
	Filter PendingFilter `json:"filter"`
}

// PendingList is the scoped, filtered application list
type PendingList struct {
	Items []ds.PendingApplication `json:"items"`
	Total int                     `json:"total"`
}

// ConsumerDistributionInput is the payload for /reports/consumers/distribution
type ConsumerDistributionInput struct {
	Filter ConsumerFilter `json:"filter"`
}

// ConsumerDistribution is the per category distribution
type ConsumerDistribution struct {
	Distribution rollup.Result `json:"distribution"`
}

// DocketSummaryInput is the payload for /reports/dockets/summary
type DocketSummaryInput struct {
	Filter DocketFilter `json:"filter"`
}

// DocketSummary buckets dockets by type and by status
type DocketSummary struct {
	ByType   rollup.Result `json:"by_type"`
	ByStatus rollup.Result `json:"by_status"`
	KPIs     []KPI         `json:"kpis"`
}

// DocketListInput is the payload for /reports/dockets/list
type DocketListInput struct {
	Filter DocketFilter `json:"filter"`
}

// DocketList is the scoped, filtered docket list
type DocketList struct {
	Items []ds.Docket `json:"items"`
	Total int         `json:"total"`
}

// CollectionsRollupInput is the payload for /reports/collections/rollup
type CollectionsRollupInput struct {
	Filter CollectionsFilter `json:"filter"`
}

// CollectionsRollup carries the four granularity series plus mode split
type CollectionsRollup struct {
	Series rollup.SeriesResult `json:"series"`
	ByMode rollup.Result       `json:"by_mode"`
	KPIs   []KPI               `json:"kpis"`
}

// PerformanceKPIsInput is the payload for /reports/performance/kpis
type PerformanceKPIsInput struct {
	Period string `json:"period"`
}

// PerformanceKPIs is the KPI card list
type PerformanceKPIs struct {
	KPIs []KPI `json:"kpis"`
}

// OverviewInput is the payload for /reports/overview
type OverviewInput struct {
	Pending     PendingFilter     `json:"pending"`
	Dockets     DocketFilter      `json:"dockets"`
	Collections CollectionsFilter `json:"collections"`
}

// Overview joins the screen's datasets all-or-nothing
type Overview struct {
	Pending     PendingSummary    `json:"pending"`
	Dockets     DocketSummary     `json:"dockets"`
	Collections CollectionsRollup `json:"collections"`
}
