// Package service contains report workflows
package service

import (
	"context"

	"griddesk/internal/core/hierarchy"
	"griddesk/internal/core/rollup"
	perr "griddesk/internal/platform/errors"
	"griddesk/internal/platform/logger"
	"griddesk/internal/services/api/reports/domain"
	ds "griddesk/internal/services/datasets/domain"
)

// Service defines the reports service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the reports service
type Svc struct {
	reader ds.ReaderPort
	log    logger.Logger
}

// New constructs a reports service
func New(reader ds.ReaderPort) *Svc {
	if reader == nil {
		panic("reports.Service requires a non nil ReaderPort")
	}
	return &Svc{reader: reader, log: *logger.Named("reports")}
}

// scoped applies the viewer scope and a filter in one pass
func scoped[T any](recs []T, v hierarchy.Viewer, codes func(T) hierarchy.Codes, match func(T) bool) []T {
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		if !hierarchy.InScope(codes(r), v) {
			continue
		}
		if match != nil && !match(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *Svc) pending(ctx context.Context, v hierarchy.Viewer, f domain.PendingFilter) ([]ds.PendingApplication, error) {
	apps, err := s.reader.Pending(ctx)
	if err != nil {
		return nil, err
	}
	return scoped(apps, v, func(a ds.PendingApplication) hierarchy.Codes { return a.Codes }, f.Matches), nil
}

func (s *Svc) dockets(ctx context.Context, v hierarchy.Viewer, f domain.DocketFilter) ([]ds.Docket, error) {
	dks, err := s.reader.Dockets(ctx)
	if err != nil {
		return nil, err
	}
	return scoped(dks, v, func(d ds.Docket) hierarchy.Codes { return d.Codes }, f.Matches), nil
}

func (s *Svc) collections(ctx context.Context, v hierarchy.Viewer, f domain.CollectionsFilter) ([]ds.CollectionTxn, error) {
	txns, err := s.reader.Collections(ctx)
	if err != nil {
		return nil, err
	}
	return scoped(txns, v, func(t ds.CollectionTxn) hierarchy.Codes { return t.Codes }, f.Matches), nil
}

// PendingSummary computes the delay range distribution, rank ordered by
// the dataset's escalation serial, plus headline KPIs
func (s *Svc) PendingSummary(ctx context.Context, v hierarchy.Viewer, in domain.PendingSummaryInput) (domain.PendingSummary, error) {
	apps, err := s.pending(ctx, v, in.Filter)
	if err != nil {
		return domain.PendingSummary{}, err
	}

	// the escalation order travels on the records themselves
	rank := map[string]int{}
	for _, a := range apps {
		if a.DelayRank > rank[a.DelayRange] {
			rank[a.DelayRange] = a.DelayRank
		}
	}
	dist := rollup.Aggregate(apps,
		func(a ds.PendingApplication) string { return a.DelayRange },
		nil,
		func(a ds.PendingApplication) float64 { return float64(a.DelayDays) },
		rollup.Options{Sort: rollup.SortByRank, Rank: func(l string) int { return rank[l] }},
	)

	return domain.PendingSummary{Distribution: dist, KPIs: pendingKPIs(apps)}, nil
}

// PendingList returns the scoped, filtered application list
// upstream failures degrade to an empty list at this boundary
func (s *Svc) PendingList(ctx context.Context, v hierarchy.Viewer, in domain.PendingListInput) (domain.PendingList, error) {
	apps, err := s.pending(ctx, v, in.Filter)
	if err != nil {
		s.log.Warn().Err(err).Msg("pending list degraded to empty")
		return domain.PendingList{Items: []ds.PendingApplication{}}, nil
	}
	return domain.PendingList{Items: apps, Total: len(apps)}, nil
}

// ConsumerDistribution buckets by category, weighted by each row's
// consumer tally so Count and Share speak in consumers, not sheet rows;
// sorted by the average connected load per consumer
func (s *Svc) ConsumerDistribution(ctx context.Context, v hierarchy.Viewer, in domain.ConsumerDistributionInput) (domain.ConsumerDistribution, error) {
	buckets, err := s.reader.Consumers(ctx)
	if err != nil {
		return domain.ConsumerDistribution{}, err
	}
	kept := scoped(buckets, v, func(b ds.ConsumerBucket) hierarchy.Codes { return b.Codes }, in.Filter.Matches)

	dist := rollup.Aggregate(kept,
		func(b ds.ConsumerBucket) string { return b.Category },
		func(b ds.ConsumerBucket) int { return b.Consumers },
		func(b ds.ConsumerBucket) float64 { return b.LoadKW },
		rollup.Options{Sort: rollup.SortByAvg},
	)
	return domain.ConsumerDistribution{Distribution: dist}, nil
}

// DocketSummary buckets dockets by type and by status
func (s *Svc) DocketSummary(ctx context.Context, v hierarchy.Viewer, in domain.DocketSummaryInput) (domain.DocketSummary, error) {
	dks, err := s.dockets(ctx, v, in.Filter)
	if err != nil {
		return domain.DocketSummary{}, err
	}
	byType := rollup.Aggregate(dks,
		func(d ds.Docket) string { return d.Type }, nil, nil,
		rollup.Options{Sort: rollup.SortByCount},
	)
	byStatus := rollup.Aggregate(dks,
		func(d ds.Docket) string { return d.Status }, nil, nil,
		rollup.Options{Sort: rollup.SortByCount},
	)
	return domain.DocketSummary{ByType: byType, ByStatus: byStatus, KPIs: docketKPIs(dks)}, nil
}

// DocketList returns the scoped, filtered docket list
// upstream failures degrade to an empty list at this boundary
func (s *Svc) DocketList(ctx context.Context, v hierarchy.Viewer, in domain.DocketListInput) (domain.DocketList, error) {
	dks, err := s.dockets(ctx, v, in.Filter)
	if err != nil {
		s.log.Warn().Err(err).Msg("docket list degraded to empty")
		return domain.DocketList{Items: []ds.Docket{}}, nil
	}
	return domain.DocketList{Items: dks, Total: len(dks)}, nil
}

// CollectionsRollup computes the four granularity series plus the payment
// mode split, financial sort by amount
func (s *Svc) CollectionsRollup(ctx context.Context, v hierarchy.Viewer, in domain.CollectionsRollupInput) (domain.CollectionsRollup, error) {
	txns, err := s.collections(ctx, v, in.Filter)
	if err != nil {
		return domain.CollectionsRollup{}, err
	}
	series := rollup.Series(txns,
		func(t ds.CollectionTxn) string { return t.Date },
		func(t ds.CollectionTxn) float64 { return t.Amount },
	)
	byMode := rollup.Aggregate(txns,
		func(t ds.CollectionTxn) string { return t.Mode },
		nil,
		func(t ds.CollectionTxn) float64 { return t.Amount },
		rollup.Options{Sort: rollup.SortByAmount},
	)
	return domain.CollectionsRollup{Series: series, ByMode: byMode, KPIs: collectionKPIs(txns)}, nil
}

// PerformanceKPIs maps scoped metric rows onto KPI cards
func (s *Svc) PerformanceKPIs(ctx context.Context, v hierarchy.Viewer, in domain.PerformanceKPIsInput) (domain.PerformanceKPIs, error) {
	metrics, err := s.reader.Performance(ctx)
	if err != nil {
		return domain.PerformanceKPIs{}, err
	}
	kept := scoped(metrics, v, func(m ds.PerformanceMetric) hierarchy.Codes { return m.Codes }, func(m ds.PerformanceMetric) bool {
		return in.Period == "" || m.Period == in.Period
	})
	return domain.PerformanceKPIs{KPIs: performanceKPIs(kept)}, nil
}

// Overview fans out over the screen's datasets and joins all-or-nothing
// any required failure surfaces one error for the whole screen
func (s *Svc) Overview(ctx context.Context, v hierarchy.Viewer, in domain.OverviewInput) (domain.Overview, error) {
	var out domain.Overview

	type part func() error
	parts := []part{
		func() error {
			p, err := s.PendingSummary(ctx, v, domain.PendingSummaryInput{Filter: in.Pending})
			out.Pending = p
			return err
		},
		func() error {
			d, err := s.DocketSummary(ctx, v, domain.DocketSummaryInput{Filter: in.Dockets})
			out.Dockets = d
			return err
		},
		func() error {
			c, err := s.CollectionsRollup(ctx, v, domain.CollectionsRollupInput{Filter: in.Collections})
			out.Collections = c
			return err
		},
	}

	errCh := make(chan error, len(parts))
	for _, p := range parts {
		go func(p part) { errCh <- p() }(p)
	}
	for range parts {
		if err := <-errCh; err != nil {
			return domain.Overview{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "overview load failed")
		}
	}
	return out, nil
}
