// Package domain holds report inputs, filters, and result shapes
package domain

import (
	"griddesk/internal/core/filter"
	ds "griddesk/internal/services/datasets/domain"
)

// PendingFilter narrows the pending applications dataset
// empty multi-selects never restrict
type PendingFilter struct {
	DelayRanges []string `json:"delay_ranges"`
	Statuses    []string `json:"statuses"`
	Search      string   `json:"search"`
	From        string   `json:"from" validate:"omitempty,isodate"`
	To          string   `json:"to" validate:"omitempty,isodate"`
}

// Matches reports whether app passes every predicate
func (f PendingFilter) Matches(app ds.PendingApplication) bool {
	return filter.AnyOf(app.DelayRange, f.DelayRanges) &&
		filter.AnyOf(app.Status, f.Statuses) &&
		filter.SearchFold(f.Search, app.AppNumber, app.Applicant, app.Phone) &&
		filter.InRange(app.AppliedDate, f.From, f.To)
}

// ConsumerFilter narrows the consumer category dataset
type ConsumerFilter struct {
	Categories []string `json:"categories"`
	Search     string   `json:"search"`
}

// Matches reports whether b passes every predicate
func (f ConsumerFilter) Matches(b ds.ConsumerBucket) bool {
	return filter.AnyOf(b.Category, f.Categories) &&
		filter.SearchFold(f.Search, b.Category)
}

// DocketFilter narrows the grievance docket dataset
type DocketFilter struct {
	Types    []string `json:"types"`
	Statuses []string `json:"statuses"`
	Search   string   `json:"search"`
	From     string   `json:"from" validate:"omitempty,isodate"`
	To       string   `json:"to" validate:"omitempty,isodate"`
}

// Matches reports whether d passes every predicate
func (f DocketFilter) Matches(d ds.Docket) bool {
	return filter.AnyOf(d.Type, f.Types) &&
		filter.AnyOf(d.Status, f.Statuses) &&
		filter.SearchFold(f.Search, d.Number, d.Party, d.ConsumerID) &&
		filter.InRange(d.OpenedDate, f.From, f.To)
}

// CollectionsFilter narrows the revenue collection dataset
// the date bounds use the dataset's compact YYYYMMDD digit form
type CollectionsFilter struct {
	Modes  []string `json:"modes"`
	Search string   `json:"search"`
	From   string   `json:"from" validate:"omitempty,datedigits"`
	To     string   `json:"to" validate:"omitempty,datedigits"`
}

// Matches reports whether t passes every predicate
func (f CollectionsFilter) Matches(t ds.CollectionTxn) bool {
	return filter.AnyOf(t.Mode, f.Modes) &&
		filter.SearchFold(f.Search, t.Receipt) &&
		filter.InRange(t.Date, f.From, f.To)
}
