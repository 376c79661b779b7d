package domain

import "griddesk/internal/core/hierarchy"

// PendingApplication is one new-connection application awaiting release
type PendingApplication struct {
	AppNumber   string          `json:"app_number"`
	Applicant   string          `json:"applicant"`
	Phone       string          `json:"phone"`
	AppliedDate string          `json:"applied_date"`
	DelayDays   int             `json:"delay_days"`
	DelayRange  string          `json:"delay_range"`
	DelayRank   int             `json:"delay_rank"`
	LoadKW      float64         `json:"load_kw"`
	Poles       int             `json:"poles"`
	Status      string          `json:"status"`
	Codes       hierarchy.Codes `json:"codes"`
}

// ConsumerBucket is one consumer category aggregate row
type ConsumerBucket struct {
	Category  string          `json:"category"`
	Consumers int             `json:"consumers"`
	LoadKW    float64         `json:"load_kw"`
	Codes     hierarchy.Codes `json:"codes"`
}

// Docket is one consumer grievance docket
type Docket struct {
	Number     string          `json:"number"`
	Party      string          `json:"party"`
	ConsumerID string          `json:"consumer_id"`
	Type       string          `json:"type"`
	Status     string          `json:"status"`
	OpenedDate string          `json:"opened_date"`
	Codes      hierarchy.Codes `json:"codes"`
}

// CollectionTxn is one revenue collection receipt
// Date is the compact YYYYMMDD digit form used by the rollup series
type CollectionTxn struct {
	Receipt string          `json:"receipt"`
	Date    string          `json:"date"`
	Amount  float64         `json:"amount"`
	Mode    string          `json:"mode"`
	Codes   hierarchy.Codes `json:"codes"`
}

// PerformanceMetric is one KPI measurement row
type PerformanceMetric struct {
	Name   string          `json:"name"`
	Value  float64         `json:"value"`
	Target float64         `json:"target"`
	Unit   string          `json:"unit"`
	Period string          `json:"period"`
	Codes  hierarchy.Codes `json:"codes"`
}

// OfficeRow maps any of the hierarchy codes it carries to one office name
type OfficeRow struct {
	Name  string          `json:"name"`
	Codes hierarchy.Codes `json:"codes"`
}

// ParsePending converts raw records, defaulting malformed fields
func ParsePending(recs []Record) []PendingApplication {
	out := make([]PendingApplication, 0, len(recs))
	for _, r := range recs {
		out = append(out, PendingApplication{
			AppNumber:   r.Str("application_id"),
			Applicant:   r.Str("applicant_name"),
			Phone:       r.Str("phone"),
			AppliedDate: r.Str("applied_date"),
			DelayDays:   r.Int("delay_days"),
			DelayRange:  r.Str("delay_range"),
			DelayRank:   r.Int("delay_rank"),
			LoadKW:      r.Float("load_kw"),
			Poles:       r.Int("poles"),
			Status:      r.Str("status"),
			Codes:       r.Codes(),
		})
	}
	return out
}

// ParseConsumers converts raw records, defaulting malformed fields
func ParseConsumers(recs []Record) []ConsumerBucket {
	out := make([]ConsumerBucket, 0, len(recs))
	for _, r := range recs {
		out = append(out, ConsumerBucket{
			Category:  r.Str("category"),
			Consumers: r.Int("consumers"),
			LoadKW:    r.Float("connected_load_kw"),
			Codes:     r.Codes(),
		})
	}
	return out
}

// ParseDockets converts raw records, defaulting malformed fields
func ParseDockets(recs []Record) []Docket {
	out := make([]Docket, 0, len(recs))
	for _, r := range recs {
		out = append(out, Docket{
			Number:     r.Str("docket_no"),
			Party:      r.Str("party_name"),
			ConsumerID: r.Str("consumer_id"),
			Type:       r.Str("docket_type"),
			Status:     r.Str("status"),
			OpenedDate: r.Str("opened_date"),
			Codes:      r.Codes(),
		})
	}
	return out
}

// ParseCollections converts raw records, defaulting malformed fields
func ParseCollections(recs []Record) []CollectionTxn {
	out := make([]CollectionTxn, 0, len(recs))
	for _, r := range recs {
		out = append(out, CollectionTxn{
			Receipt: r.Str("receipt_no"),
			Date:    r.Str("txn_date"),
			Amount:  r.Float("amount"),
			Mode:    r.Str("payment_mode"),
			Codes:   r.Codes(),
		})
	}
	return out
}

// ParsePerformance converts raw records, defaulting malformed fields
func ParsePerformance(recs []Record) []PerformanceMetric {
	out := make([]PerformanceMetric, 0, len(recs))
	for _, r := range recs {
		out = append(out, PerformanceMetric{
			Name:   r.Str("metric"),
			Value:  r.Float("value"),
			Target: r.Float("target"),
			Unit:   r.Str("unit"),
			Period: r.Str("period"),
			Codes:  r.Codes(),
		})
	}
	return out
}

// ParseOffices converts raw records, defaulting malformed fields
func ParseOffices(recs []Record) []OfficeRow {
	out := make([]OfficeRow, 0, len(recs))
	for _, r := range recs {
		out = append(out, OfficeRow{
			Name:  r.Str("office_name"),
			Codes: r.Codes(),
		})
	}
	return out
}
