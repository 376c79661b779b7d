// Package domain holds the typed dataset records and their defensive parsing
package domain

import (
	"sort"
	"strconv"
	"strings"

	"griddesk/internal/core/hierarchy"

	"griddesk/internal/adapters/ingest/sheets"
)

// Record is one flat sheet row keyed by header name
// missing fields read as empty strings
type Record map[string]string

// FromSheet converts a positional sheet into keyed records
func FromSheet(s sheets.Sheet) []Record {
	out := make([]Record, 0, len(s.Rows))
	for _, row := range s.Rows {
		rec := make(Record, len(s.Headers))
		for i, h := range s.Headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

// Str returns the named field, empty when absent
func (r Record) Str(field string) string { return r[field] }

// Int parses the named field, non numeric values read as 0
func (r Record) Int(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r[field]))
	if err != nil {
		return 0
	}
	return n
}

// Float parses the named field, non numeric values read as 0
func (r Record) Float(field string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(r[field]), 64)
	if err != nil {
		return 0
	}
	return f
}

// Codes pulls the four hierarchy code fields
func (r Record) Codes() hierarchy.Codes {
	return hierarchy.Codes{
		Zone:     r["zone_code"],
		Region:   r["region_code"],
		Division: r["division_code"],
		CCC:      r["ccc_code"],
	}
}

// Fingerprint is a deterministic digest of the record used by the
// staleness probe when a dataset carries no date field
func (r Record) Fingerprint() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(r[k])
	}
	return b.String()
}
