package rollup

import (
	"fmt"
	"sort"
	"time"
)

// Point is one time bucket in a series
type Point struct {
	Key    string  `json:"key"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// SeriesResult holds the four granularities computed in one pass
type SeriesResult struct {
	Daily   []Point `json:"daily"`
	Weekly  []Point `json:"weekly"`
	Monthly []Point `json:"monthly"`
	Fiscal  []Point `json:"fiscal"`
}

// Series buckets recs by their YYYYMMDD digit date into four rollups at
// once: day, approximate week, calendar month, and April to March fiscal
// year. The week key offsets day-of-year by January 1st's weekday, it is
// NOT ISO-8601. Records whose date does not parse are skipped from all
// four. Each granularity is sorted ascending by key.
func Series[T any](recs []T, date func(T) string, amount func(T) float64) SeriesResult {
	daily := map[string]*Point{}
	weekly := map[string]*Point{}
	monthly := map[string]*Point{}
	fiscal := map[string]*Point{}

	for _, r := range recs {
		y, m, d, ok := splitDigits(date(r))
		if !ok {
			continue
		}
		amt := 0.0
		if amount != nil {
			amt = amount(r)
		}

		bump(daily, fmt.Sprintf("%04d-%02d-%02d", y, m, d), amt)
		bump(weekly, weekKey(y, m, d), amt)
		bump(monthly, fmt.Sprintf("%04d-%02d", y, m), amt)
		bump(fiscal, fiscalKey(y, m), amt)
	}

	return SeriesResult{
		Daily:   sorted(daily),
		Weekly:  sorted(weekly),
		Monthly: sorted(monthly),
		Fiscal:  sorted(fiscal),
	}
}

// splitDigits parses a YYYYMMDD digit string
// months and days are range checked, day validity against month length is not
func splitDigits(s string) (y, m, d int, ok bool) {
	if len(s) != 8 {
		return 0, 0, 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, 0, 0, false
		}
	}
	y = atoi(s[:4])
	m = atoi(s[4:6])
	d = atoi(s[6:8])
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return y, m, d, true
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// weekKey computes the approximate week number: day-of-year offset by
// January 1st's weekday, divided into 7 day slots
func weekKey(y, m, d int) string {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	week := (t.YearDay() + int(jan1.Weekday()) + 6) / 7
	return fmt.Sprintf("%04d-W%02d", y, week)
}

// fiscalKey maps a calendar month onto the April to March fiscal year
func fiscalKey(y, m int) string {
	if m >= 4 {
		return fmt.Sprintf("FY %d-%d", y, y+1)
	}
	return fmt.Sprintf("FY %d-%d", y-1, y)
}

func bump(m map[string]*Point, key string, amt float64) {
	p := m[key]
	if p == nil {
		p = &Point{Key: key}
		m[key] = p
	}
	p.Count++
	p.Amount += amt
}

func sorted(m map[string]*Point) []Point {
	out := make([]Point, 0, len(m))
	for _, p := range m {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
