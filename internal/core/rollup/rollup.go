// Package rollup provides the grouping and time bucketing used by report
// aggregates
package rollup

import (
	"math"
	"sort"
)

// Sentinel is the bucket label for records with an empty group value
// such records are never dropped, they land here
const Sentinel = "N/A"

// Entry is one aggregate bucket
type Entry struct {
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"`
	Avg    float64 `json:"avg"`
}

// Result is a full aggregate: buckets plus the grand total
// Total equals the number of input records, or their summed weight when
// the aggregation carries a weight measure
type Result struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// SortMode selects the bucket ordering, documented per call site
type SortMode int

const (
	// SortByAvg orders descending by derived average (default)
	SortByAvg SortMode = iota

	// SortByCount orders descending by bucket count
	SortByCount

	// SortByAmount orders descending by accumulated amount, used for
	// financial aggregates
	SortByAmount

	// SortByRank orders descending by an explicit per label rank
	// requires Options.Rank
	SortByRank
)

// Options tunes an Aggregate call
type Options struct {
	Sort SortMode

	// Rank maps a label to its explicit serial when Sort is SortByRank
	// unknown labels rank lowest
	Rank func(label string) int
}

// Aggregate groups recs by label, accumulating a count measure and a
// secondary value per bucket. Empty labels fall into the Sentinel bucket.
// The count measure is the per record weight; a nil weight counts each
// record as one, so pre-bucketed rows can weight by their own tallies.
// Derived fields: Avg = secondary/count (0 when the bucket is empty),
// Share = one decimal percent of total. Ties keep input order.
func Aggregate[T any](recs []T, label func(T) string, weight func(T) int, secondary func(T) float64, opts Options) Result {
	type acc struct {
		count int
		sum   float64
		first int // first appearance, keeps ties stable
	}
	buckets := map[string]*acc{}
	order := 0
	total := 0
	for _, r := range recs {
		l := label(r)
		if l == "" {
			l = Sentinel
		}
		b := buckets[l]
		if b == nil {
			b = &acc{first: order}
			order++
			buckets[l] = b
		}
		w := 1
		if weight != nil {
			w = weight(r)
		}
		b.count += w
		total += w
		if secondary != nil {
			b.sum += secondary(r)
		}
	}
	entries := make([]Entry, 0, len(buckets))
	for l, b := range buckets {
		e := Entry{Label: l, Count: b.count, Amount: b.sum}
		if b.count > 0 {
			e.Avg = b.sum / float64(b.count)
		}
		if total > 0 {
			e.Share = round1(float64(b.count) / float64(total) * 100)
		}
		entries = append(entries, e)
	}

	// establish input order first so the comparison sort is stable on ties
	sort.Slice(entries, func(i, j int) bool {
		return buckets[entries[i].Label].first < buckets[entries[j].Label].first
	})
	less := lessFor(opts)
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })

	return Result{Entries: entries, Total: total}
}

func lessFor(opts Options) func(a, b Entry) bool {
	switch opts.Sort {
	case SortByCount:
		return func(a, b Entry) bool { return a.Count > b.Count }
	case SortByAmount:
		return func(a, b Entry) bool { return a.Amount > b.Amount }
	case SortByRank:
		rank := opts.Rank
		if rank == nil {
			rank = func(string) int { return 0 }
		}
		return func(a, b Entry) bool { return rank(a.Label) > rank(b.Label) }
	default:
		return func(a, b Entry) bool { return a.Avg > b.Avg }
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
