// Package history builds a coin's price history from valuations taken on
// several as-of dates.
package history

import (
	"sort"
	"time"

	"coinvalue/internal/coin"
)

// Point is a coin's price as of the effective date of the table it came from.
type Point struct {
	AsOf        time.Time  `json:"as_of"`
	Price       coin.Cents `json:"price"`
	Explanation string     `json:"explanation,omitempty"`
}

// Collapse keeps one point per effective day, later input winning, orders
// them oldest first and drops points whose price repeats the previous kept
// price. Unpriced points and points without a date are dropped.
func Collapse(points []Point) []Point {
	latest := make(map[string]Point, len(points))
	for _, p := range points {
		if p.AsOf.IsZero() || p.Price == 0 {
			continue
		}
		latest[p.AsOf.UTC().Format(coin.DateLayout)] = p
	}

	byDay := make([]Point, 0, len(latest))
	for _, p := range latest {
		byDay = append(byDay, p)
	}
	sort.Slice(byDay, func(i, j int) bool { return byDay[i].AsOf.Before(byDay[j].AsOf) })

	var out []Point
	var last coin.Cents
	for _, p := range byDay {
		if p.Price == last {
			continue
		}
		last = p.Price
		out = append(out, p)
	}
	return out
}

// DefaultStep picks a sampling interval in days for the range from start to
// end: weekly under 60 days, monthly under 180, quarterly under a year and
// yearly otherwise.
func DefaultStep(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	switch {
	case days < 60:
		return 7
	case days < 180:
		return 30
	case days < 365:
		return 90
	}
	return 365
}

// StepDates samples as-of dates from start to end inclusive, step days apart
// (DefaultStep when step <= 0). When available is non-empty each sample is
// replaced by the latest available date at or before it, and samples that
// land on the same available date are merged; a sample before every
// available date is dropped.
func StepDates(available []time.Time, start, end time.Time, step int) []time.Time {
	if end.Before(start) {
		start, end = end, start
	}
	if step <= 0 {
		step = DefaultStep(start, end)
	}

	var samples []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, step) {
		samples = append(samples, d)
	}
	if len(samples) == 0 || !samples[len(samples)-1].Equal(end) {
		samples = append(samples, end)
	}
	if len(available) == 0 {
		return samples
	}

	sorted := append([]time.Time(nil), available...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var out []time.Time
	seen := make(map[time.Time]bool)
	for _, s := range samples {
		i := sort.Search(len(sorted), func(i int) bool { return sorted[i].After(s) })
		if i == 0 {
			continue
		}
		d := sorted[i-1]
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
