// Package series maps a coin's denomination, year and strike to the price
// series that may cover it.
package series

import (
	"strconv"
	"time"

	"coinvalue/internal/coin"
)

// Resolver looks up series in a static table.
type Resolver struct {
	Table []coin.SeriesDefinition
	// Now supplies the current year for series that are still active.
	// Defaults to time.Now.
	Now func() time.Time
}

// Default resolves against Table with the wall clock.
var Default = &Resolver{Table: Table}

// Resolve is Default.Resolve.
func Resolve(yearText, denomination string, proof bool) ([]string, bool) {
	return Default.Resolve(yearText, denomination, proof)
}

// Resolve returns the names of the series whose denomination and strike match
// and whose active years cover the leading year in yearText, in table order.
// Series without a denomination code never match. ok is false when nothing
// matches.
func (r *Resolver) Resolve(yearText, denomination string, proof bool) (names []string, ok bool) {
	y := LeadingYear(yearText)
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	open := now().Year() + 1

	for _, s := range r.Table {
		if s.Denomination == "" || s.Denomination != denomination || s.Proof != proof {
			continue
		}
		end := s.EndYear
		if end == 0 {
			end = open
		}
		if y >= s.StartYear && y <= end {
			names = append(names, s.Name)
		}
	}
	return names, len(names) > 0
}

// LeadingYear returns the first run of digits in s, or 0 when there is none.
func LeadingYear(s string) int {
	start := -1
	for i := 0; i < len(s); i++ {
		digit := s[i] >= '0' && s[i] <= '9'
		if digit && start < 0 {
			start = i
		}
		if !digit && start >= 0 {
			s = s[:i]
			break
		}
	}
	if start < 0 {
		return 0
	}
	y, err := strconv.Atoi(s[start:])
	if err != nil {
		return 0
	}
	return y
}
