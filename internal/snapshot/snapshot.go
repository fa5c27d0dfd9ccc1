// Package snapshot loads series price tables as they stood on a given date.
//
// Tables are stored one file per series per effective date under keys of the
// form "2023-07-17/Lincoln Cents.csv".
package snapshot

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	"coinvalue/internal/coin"
)

// SeriesListKey is an index file kept alongside the tables; it is not a table.
const SeriesListKey = "serieslist.json"

// Source supplies series snapshots.
//
//go:generate mockgen -package=snapshot_test -destination=mock_source_test.go -source=snapshot.go Source
type Source interface {
	// Load returns, per series, the most recent snapshot at or before asOf, or
	// the earliest one when none precede it.
	Load(ctx context.Context, asOf time.Time) ([]coin.SeriesSnapshot, error)
	// Dates lists the distinct effective dates held, oldest first.
	Dates(ctx context.Context) ([]time.Time, error)
}

// Key identifies one stored price table.
type Key struct {
	Raw    string
	Date   time.Time
	Series string
}

// ParseKey splits a storage key into its effective date and series name.
// ok is false for keys that are not price tables.
func ParseKey(raw string) (Key, bool) {
	dir, file := path.Split(strings.TrimPrefix(raw, "/"))
	dir = strings.TrimSuffix(dir, "/")
	if file == SeriesListKey || !strings.HasSuffix(strings.ToLower(file), ".csv") {
		return Key{}, false
	}
	d, err := time.Parse(coin.DateLayout, path.Base(dir))
	if err != nil {
		return Key{}, false
	}
	return Key{Raw: raw, Date: d, Series: file[:len(file)-len(".csv")]}, true
}

// Select keeps one key per series (case-insensitive): the latest dated at or
// before asOf, else the earliest. The result is ordered by series name.
func Select(keys []Key, asOf time.Time) []Key {
	type pick struct {
		before Key
		has    bool
		first  Key
	}
	picks := make(map[string]*pick, len(keys))
	for _, k := range keys {
		name := strings.ToLower(k.Series)
		p, ok := picks[name]
		if !ok {
			p = &pick{first: k}
			picks[name] = p
		}
		if k.Date.Before(p.first.Date) {
			p.first = k
		}
		if !k.Date.After(asOf) && (!p.has || k.Date.After(p.before.Date)) {
			p.before = k
			p.has = true
		}
	}

	out := make([]Key, 0, len(picks))
	for _, p := range picks {
		if p.has {
			out = append(out, p.before)
		} else {
			out = append(out, p.first)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Series < out[j].Series })
	return out
}

// Dates returns the distinct dates among keys, oldest first.
func Dates(keys []Key) []time.Time {
	seen := make(map[time.Time]struct{}, len(keys))
	var out []time.Time
	for _, k := range keys {
		if _, ok := seen[k.Date]; ok {
			continue
		}
		seen[k.Date] = struct{}{}
		out = append(out, k.Date)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Find returns the snapshot named series, ignoring case.
func Find(snaps []coin.SeriesSnapshot, series string) (coin.SeriesSnapshot, bool) {
	for _, s := range snaps {
		if strings.EqualFold(s.Name, series) {
			return s, true
		}
	}
	return coin.SeriesSnapshot{}, false
}
