package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coinvalue/internal/coin"
	"coinvalue/internal/snapshot"
)

func day(s string) time.Time {
	d, err := time.Parse(coin.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func keys(t *testing.T, raws ...string) []snapshot.Key {
	t.Helper()
	var out []snapshot.Key
	for _, r := range raws {
		k, ok := snapshot.ParseKey(r)
		require.Truef(t, ok, "key %q should parse", r)
		out = append(out, k)
	}
	return out
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		ok     bool
		series string
		date   string
	}{
		{raw: "2023-07-17/Lincoln Cents.csv", ok: true, series: "Lincoln Cents", date: "2023-07-17"},
		{raw: "prices/2023-07-17/Mercury Dimes.csv", ok: true, series: "Mercury Dimes", date: "2023-07-17"},
		{raw: "/2023-07-17/Mercury Dimes.csv", ok: true, series: "Mercury Dimes", date: "2023-07-17"},
		{raw: "2023-07-17/serieslist.json"},
		{raw: "2023-07-17/notes.txt"},
		{raw: "latest/Lincoln Cents.csv"},
		{raw: "Lincoln Cents.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			k, ok := snapshot.ParseKey(tt.raw)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			require.Equal(t, tt.raw, k.Raw)
			require.Equal(t, tt.series, k.Series)
			require.True(t, day(tt.date).Equal(k.Date))
		})
	}
}

func TestSelect_LatestAtOrBeforeAsOf(t *testing.T) {
	t.Parallel()

	// Arrange: two series with several effective dates.
	ks := keys(t,
		"2023-01-01/Lincoln Cents.csv",
		"2023-03-01/Lincoln Cents.csv",
		"2023-06-01/Lincoln Cents.csv",
		"2023-02-01/Mercury Dimes.csv",
	)

	// Act
	got := snapshot.Select(ks, day("2023-04-15"))

	// Assert: one key per series, ordered by name.
	require.Len(t, got, 2)
	require.Equal(t, "Lincoln Cents", got[0].Series)
	require.True(t, day("2023-03-01").Equal(got[0].Date))
	require.Equal(t, "Mercury Dimes", got[1].Series)
	require.True(t, day("2023-02-01").Equal(got[1].Date))
}

func TestSelect_ExactDateIsIncluded(t *testing.T) {
	t.Parallel()

	ks := keys(t, "2023-01-01/Lincoln Cents.csv", "2023-03-01/Lincoln Cents.csv")

	got := snapshot.Select(ks, day("2023-03-01"))

	require.Len(t, got, 1)
	require.True(t, day("2023-03-01").Equal(got[0].Date))
}

func TestSelect_FallsBackToEarliest(t *testing.T) {
	t.Parallel()

	ks := keys(t, "2023-06-01/Lincoln Cents.csv", "2023-03-01/Lincoln Cents.csv")

	got := snapshot.Select(ks, day("2020-01-01"))

	require.Len(t, got, 1)
	require.True(t, day("2023-03-01").Equal(got[0].Date))
}

func TestDates_DistinctAscending(t *testing.T) {
	t.Parallel()

	ks := keys(t,
		"2023-06-01/Lincoln Cents.csv",
		"2023-01-01/Lincoln Cents.csv",
		"2023-06-01/Mercury Dimes.csv",
	)

	got := snapshot.Dates(ks)

	require.Len(t, got, 2)
	require.True(t, day("2023-01-01").Equal(got[0]))
	require.True(t, day("2023-06-01").Equal(got[1]))
}

func TestFind_IgnoresCase(t *testing.T) {
	t.Parallel()

	snaps := []coin.SeriesSnapshot{{Name: "Lincoln Cents"}, {Name: "Mercury Dimes"}}

	got, ok := snapshot.Find(snaps, "mercury dimes")
	require.True(t, ok)
	require.Equal(t, "Mercury Dimes", got.Name)

	_, ok = snapshot.Find(snaps, "Buffalo Nickels")
	require.False(t, ok)
}
