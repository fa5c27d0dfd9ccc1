package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCollapse_NewestWinsPerDay(t *testing.T) {
	d1 := date(2023, 1, 1)
	d2 := date(2023, 2, 1)

	in := []Point{
		{AsOf: d2, Price: 700},
		{AsOf: d1, Price: 500},
		{AsOf: d1, Price: 600},
	}

	out := Collapse(in)
	if len(out) != 2 {
		t.Fatalf("want 2, got %d: %+v", len(out), out)
	}
	if !out[0].AsOf.Equal(d1) || out[0].Price != 600 {
		t.Fatalf("unexpected first point: %+v", out[0])
	}
	if !out[1].AsOf.Equal(d2) || out[1].Price != 700 {
		t.Fatalf("unexpected second point: %+v", out[1])
	}
}

func TestCollapse_DropsRepeatsAndUnpriced(t *testing.T) {
	in := []Point{
		{AsOf: date(2023, 1, 1), Price: 0},
		{AsOf: date(2023, 2, 1), Price: 500},
		{AsOf: date(2023, 3, 1), Price: 500},
		{AsOf: date(2023, 4, 1), Price: 400},
		{AsOf: date(2023, 5, 1), Price: 500},
		{Price: 900},
	}

	out := Collapse(in)

	require.Len(t, out, 3)
	require.Equal(t, []int64{500, 400, 500}, []int64{int64(out[0].Price), int64(out[1].Price), int64(out[2].Price)})
	require.True(t, out[2].AsOf.Equal(date(2023, 5, 1)))
}

func TestDefaultStep(t *testing.T) {
	start := date(2023, 1, 1)
	cases := []struct {
		end  time.Time
		want int
	}{
		{end: start.AddDate(0, 0, 30), want: 7},
		{end: start.AddDate(0, 0, 90), want: 30},
		{end: start.AddDate(0, 0, 200), want: 90},
		{end: start.AddDate(1, 0, 0), want: 365},
		{end: start.AddDate(5, 0, 0), want: 365},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, DefaultStep(start, c.end), "range to %s", c.end.Format("2006-01-02"))
	}
}

func TestStepDates_WithoutAvailableDates(t *testing.T) {
	start := date(2023, 1, 1)
	end := date(2023, 1, 20)

	out := StepDates(nil, start, end, 7)

	require.Equal(t, []time.Time{
		date(2023, 1, 1),
		date(2023, 1, 8),
		date(2023, 1, 15),
		date(2023, 1, 20),
	}, out)
}

func TestStepDates_SnapsToAvailable(t *testing.T) {
	available := []time.Time{date(2023, 1, 5), date(2022, 12, 1), date(2023, 3, 1)}

	out := StepDates(available, date(2022, 11, 1), date(2023, 3, 31), 30)

	// 2022-11-01 precedes every table and is dropped; later samples merge.
	require.Equal(t, []time.Time{
		date(2022, 12, 1),
		date(2023, 1, 5),
		date(2023, 3, 1),
	}, out)
}

func TestStepDates_SwapsReversedRange(t *testing.T) {
	out := StepDates(nil, date(2023, 1, 15), date(2023, 1, 1), 7)

	require.Equal(t, date(2023, 1, 1), out[0])
	require.Equal(t, date(2023, 1, 15), out[len(out)-1])
}
