package pricer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coinvalue/internal/coin"
	"coinvalue/internal/logger"
	"coinvalue/internal/pricer"
	"coinvalue/internal/series"
)

func TestHistory(t *testing.T) {
	t.Parallel()

	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	// Arrange: the table changed in March only; June repeats the March price.
	table := func(on time.Time, price coin.Cents) []coin.SeriesSnapshot {
		return []coin.SeriesSnapshot{{
			Name:      "Lincoln Cents",
			ValidAsOf: on,
			Issues:    []coin.Issue{{Label: "1911", Prices: []coin.GradePrice{{Grade: 65, Price: price}}}},
		}}
	}
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	src.EXPECT().Dates(gomock.Any()).Return([]time.Time{jan, mar, jun}, nil)
	src.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, asOf time.Time) ([]coin.SeriesSnapshot, error) {
			switch {
			case asOf.Before(mar):
				return table(jan, 1000), nil
			case asOf.Before(jun):
				return table(mar, 1200), nil
			}
			return table(jun, 1200), nil
		}).
		AnyTimes()

	p := pricer.New(src, pricer.WithLogger(logger.Discard()))

	// Act
	points, err := p.History(t.Context(), coin.RawCoin{Year: "1911", Denomination: series.Cent, Grade: "MS-65"}, nil)

	// Assert: one point per price change.
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.True(t, jan.Equal(points[0].AsOf))
	require.Equal(t, coin.Cents(1000), points[0].Price)
	require.True(t, mar.Equal(points[1].AsOf))
	require.Equal(t, coin.Cents(1200), points[1].Price)
}
