package coin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coinvalue/internal/coin"
)

func TestCents_String(t *testing.T) {
	t.Parallel()

	tests := map[coin.Cents]string{
		0:      "",
		5:      "$0.05",
		1100:   "$11.00",
		250000: "$2500.00",
	}
	for in, want := range tests {
		require.Equalf(t, want, in.String(), "cents %d", int64(in))
	}
}

func TestCents_Decimal(t *testing.T) {
	t.Parallel()

	require.Equal(t, "11.00", coin.Cents(1100).Decimal().StringFixed(2))
	require.Equal(t, "0.05", coin.Cents(5).Decimal().StringFixed(2))
}

func TestIssue_PriceAt(t *testing.T) {
	t.Parallel()

	is := coin.Issue{Label: "1909", Prices: []coin.GradePrice{{Grade: 60, Price: 500}, {Grade: 65, Price: 1100}}}

	require.Equal(t, coin.Cents(1100), is.PriceAt(65))
	require.Equal(t, coin.Cents(0), is.PriceAt(63))
}
