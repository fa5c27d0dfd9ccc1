package coin

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Cents is a US dollar amount counted in cents.
type Cents int64

// dollars renders whole dollars and exactly two cent digits, no thousands separator.
var dollars = money.NewFormatter(2, ".", "", "$", "$1")

// String formats c as "$11.00". Zero renders as an empty string since a zero
// price means "no data".
func (c Cents) String() string {
	if c == 0 {
		return ""
	}
	return dollars.Format(int64(c))
}

// Decimal returns c in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// GradePrice is one cell of a price table.
type GradePrice struct {
	Grade int   `json:"grade"`
	Price Cents `json:"price"`
}

// Issue is one row of a series price table. Label packs the year, an optional
// mintmark and an optional qualifier, e.g. "1909 S VDB".
type Issue struct {
	Label   string       `json:"label"`
	Variety string       `json:"variety,omitempty"`
	Prices  []GradePrice `json:"prices"`
}

// PriceAt returns the tabulated price at grade, or 0 when the grade is absent.
func (i Issue) PriceAt(grade int) Cents {
	for _, p := range i.Prices {
		if p.Grade == grade {
			return p.Price
		}
	}
	return 0
}

// SeriesSnapshot is the price table of one series valid as of a date.
type SeriesSnapshot struct {
	Name      string    `json:"name"`
	Issues    []Issue   `json:"issues"`
	ValidAsOf time.Time `json:"valid_as_of"`
}

// SeriesDefinition describes the years a series was struck.
// EndYear 0 means the series is still active.
type SeriesDefinition struct {
	Name         string
	Denomination string
	Proof        bool
	StartYear    int
	EndYear      int
}

// RawCoin is a coin as entered by a collector.
type RawCoin struct {
	Series       string `json:"series,omitempty"`
	Year         string `json:"year"`
	Denomination string `json:"value"`
	Details      string `json:"details,omitempty"`
	Grade        string `json:"grade"`
	Variety      string `json:"variety,omitempty"`
}

// PricedCoin is the outcome of pricing a RawCoin.
type PricedCoin struct {
	Price       string     `json:"price"`
	ValidAsOf   *time.Time `json:"valid_as_of,omitempty"`
	Explanation string     `json:"explanation"`
}

// DateLayout is the layout of effective dates in snapshot keys and reports.
const DateLayout = "2006-01-02"
