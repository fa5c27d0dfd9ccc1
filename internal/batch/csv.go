// Package batch prices a collection of coins read from CSV and writes a
// priced copy of it.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"coinvalue/internal/coin"
)

// Header is the first row written by WriteResults.
var Header = []string{"Year", "Value", "Details", "Grade", "Variety", "Price", "As Of", "Notes"}

// Result is a coin together with its valuation.
type Result struct {
	Coin  coin.RawCoin
	Value coin.PricedCoin
}

// ReadCoins parses rows of "year,value,details,grade[,variety]". Rows with
// fewer than four fields are skipped, as is a leading header row whose first
// field is "year".
func ReadCoins(r io.Reader) ([]coin.RawCoin, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var coins []coin.RawCoin
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read coins line %d: %w", line, err)
		}
		if len(row) < 4 {
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "year") {
			continue
		}
		c := coin.RawCoin{
			Year:         strings.TrimSpace(row[0]),
			Denomination: strings.TrimSpace(row[1]),
			Details:      strings.TrimSpace(row[2]),
			Grade:        strings.TrimSpace(row[3]),
		}
		if len(row) >= 5 {
			c.Variety = strings.TrimSpace(row[4])
		}
		coins = append(coins, c)
	}
	return coins, nil
}

// WriteResults writes results in input order under Header.
func WriteResults(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, res := range results {
		asOf := ""
		if res.Value.ValidAsOf != nil {
			asOf = res.Value.ValidAsOf.Format(coin.DateLayout)
		}
		row := []string{
			res.Coin.Year,
			res.Coin.Denomination,
			res.Coin.Details,
			res.Coin.Grade,
			res.Coin.Variety,
			res.Value.Price,
			asOf,
			res.Value.Explanation,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
