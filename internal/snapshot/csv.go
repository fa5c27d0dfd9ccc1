package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"coinvalue/internal/coin"
	"coinvalue/internal/logger"
	"coinvalue/internal/match"
)

// DecodeCSV parses one series price table. The header row is
// "year,variety,<grade>,<grade>,..." and every following row is an issue label,
// its variety and one price in cents per grade column. Rows shorter than the
// header and rows without a year are skipped; unparsable cells count as no data.
// A grade repeated in the header is read from its first column only.
func DecodeCSV(r io.Reader, name string, asOf time.Time) (coin.SeriesSnapshot, error) {
	return decodeCSV(r, name, asOf, nil)
}

// decodeCSV is DecodeCSV reporting skipped header columns to log when set.
func decodeCSV(r io.Reader, name string, asOf time.Time, log *logger.Log) (coin.SeriesSnapshot, error) {
	snap := coin.SeriesSnapshot{Name: name, ValidAsOf: asOf}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return snap, nil
	}
	if err != nil {
		return snap, fmt.Errorf("read header: %w", err)
	}
	grades := make([]int, len(header))
	seen := make(map[int]bool, len(header))
	for i := 2; i < len(header); i++ {
		g, err := strconv.Atoi(strings.TrimSpace(header[i]))
		switch {
		case err != nil:
			g = -1
		case seen[g]:
			if log != nil {
				log.WithComponent("snapshot").WithFields(logger.Fields{
					"series": name,
					"grade":  g,
					"column": i + 1,
				}).Warn("duplicate grade column skipped")
			}
			g = -1
		default:
			seen[g] = true
		}
		grades[i] = g
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return snap, fmt.Errorf("read %s: %w", name, err)
		}
		if len(row) < len(header) || len(row) < 2 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if strings.HasPrefix(match.NormalizeYearMintmark(label), "-") {
			continue
		}
		is := coin.Issue{Label: label, Variety: strings.TrimSpace(row[1])}
		for i := 2; i < len(row) && i < len(grades); i++ {
			if grades[i] < 0 {
				continue
			}
			is.Prices = append(is.Prices, coin.GradePrice{Grade: grades[i], Price: parseCents(row[i])})
		}
		snap.Issues = append(snap.Issues, is)
	}
	return snap, nil
}

func parseCents(cell string) coin.Cents {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}
	return coin.Cents(d.IntPart())
}

// EncodeCSV writes snap in the layout read by DecodeCSV. Grade columns are the
// union of all grades in the table, ascending.
func EncodeCSV(w io.Writer, snap coin.SeriesSnapshot) error {
	seen := map[int]bool{}
	var grades []int
	for _, is := range snap.Issues {
		for _, p := range is.Prices {
			if !seen[p.Grade] {
				seen[p.Grade] = true
				grades = append(grades, p.Grade)
			}
		}
	}
	sort.Ints(grades)

	cw := csv.NewWriter(w)
	header := []string{"year", "variety"}
	for _, g := range grades {
		header = append(header, strconv.Itoa(g))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, is := range snap.Issues {
		row := []string{is.Label, is.Variety}
		for _, g := range grades {
			row = append(row, strconv.FormatInt(int64(is.PriceAt(g)), 10))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
