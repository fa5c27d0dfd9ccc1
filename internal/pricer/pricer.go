// Package pricer values a coin against the price tables in effect on a date.
//
// PriceCoin works on a known series and reports structured results.
// PriceOneCoin takes a coin as a collector enters it, works out the series when
// it is missing and always returns a row: anything it cannot settle is
// described in the explanation rather than returned as an error.
package pricer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coinvalue/internal/coin"
	"coinvalue/internal/interpolate"
	"coinvalue/internal/logger"
	"coinvalue/internal/match"
	"coinvalue/internal/series"
	"coinvalue/internal/snapshot"
)

//go:generate mockgen -package=pricer_test -destination=mock_source_test.go coinvalue/internal/snapshot Source

// Pricer prices coins. It is safe for concurrent use when its Source is.
type Pricer struct {
	source   snapshot.Source
	resolver *series.Resolver
	log      *logger.Log
	now      func() time.Time
}

// Option is a configuration option for Pricer.
type Option func(*Pricer)

// WithResolver replaces the series table lookup.
func WithResolver(r *series.Resolver) Option {
	return func(p *Pricer) {
		p.resolver = r
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Log) Option {
	return func(p *Pricer) {
		p.log = log
	}
}

// WithClock sets the time used when no as-of date is given.
func WithClock(now func() time.Time) Option {
	return func(p *Pricer) {
		p.now = now
	}
}

// New returns a Pricer reading price tables from src.
func New(src snapshot.Source, options ...Option) *Pricer {
	p := &Pricer{
		source:   src,
		resolver: series.Default,
		log:      logger.GetLogger(),
		now:      time.Now,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Request identifies a coin within a known series.
type Request struct {
	Series  string
	Year    string
	Variety string
	Details string
	Grade   int
}

// Quote is the structured outcome of PriceCoin. Exact is set when the grade
// was listed; Below and Above are the nearest listed grades otherwise.
// ErrorCode carries lookup problems and ambiguity notes; it is not an error.
type Quote struct {
	Price     coin.Cents
	Exact     bool
	ValidAsOf *time.Time
	Below     *coin.GradePrice
	Above     *coin.GradePrice
	ErrorCode string
}

// PriceCoin prices req against the tables in effect on asOf (now when zero).
// The error is only set when the tables cannot be loaded.
func (p *Pricer) PriceCoin(ctx context.Context, req Request, asOf time.Time) (Quote, error) {
	if asOf.IsZero() {
		asOf = p.now()
	}
	snaps, err := p.source.Load(ctx, asOf)
	if err != nil {
		return Quote{}, fmt.Errorf("load price tables as of %s: %w", asOf.Format(coin.DateLayout), err)
	}

	var q Quote
	snap, ok := snapshot.Find(snaps, req.Series)
	if !ok {
		q.ErrorCode = fmt.Sprintf("%s not found", req.Series)
		return q, nil
	}
	validAsOf := snap.ValidAsOf
	q.ValidAsOf = &validAsOf

	res, err := match.Match(snap.Issues, match.Target{Year: req.Year, Variety: req.Variety, Details: req.Details})
	if errors.Is(err, match.ErrYearNotFound) {
		q.ErrorCode = fmt.Sprintf("Year %s not found in %s", req.Year, snap.Name)
		return q, nil
	}
	if err != nil {
		return q, err
	}
	q.ErrorCode = res.Note

	est := interpolate.Interpolate(res.Issue.Prices, req.Grade)
	q.Price = est.Price
	q.Exact = est.Exact
	q.Below = est.Below
	q.Above = est.Above
	return q, nil
}

// PriceOneCoin prices a coin as entered by a collector. Grade text is parsed
// with ParseGrade and the series, when missing, is resolved from the year,
// denomination and details.
func (p *Pricer) PriceOneCoin(ctx context.Context, raw coin.RawCoin, asOf time.Time) coin.PricedCoin {
	q, explanation := p.price(ctx, raw, asOf)
	out := coin.PricedCoin{Price: q.Price.String(), Explanation: explanation}
	if q.Price != 0 {
		out.ValidAsOf = q.ValidAsOf
	}
	return out
}

func (p *Pricer) price(ctx context.Context, raw coin.RawCoin, asOf time.Time) (Quote, string) {
	log := p.log.WithComponent("pricer").WithFields(logger.Fields{
		"year":  raw.Year,
		"value": raw.Denomination,
		"grade": raw.Grade,
	})

	grade, proof, ok := ParseGrade(raw.Grade)
	if !ok {
		return Quote{}, fmt.Sprintf("Grade %q not recognized", raw.Grade)
	}

	segments := SplitDetails(raw.Details)
	name := strings.TrimSpace(raw.Series)
	if name == "" {
		names, found := p.resolver.Resolve(raw.Year, raw.Denomination, proof)
		switch {
		case !found:
			return Quote{}, "No matching series found"
		case len(names) == 1:
			name = names[0]
		default:
			name = pickSeries(segments, names)
			if name == "" {
				return Quote{}, "Multiple matching series: " + strings.Join(names, ", ")
			}
		}
	}

	variety, details := residual(segments, name, raw.Variety)
	req := Request{Series: name, Year: raw.Year, Variety: variety, Details: details, Grade: grade}
	q, err := p.PriceCoin(ctx, req, asOf)
	if err != nil {
		log.WithError(err).Warn("price tables unavailable")
		return Quote{}, fmt.Sprintf("%s not found", name)
	}
	log.WithFields(logger.Fields{
		"series": name,
		"price":  int64(q.Price),
		"exact":  q.Exact,
	}).Debug("priced coin")
	return q, explain(q, grade)
}

func explain(q Quote, grade int) string {
	var parts []string
	if q.ErrorCode != "" {
		parts = append(parts, q.ErrorCode)
	}
	switch {
	case q.Price != 0 && !q.Exact:
		var nearest []string
		if q.Below != nil {
			nearest = append(nearest, fmt.Sprintf("Grade %d at %s", q.Below.Grade, q.Below.Price))
		}
		if q.Above != nil {
			nearest = append(nearest, fmt.Sprintf("Grade %d at %s", q.Above.Grade, q.Above.Price))
		}
		parts = append(parts, "No exact price found - closest matches were "+strings.Join(nearest, " and "))
	case q.Price == 0 && q.ValidAsOf != nil && len(parts) == 0:
		parts = append(parts, fmt.Sprintf("No price data for grade %d", grade))
	}
	return strings.Join(parts, ". ")
}

// SplitDetails splits pipe-delimited details into trimmed, non-empty segments.
func SplitDetails(details string) []string {
	var out []string
	for _, d := range strings.Split(details, "|") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// pickSeries returns the candidate named by one of the segments.
func pickSeries(segments, names []string) string {
	for _, d := range segments {
		for _, n := range names {
			if strings.EqualFold(d, n) {
				return n
			}
		}
	}
	return ""
}

// residual derives the variety and detail text from the segments that do not
// name the series. The first leftover segment stands in for a missing variety;
// the second, or the first when it is the only one, is the detail text.
// Further segments are ignored.
func residual(segments []string, series, variety string) (string, string) {
	var rest []string
	for _, d := range segments {
		if !strings.EqualFold(d, series) {
			rest = append(rest, d)
		}
	}
	var details string
	switch {
	case len(rest) >= 2:
		details = rest[1]
	case len(rest) == 1:
		details = rest[0]
	}
	if variety == "" && len(rest) > 0 {
		variety = rest[0]
	}
	return strings.TrimSpace(variety), details
}
