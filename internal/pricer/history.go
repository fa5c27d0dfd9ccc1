package pricer

import (
	"context"
	"time"

	"coinvalue/internal/coin"
	"coinvalue/internal/history"
)

// History prices raw as of each date and collapses the results with
// history.Collapse. When dates is empty every date held by the source is used.
func (p *Pricer) History(ctx context.Context, raw coin.RawCoin, dates []time.Time) ([]history.Point, error) {
	if len(dates) == 0 {
		all, err := p.source.Dates(ctx)
		if err != nil {
			return nil, err
		}
		dates = all
	}

	points := make([]history.Point, 0, len(dates))
	for _, d := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q, explanation := p.price(ctx, raw, d)
		if q.ValidAsOf == nil {
			continue
		}
		points = append(points, history.Point{AsOf: *q.ValidAsOf, Price: q.Price, Explanation: explanation})
	}
	return history.Collapse(points), nil
}
