package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"coinvalue/internal/coin"
	"coinvalue/internal/logger"
)

// Pricer values a single coin.
type Pricer interface {
	PriceOneCoin(ctx context.Context, raw coin.RawCoin, asOf time.Time) coin.PricedCoin
}

// Runner prices coins with a bounded pool of workers.
type Runner struct {
	pricer  Pricer
	workers int
	log     *logger.Log
}

// RunnerOption is a configuration option for Runner.
type RunnerOption func(*Runner)

// WithWorkers sets how many coins are priced at once.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Log) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

// NewRunner returns a Runner using p.
func NewRunner(p Pricer, options ...RunnerOption) *Runner {
	r := &Runner{pricer: p, workers: 4, log: logger.GetLogger()}
	for _, option := range options {
		option(r)
	}
	return r
}

// Summary describes a finished run.
type Summary struct {
	RunID   string        `json:"run_id"`
	Coins   int           `json:"coins"`
	Priced  int           `json:"priced"`
	Elapsed time.Duration `json:"elapsed"`
}

// Price values coins as of asOf. Results keep the order of coins.
func (r *Runner) Price(ctx context.Context, coins []coin.RawCoin, asOf time.Time) ([]Result, error) {
	results := make([]Result, len(coins))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, c := range coins {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Coin: c, Value: r.pricer.PriceOneCoin(gctx, c, asOf)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run reads coins from in, prices them and writes the results to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer, asOf time.Time) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: uuid.NewString()}
	log := r.log.WithComponent("batch").WithFields(logger.Fields{"run_id": sum.RunID})

	coins, err := ReadCoins(in)
	if err != nil {
		return sum, err
	}
	sum.Coins = len(coins)
	log.WithFields(logger.Fields{"coins": len(coins), "workers": r.workers}).Info("pricing coins")

	results, err := r.Price(ctx, coins, asOf)
	if err != nil {
		return sum, fmt.Errorf("price coins: %w", err)
	}
	for _, res := range results {
		if res.Value.Price != "" {
			sum.Priced++
		}
	}
	if err := WriteResults(out, results); err != nil {
		return sum, fmt.Errorf("write results: %w", err)
	}

	sum.Elapsed = time.Since(start)
	log.WithFields(logger.Fields{
		"priced":  sum.Priced,
		"elapsed": sum.Elapsed.String(),
	}).Info("batch complete")
	return sum, nil
}
