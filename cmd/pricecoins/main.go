// Command pricecoins prices a CSV list of coins and writes a priced copy.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"coinvalue/internal/batch"
	"coinvalue/internal/coin"
	"coinvalue/internal/config"
	"coinvalue/internal/logger"
	"coinvalue/internal/pricer"
	"coinvalue/internal/source"
)

func main() {
	_ = godotenv.Load()

	var configPath, inPath, outPath, date string
	var workers int

	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.yaml or config.json (optional)")
	flag.StringVar(&inPath, "in", "", "coins CSV: year,value,details,grade[,variety] (default from config)")
	flag.StringVar(&outPath, "out", "", "priced CSV to write, - for stdout (default from config)")
	flag.StringVar(&date, "date", getenv("PRICE_DATE", ""), "price as of YYYY-MM-DD (default today)")
	flag.IntVar(&workers, "workers", 0, "coins priced concurrently (default from config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fatal(err)
	}
	if inPath != "" {
		cfg.Batch.Input = inPath
	}
	if outPath != "" {
		cfg.Batch.Output = outPath
	}
	if workers > 0 {
		cfg.Batch.Workers = workers
	}

	log := logger.GetLogger()
	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		fatal(err)
	}

	asOf := time.Now()
	if strings.TrimSpace(date) != "" {
		asOf, err = time.Parse(coin.DateLayout, strings.TrimSpace(date))
		if err != nil {
			fatal(fmt.Errorf("invalid -date %q: %w", date, err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := source.Open(ctx, cfg, log)
	if err != nil {
		log.WithComponent("pricecoins").WithError(err).Fatal("open price tables")
	}

	in, err := os.Open(cfg.Batch.Input)
	if err != nil {
		log.WithComponent("pricecoins").WithError(err).Fatal("open coins")
	}
	defer in.Close()

	out := os.Stdout
	if cfg.Batch.Output != "-" {
		out, err = os.Create(cfg.Batch.Output)
		if err != nil {
			log.WithComponent("pricecoins").WithError(err).Fatal("create output")
		}
	}

	p := pricer.New(src, pricer.WithLogger(log))
	runner := batch.NewRunner(p, batch.WithWorkers(cfg.Batch.Workers), batch.WithLogger(log))
	sum, err := runner.Run(ctx, in, out, asOf)
	if out != os.Stdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.WithComponent("pricecoins").WithError(err).Fatal("batch failed")
	}

	fmt.Fprintf(os.Stderr, "priced %d of %d coins as of %s -> %s (run %s, %s)\n",
		sum.Priced, sum.Coins, asOf.Format(coin.DateLayout), cfg.Batch.Output, sum.RunID, sum.Elapsed.Round(time.Millisecond))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "pricecoins:", err)
	os.Exit(1)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
