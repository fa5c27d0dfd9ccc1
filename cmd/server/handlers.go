package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"coinvalue/internal/batch"
	"coinvalue/internal/coin"
	"coinvalue/internal/history"
	"coinvalue/internal/logger"
	"coinvalue/internal/pricer"
	"coinvalue/internal/snapshot"
)

const maxCoins = 1000

type api struct {
	pricer  *pricer.Pricer
	runner  *batch.Runner
	tables  *snapshot.Cache
	log     *logger.Log
	timeout time.Duration
}

func newAPI(tables *snapshot.Cache, log *logger.Log, workers int, timeout time.Duration) *api {
	p := pricer.New(tables, pricer.WithLogger(log))
	return &api{
		pricer:  p,
		runner:  batch.NewRunner(p, batch.WithWorkers(workers), batch.WithLogger(log)),
		tables:  tables,
		log:     log,
		timeout: timeout,
	}
}

func (a *api) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/price", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			a.handleGetPrice(w, r)
		case http.MethodPost:
			a.handlePostPrice(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/history", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		a.handleHistory(w, r)
	})
	mux.HandleFunc("/api/reload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		a.tables.Invalidate()
		a.log.WithComponent("server").Info("price tables invalidated")
		writeJSON(w, map[string]string{"status": "reloaded"})
	})
	return mux
}

type pricedResponse struct {
	Coin coin.RawCoin `json:"coin"`
	coin.PricedCoin
}

type pricesResponse struct {
	Results []pricedResponse `json:"results"`
}

type historyResponse struct {
	Coin   coin.RawCoin   `json:"coin"`
	Points []historyPoint `json:"points"`
}

// historyPoint adds the price in dollars, e.g. "11.00", for charting.
type historyPoint struct {
	history.Point
	Dollars string `json:"dollars"`
}

func newHistoryResponse(c coin.RawCoin, points []history.Point) historyResponse {
	resp := historyResponse{Coin: c, Points: make([]historyPoint, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, historyPoint{Point: p, Dollars: p.Price.Decimal().StringFixed(2)})
	}
	return resp
}

func coinFromQuery(r *http.Request) coin.RawCoin {
	q := r.URL.Query()
	return coin.RawCoin{
		Series:       strings.TrimSpace(q.Get("series")),
		Year:         strings.TrimSpace(q.Get("year")),
		Denomination: strings.TrimSpace(q.Get("value")),
		Details:      strings.TrimSpace(q.Get("details")),
		Grade:        strings.TrimSpace(q.Get("grade")),
		Variety:      strings.TrimSpace(q.Get("variety")),
	}
}

// parseDate reads an optional YYYY-MM-DD; empty yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s = strings.TrimSpace(s); s == "" {
		return time.Time{}, nil
	}
	return time.Parse(coin.DateLayout, s)
}

func (a *api) handleGetPrice(w http.ResponseWriter, r *http.Request) {
	c := coinFromQuery(r)
	if c.Year == "" || c.Grade == "" {
		http.Error(w, "missing year or grade query param", http.StatusBadRequest)
		return
	}
	asOf, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), a.timeout)
	defer cancel()
	writeJSON(w, pricedResponse{Coin: c, PricedCoin: a.pricer.PriceOneCoin(ctx, c, asOf)})
}

type postBody struct {
	Date  string         `json:"date"`
	Coins []coin.RawCoin `json:"coins"`
}

func (a *api) handlePostPrice(w http.ResponseWriter, r *http.Request) {
	var b postBody
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(b.Coins) == 0 {
		http.Error(w, "coins cannot be empty", http.StatusBadRequest)
		return
	}
	if len(b.Coins) > maxCoins {
		http.Error(w, "too many coins (max 1000)", http.StatusBadRequest)
		return
	}
	asOf, err := parseDate(b.Date)
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	ctx, cancel := context.WithTimeout(r.Context(), a.timeout)
	defer cancel()
	results, err := a.runner.Price(ctx, b.Coins, asOf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
		return
	}
	resp := pricesResponse{Results: make([]pricedResponse, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, pricedResponse{Coin: res.Coin, PricedCoin: res.Value})
	}
	writeJSON(w, resp)
}

func (a *api) handleHistory(w http.ResponseWriter, r *http.Request) {
	c := coinFromQuery(r)
	if c.Year == "" || c.Grade == "" {
		http.Error(w, "missing year or grade query param", http.StatusBadRequest)
		return
	}
	q := r.URL.Query()
	start, err := parseDate(q.Get("start"))
	if err != nil {
		http.Error(w, "invalid start, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := parseDate(q.Get("end"))
	if err != nil {
		http.Error(w, "invalid end, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	step := 0
	if v := q.Get("step"); v != "" {
		if step, err = strconv.Atoi(v); err != nil || step < 0 {
			http.Error(w, "invalid step, want days", http.StatusBadRequest)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), a.timeout)
	defer cancel()

	var dates []time.Time
	if !start.IsZero() || !end.IsZero() {
		available, err := a.tables.Dates(ctx)
		if err != nil {
			a.log.WithComponent("server").WithError(err).Warn("list price table dates")
			http.Error(w, "price tables unavailable", http.StatusBadGateway)
			return
		}
		if end.IsZero() {
			end = time.Now().UTC()
		}
		if start.IsZero() && len(available) > 0 {
			start = available[0]
		}
		dates = history.StepDates(available, start, end, step)
		if len(dates) == 0 {
			writeJSON(w, newHistoryResponse(c, nil))
			return
		}
	}

	points, err := a.pricer.History(ctx, c, dates)
	if err != nil {
		a.log.WithComponent("server").WithError(err).Warn("price history")
		http.Error(w, "price tables unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, newHistoryResponse(c, points))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
