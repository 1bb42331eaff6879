package quote

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/vecha2468/stockquote/feed"
	"github.com/vecha2468/stockquote/model"
	"go.uber.org/zap"
)

const (
	// HistoryDays is the daily-bar window used when a backend has no usable
	// fast quote; 5 days is enough to guarantee two valid rows across
	// weekends and single holidays.
	HistoryDays = 5

	MsgEmptySymbol = "stock symbol cannot be empty"
	MsgNoPriceData = "No valid price data found."
)

// Fetcher derives a Quote from a single QuoteSource. It performs no
// retries; a failed call surfaces immediately as a QuoteError.
type Fetcher struct {
	source feed.QuoteSource
}

func NewFetcher(source feed.QuoteSource) *Fetcher {
	return &Fetcher{source: source}
}

// Fetch resolves symbol to a fresh Quote.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) (*model.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, NewQuoteError(MsgEmptySymbol)
	}

	company := f.companyName(ctx, symbol)
	last, prev, err := f.prices(ctx, symbol)
	if err != nil {
		if IsQuoteError(err) {
			return nil, err
		}
		return nil, WrapQuoteError(fmt.Sprintf("error retrieving data for %s", symbol), err)
	}

	change := last - prev
	percent := 0.0
	if prev != 0 {
		percent = change / prev * 100
	}

	return &model.Quote{
		Symbol:  symbol,
		Company: company,
		Price:   round2(last),
		Change:  round2(change),
		Percent: round2(percent),
	}, nil
}

// companyName never propagates a lookup failure; the uppercased symbol is
// always an acceptable display name.
func (f *Fetcher) companyName(ctx context.Context, symbol string) string {
	name, err := f.source.CompanyName(ctx, symbol)
	if err != nil || strings.TrimSpace(name) == "" {
		zap.L().Debug("company name lookup failed, falling back to symbol",
			zap.String("symbol", symbol), zap.Error(err))
		return symbol
	}
	return name
}

func (f *Fetcher) prices(ctx context.Context, symbol string) (last, prev float64, err error) {
	fast, err := f.source.FastQuote(ctx, symbol)
	if err == nil && fast != nil && fast.LastPrice != 0 {
		return fast.LastPrice, fast.PreviousClose, nil
	}
	zap.L().Debug("fast quote unavailable, using daily history",
		zap.String("symbol", symbol), zap.Error(err))

	bars, err := f.source.DailyHistory(ctx, symbol, HistoryDays)
	if err != nil {
		return 0, 0, WrapQuoteError(MsgNoPriceData, err)
	}
	bars = dropEmptyBars(bars)
	if len(bars) == 0 {
		return 0, 0, NewQuoteError(MsgNoPriceData)
	}

	last = bars[len(bars)-1].Close
	if len(bars) >= 2 {
		prev = bars[len(bars)-2].Close
	} else {
		// Only one completed session: baseline against that day's open.
		prev = bars[len(bars)-1].Open
	}
	return last, prev, nil
}

// dropEmptyBars copies rather than compacting in place; the input slice may
// be shared with a cache.
func dropEmptyBars(bars []*model.StockData) []*model.StockData {
	out := make([]*model.StockData, 0, len(bars))
	for _, b := range bars {
		if b == nil || b.Close == 0 {
			continue
		}
		out = append(out, b)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
