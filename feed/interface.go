package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vecha2468/stockquote/model"
	"github.com/vecha2468/stockquote/pkg/config"
)

const (
	QuoteSourceYahoo        = "yahoo"
	QuoteSourceAlphaVantage = "alphavantage"
)

// ErrIncompleteQuote signals that a backend's fast-quote path returned no
// usable price pair (missing or zero fields). Callers fall back to the
// historical path.
var ErrIncompleteQuote = errors.New("incomplete quote data")

// QuoteSource is the contract every price backend implements.
type QuoteSource interface {
	Name() string
	// CompanyName resolves a display name for the symbol.
	CompanyName(ctx context.Context, symbol string) (string, error)
	// FastQuote returns the backend's lightweight (last, previous close)
	// price pair, or ErrIncompleteQuote when either field is unusable.
	FastQuote(ctx context.Context, symbol string) (*model.FastQuote, error)
	// DailyHistory returns up to days most recent daily bars, oldest first.
	DailyHistory(ctx context.Context, symbol string, days int) ([]*model.StockData, error)
}

// NewQuoteSource builds the configured backend with an injected HTTP client.
func NewQuoteSource(cfg config.Config) (QuoteSource, error) {
	client := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second}
	switch cfg.QuoteSource {
	case QuoteSourceYahoo:
		return NewYahooQuoteSource(client), nil
	case QuoteSourceAlphaVantage:
		return NewAlphaVantageQuoteSource(cfg.AlphaVantageAPIKey, client), nil
	default:
		return nil, fmt.Errorf("unknown quote source: %s", cfg.QuoteSource)
	}
}
