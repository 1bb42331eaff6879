package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vecha2468/stockquote/model"
	"github.com/vecha2468/stockquote/utils"
)

const (
	FinanceYahooUrl = "https://query2.finance.yahoo.com"
	YahooChartPath  = "/v8/finance/chart/%s?interval=1d&range=%dd"
	UserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/91.0.4472.124"
)

type yahooQuoteSource struct {
	baseURL string
	client  *http.Client
}

// NewYahooQuoteSource creates a Yahoo Finance chart-API backend.
func NewYahooQuoteSource(client *http.Client) QuoteSource {
	return newYahooQuoteSource(client, FinanceYahooUrl)
}

func newYahooQuoteSource(client *http.Client, baseURL string) *yahooQuoteSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &yahooQuoteSource{baseURL: baseURL, client: client}
}

func (y *yahooQuoteSource) Name() string {
	return QuoteSourceYahoo
}

func (y *yahooQuoteSource) CompanyName(ctx context.Context, symbol string) (string, error) {
	chart, err := y.fetchChart(ctx, symbol, 1)
	if err != nil {
		return "", err
	}
	meta := chart.Chart.Result[0].Meta
	if meta.LongName != "" {
		return meta.LongName, nil
	}
	if meta.ShortName != "" {
		return meta.ShortName, nil
	}
	return "", fmt.Errorf("no company name for %s", symbol)
}

func (y *yahooQuoteSource) FastQuote(ctx context.Context, symbol string) (*model.FastQuote, error) {
	chart, err := y.fetchChart(ctx, symbol, 1)
	if err != nil {
		return nil, err
	}
	meta := chart.Chart.Result[0].Meta
	last := utils.NullToZero(meta.RegularMarketPrice)
	prev := utils.NullToZero(meta.ChartPreviousClose)
	if prev == 0 {
		prev = utils.NullToZero(meta.PreviousClose)
	}
	if last == 0 {
		return nil, ErrIncompleteQuote
	}
	return &model.FastQuote{Symbol: symbol, LastPrice: last, PreviousClose: prev}, nil
}

// DailyHistory fetches the most recent daily OHLCV bars, oldest first.
// Rows where Yahoo reports a null close are dropped.
func (y *yahooQuoteSource) DailyHistory(ctx context.Context, symbol string, days int) ([]*model.StockData, error) {
	chart, err := y.fetchChart(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote indicators returned")
	}
	quote := result.Indicators.Quote[0]

	bars := make([]*model.StockData, 0, len(result.Timestamp))
	for i := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		c := utils.NullToZero(quote.Close[i])
		if c == 0 {
			continue
		}
		bars = append(bars, &model.StockData{
			Symbol:    symbol,
			CloseTime: time.Unix(result.Timestamp[i], 0).UTC(),
			Open:      utils.NullToZero(index(quote.Open, i)),
			High:      utils.NullToZero(index(quote.High, i)),
			Low:       utils.NullToZero(index(quote.Low, i)),
			Close:     c,
			Volume:    index(quote.Volume, i),
		})
	}
	return bars, nil
}

func (y *yahooQuoteSource) fetchChart(ctx context.Context, symbol string, days int) (*YahooChartResponse, error) {
	url := y.baseURL + fmt.Sprintf(YahooChartPath, symbol, days)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var chart YahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("API error: %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("no data returned")
	}
	return &chart, nil
}

func index(vals []float64, i int) float64 {
	if i < 0 || i >= len(vals) {
		return 0
	}
	return vals[i]
}

// YahooChartResponse mirrors the v8 chart API payload, limited to the
// fields this feed consumes.
type YahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ShortName          string  `json:"shortName"`
				LongName           string  `json:"longName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
