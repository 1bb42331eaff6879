package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vecha2468/stockquote/model"
	"go.uber.org/zap"
)

const (
	ALPHA_VANTAGE_URL     = "https://www.alphavantage.co"
	FUNCTION_GLOBAL_QUOTE = "GLOBAL_QUOTE"
	FUNCTION_DAILY        = "TIME_SERIES_DAILY"
	FUNCTION_OVERVIEW     = "OVERVIEW"
	DATA_TYPE             = "json"

	FIELD_GQ_SYMBOL     = "01. symbol"
	FIELD_GQ_PRICE      = "05. price"
	FIELD_GQ_PREV_CLOSE = "08. previous close"
	FIELD_OPEN          = "1. open"
	FIELD_HIGH          = "2. high"
	FIELD_LOW           = "3. low"
	FIELD_CLOSE         = "4. close"
	FIELD_VOLUME        = "5. volume"
	DAILY_TIME_LAYOUT   = "2006-01-02"
)

type alphaVantageQuoteSource struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAlphaVantageQuoteSource creates an Alpha Vantage REST backend.
// The key comes from configuration (ALPHA_VANTAGE_API_KEY, with the
// "demo" fallback).
func NewAlphaVantageQuoteSource(apiKey string, client *http.Client) QuoteSource {
	return newAlphaVantageQuoteSource(apiKey, client, ALPHA_VANTAGE_URL)
}

func newAlphaVantageQuoteSource(apiKey string, client *http.Client, baseURL string) *alphaVantageQuoteSource {
	if apiKey == "" {
		zap.L().Warn("Alpha Vantage API key is missing, using the demo key")
		apiKey = "demo"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &alphaVantageQuoteSource{apiKey: apiKey, baseURL: baseURL, client: client}
}

func (s *alphaVantageQuoteSource) Name() string {
	return QuoteSourceAlphaVantage
}

func (s *alphaVantageQuoteSource) CompanyName(ctx context.Context, symbol string) (string, error) {
	body, err := s.query(ctx, FUNCTION_OVERVIEW, symbol)
	if err != nil {
		return "", err
	}
	var overview struct {
		Name string `json:"Name"`
	}
	if err := json.Unmarshal(body, &overview); err != nil {
		return "", fmt.Errorf("error parsing overview: %v", err)
	}
	if overview.Name == "" {
		return "", fmt.Errorf("no company name for %s", symbol)
	}
	return overview.Name, nil
}

// FastQuote uses GLOBAL_QUOTE. Alpha Vantage reports 0 for both fields on
// symbols it has incomplete data for, so a zero value forces the caller
// onto the history path.
func (s *alphaVantageQuoteSource) FastQuote(ctx context.Context, symbol string) (*model.FastQuote, error) {
	body, err := s.query(ctx, FUNCTION_GLOBAL_QUOTE, symbol)
	if err != nil {
		return nil, err
	}
	var response struct {
		GlobalQuote map[string]string `json:"Global Quote"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error parsing global quote: %v", err)
	}
	if len(response.GlobalQuote) == 0 {
		if msg := apiMessage(body); msg != "" {
			return nil, fmt.Errorf("API error: %s", msg)
		}
		return nil, ErrIncompleteQuote
	}
	last, _ := strconv.ParseFloat(response.GlobalQuote[FIELD_GQ_PRICE], 64)
	prev, _ := strconv.ParseFloat(response.GlobalQuote[FIELD_GQ_PREV_CLOSE], 64)
	if last == 0 || prev == 0 {
		return nil, ErrIncompleteQuote
	}
	return &model.FastQuote{Symbol: symbol, LastPrice: last, PreviousClose: prev}, nil
}

func (s *alphaVantageQuoteSource) DailyHistory(ctx context.Context, symbol string, days int) ([]*model.StockData, error) {
	body, err := s.query(ctx, FUNCTION_DAILY, symbol)
	if err != nil {
		return nil, err
	}
	var response struct {
		TimeSeries map[string]map[string]string `json:"Time Series (Daily)"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error parsing daily series: %v", err)
	}
	if len(response.TimeSeries) == 0 {
		if msg := apiMessage(body); msg != "" {
			return nil, fmt.Errorf("API error: %s", msg)
		}
		return nil, nil
	}

	bars := make([]*model.StockData, 0, len(response.TimeSeries))
	for timestamp, fields := range response.TimeSeries {
		t, err := time.Parse(DAILY_TIME_LAYOUT, timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %v", err)
		}
		open, err := strconv.ParseFloat(fields[FIELD_OPEN], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse open value: %v", err)
		}
		high, err := strconv.ParseFloat(fields[FIELD_HIGH], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse high value: %v", err)
		}
		low, err := strconv.ParseFloat(fields[FIELD_LOW], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse low value: %v", err)
		}
		close, err := strconv.ParseFloat(fields[FIELD_CLOSE], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse close value: %v", err)
		}
		volume, _ := strconv.ParseFloat(fields[FIELD_VOLUME], 64)
		bars = append(bars, &model.StockData{
			Symbol:    symbol,
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    volume,
			CloseTime: t.UTC(),
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].CloseTime.Before(bars[j].CloseTime) })
	if days > 0 && len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func (s *alphaVantageQuoteSource) query(ctx context.Context, function, symbol string) ([]byte, error) {
	queryURL := fmt.Sprintf("%s/query?function=%s&symbol=%s&datatype=%s&apikey=%s",
		s.baseURL, function, url.QueryEscape(symbol), DATA_TYPE, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}
	return body, nil
}

// apiMessage extracts Alpha Vantage's in-band error fields, which arrive
// with a 200 status.
func apiMessage(body []byte) string {
	var note struct {
		Note         string `json:"Note"`
		Information  string `json:"Information"`
		ErrorMessage string `json:"Error Message"`
	}
	if err := json.Unmarshal(body, &note); err != nil {
		return ""
	}
	for _, m := range []string{note.ErrorMessage, note.Note, note.Information} {
		if strings.TrimSpace(m) != "" {
			return m
		}
	}
	return ""
}
