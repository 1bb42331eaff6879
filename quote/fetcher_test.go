package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecha2468/stockquote/feed"
	"github.com/vecha2468/stockquote/model"
)

// fakeSource implements feed.QuoteSource for testing.
type fakeSource struct {
	company    string
	companyErr error
	fast       *model.FastQuote
	fastErr    error
	history    []*model.StockData
	historyErr error

	companyCalls int
	fastCalls    int
	historyCalls int
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) CompanyName(ctx context.Context, symbol string) (string, error) {
	f.companyCalls++
	return f.company, f.companyErr
}

func (f *fakeSource) FastQuote(ctx context.Context, symbol string) (*model.FastQuote, error) {
	f.fastCalls++
	return f.fast, f.fastErr
}

func (f *fakeSource) DailyHistory(ctx context.Context, symbol string, days int) ([]*model.StockData, error) {
	f.historyCalls++
	return f.history, f.historyErr
}

func bar(day int, open, close float64) *model.StockData {
	return &model.StockData{
		Symbol:    "AAPL",
		Open:      open,
		Close:     close,
		CloseTime: time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestFetchNormalizesSymbol(t *testing.T) {
	src := &fakeSource{
		company: "Apple Inc.",
		fast:    &model.FastQuote{LastPrice: 105.50, PreviousClose: 100.00},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "  aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, "Apple Inc.", q.Company)
}

func TestFetchEmptySymbol(t *testing.T) {
	for _, symbol := range []string{"", "   ", "\t"} {
		src := &fakeSource{}
		_, err := NewFetcher(src).Fetch(context.Background(), symbol)
		require.Error(t, err)
		assert.True(t, IsQuoteError(err))
		assert.Equal(t, MsgEmptySymbol, err.Error())
		// The backend must never be reached for empty input.
		assert.Zero(t, src.companyCalls)
		assert.Zero(t, src.fastCalls)
		assert.Zero(t, src.historyCalls)
	}
}

func TestFetchFastPathMath(t *testing.T) {
	src := &fakeSource{
		company: "Apple Inc.",
		fast:    &model.FastQuote{LastPrice: 105.50, PreviousClose: 100.00},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 105.50, q.Price)
	assert.Equal(t, 5.50, q.Change)
	assert.Equal(t, 5.50, q.Percent)
	assert.Zero(t, src.historyCalls)
}

func TestFetchZeroPreviousClose(t *testing.T) {
	src := &fakeSource{
		fast: &model.FastQuote{LastPrice: 10.00, PreviousClose: 0},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "NEWCO")
	require.NoError(t, err)
	assert.Equal(t, 10.00, q.Price)
	assert.Equal(t, 10.00, q.Change)
	assert.Equal(t, 0.0, q.Percent)
}

func TestFetchRoundsToTwoDecimals(t *testing.T) {
	src := &fakeSource{
		fast: &model.FastQuote{LastPrice: 101.2345, PreviousClose: 102.469},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 101.23, q.Price)
	assert.Equal(t, -1.23, q.Change)
	assert.Equal(t, -1.20, q.Percent)
}

func TestFetchHistoryFallback(t *testing.T) {
	src := &fakeSource{
		fastErr: feed.ErrIncompleteQuote,
		history: []*model.StockData{
			bar(25, 98, 99),
			bar(26, 99, 100),
			bar(27, 100, 105.50),
		},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 1, src.historyCalls)
	assert.Equal(t, 105.50, q.Price)
	assert.Equal(t, 5.50, q.Change)
	assert.Equal(t, 5.50, q.Percent)
}

func TestFetchHistoryDropsEmptyRows(t *testing.T) {
	src := &fakeSource{
		fastErr: feed.ErrIncompleteQuote,
		history: []*model.StockData{
			bar(25, 99, 100),
			bar(26, 0, 0), // holiday row, no close
			bar(27, 100, 105.50),
		},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 105.50, q.Price)
	assert.Equal(t, 5.50, q.Change)
	assert.Equal(t, 5.50, q.Percent)
}

func TestFetchSingleRowUsesOpen(t *testing.T) {
	src := &fakeSource{
		fastErr: feed.ErrIncompleteQuote,
		history: []*model.StockData{bar(27, 100, 104)},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "IPOX")
	require.NoError(t, err)
	assert.Equal(t, 104.0, q.Price)
	assert.Equal(t, 4.0, q.Change)
	assert.Equal(t, 4.0, q.Percent)
}

func TestFetchEmptyHistory(t *testing.T) {
	src := &fakeSource{
		fastErr: feed.ErrIncompleteQuote,
	}
	_, err := NewFetcher(src).Fetch(context.Background(), "NOPE")
	require.Error(t, err)
	assert.True(t, IsQuoteError(err))
	assert.Equal(t, MsgNoPriceData, err.Error())
}

func TestFetchHistoryErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	src := &fakeSource{
		fastErr:    feed.ErrIncompleteQuote,
		historyErr: cause,
	}
	_, err := NewFetcher(src).Fetch(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, IsQuoteError(err))
	assert.Contains(t, err.Error(), MsgNoPriceData)
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestFetchCompanyNameFallback(t *testing.T) {
	src := &fakeSource{
		companyErr: errors.New("overview unavailable"),
		fast:       &model.FastQuote{LastPrice: 50, PreviousClose: 40},
	}
	q, err := NewFetcher(src).Fetch(context.Background(), "msft")
	require.NoError(t, err)
	assert.Equal(t, "MSFT", q.Company)
}
