package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vecha2468/stockquote/model"
)

type countingSource struct {
	companyCalls int
	fastCalls    int
	historyCalls int
}

func (c *countingSource) Name() string { return "counting" }

func (c *countingSource) CompanyName(ctx context.Context, symbol string) (string, error) {
	c.companyCalls++
	return "Apple Inc.", nil
}

func (c *countingSource) FastQuote(ctx context.Context, symbol string) (*model.FastQuote, error) {
	c.fastCalls++
	return &model.FastQuote{Symbol: symbol, LastPrice: 105.5, PreviousClose: 100}, nil
}

func (c *countingSource) DailyHistory(ctx context.Context, symbol string, days int) ([]*model.StockData, error) {
	c.historyCalls++
	bars := make([]*model.StockData, days)
	for i := range bars {
		bars[i] = &model.StockData{Symbol: symbol, Close: 100 + float64(i)}
	}
	return bars, nil
}

func TestCachedSourceServesRepeatsFromCache(t *testing.T) {
	underlying := &countingSource{}
	cached := NewCachedQuoteSource(underlying, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		fq, err := cached.FastQuote(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, 105.5, fq.LastPrice)

		name, err := cached.CompanyName(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "Apple Inc.", name)

		bars, err := cached.DailyHistory(ctx, "AAPL", 5)
		require.NoError(t, err)
		assert.Len(t, bars, 5)
	}

	assert.Equal(t, 1, underlying.fastCalls)
	assert.Equal(t, 1, underlying.companyCalls)
	assert.Equal(t, 1, underlying.historyCalls)
}

func TestCachedSourceIsPerSymbol(t *testing.T) {
	underlying := &countingSource{}
	cached := NewCachedQuoteSource(underlying, time.Hour)
	ctx := context.Background()

	_, err := cached.FastQuote(ctx, "AAPL")
	require.NoError(t, err)
	_, err = cached.FastQuote(ctx, "MSFT")
	require.NoError(t, err)
	assert.Equal(t, 2, underlying.fastCalls)
}

func TestCachedSourceZeroTTLDisablesCaching(t *testing.T) {
	underlying := &countingSource{}
	cached := NewCachedQuoteSource(underlying, 0)
	ctx := context.Background()

	_, err := cached.FastQuote(ctx, "AAPL")
	require.NoError(t, err)
	_, err = cached.FastQuote(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 2, underlying.fastCalls)
}

func TestCachedSourceExpiry(t *testing.T) {
	underlying := &countingSource{}
	cached := NewCachedQuoteSource(underlying, 10*time.Millisecond)
	ctx := context.Background()

	_, err := cached.FastQuote(ctx, "AAPL")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = cached.FastQuote(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 2, underlying.fastCalls)
}
