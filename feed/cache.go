package feed

import (
	"context"
	"sync"
	"time"

	"github.com/vecha2468/stockquote/model"
)

type cacheEntry struct {
	expiresAt time.Time
	name      string
	fast      *model.FastQuote
	history   []*model.StockData
}

// CachedQuoteSource memoizes backend responses per symbol for a TTL so
// repeated lookups of the same ticker do not hit the upstream again.
// It replaces the original process-wide cached HTTP session: the cache is
// constructed explicitly and injected wherever a QuoteSource is needed.
type CachedQuoteSource struct {
	source QuoteSource
	ttl    time.Duration

	mu        sync.Mutex
	names     map[string]cacheEntry
	fasts     map[string]cacheEntry
	histories map[string]cacheEntry
}

// NewCachedQuoteSource wraps source with a TTL cache. A non-positive TTL
// disables caching entirely.
func NewCachedQuoteSource(source QuoteSource, ttl time.Duration) *CachedQuoteSource {
	return &CachedQuoteSource{
		source:    source,
		ttl:       ttl,
		names:     make(map[string]cacheEntry),
		fasts:     make(map[string]cacheEntry),
		histories: make(map[string]cacheEntry),
	}
}

func (c *CachedQuoteSource) Name() string {
	return c.source.Name()
}

func (c *CachedQuoteSource) CompanyName(ctx context.Context, symbol string) (string, error) {
	if c.ttl > 0 {
		c.mu.Lock()
		e, ok := c.names[symbol]
		c.mu.Unlock()
		if ok && time.Now().Before(e.expiresAt) {
			return e.name, nil
		}
	}
	name, err := c.source.CompanyName(ctx, symbol)
	if err != nil {
		return "", err
	}
	c.store(c.names, symbol, cacheEntry{name: name})
	return name, nil
}

func (c *CachedQuoteSource) FastQuote(ctx context.Context, symbol string) (*model.FastQuote, error) {
	if c.ttl > 0 {
		c.mu.Lock()
		e, ok := c.fasts[symbol]
		c.mu.Unlock()
		if ok && time.Now().Before(e.expiresAt) {
			return e.fast, nil
		}
	}
	fast, err := c.source.FastQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.store(c.fasts, symbol, cacheEntry{fast: fast})
	return fast, nil
}

func (c *CachedQuoteSource) DailyHistory(ctx context.Context, symbol string, days int) ([]*model.StockData, error) {
	if c.ttl > 0 {
		c.mu.Lock()
		e, ok := c.histories[symbol]
		c.mu.Unlock()
		if ok && time.Now().Before(e.expiresAt) && len(e.history) >= days {
			return e.history[len(e.history)-days:], nil
		}
	}
	bars, err := c.source.DailyHistory(ctx, symbol, days)
	if err != nil {
		return nil, err
	}
	c.store(c.histories, symbol, cacheEntry{history: bars})
	return bars, nil
}

func (c *CachedQuoteSource) store(m map[string]cacheEntry, symbol string, e cacheEntry) {
	if c.ttl <= 0 {
		return
	}
	e.expiresAt = time.Now().Add(c.ttl)
	c.mu.Lock()
	m[symbol] = e
	c.mu.Unlock()
}
