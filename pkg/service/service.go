package service

import (
	"context"
	"time"

	"github.com/vecha2468/stockquote/model"
	"github.com/vecha2468/stockquote/quote"
	"go.uber.org/zap"
)

// Service is the application-facing quote API.
type Service interface {
	GetQuote(ctx context.Context, symbol string) (*model.Quote, error)
	CheckHealth(ctx context.Context) HealthResponse
}

type quoteService struct {
	fetcher    *quote.Fetcher
	sourceName string
	logger     *zap.Logger
	startTime  time.Time
	version    string
}

// NewService wraps a quote.Fetcher as a Service.
func NewService(fetcher *quote.Fetcher, sourceName, version string, logger *zap.Logger) Service {
	return &quoteService{
		fetcher:    fetcher,
		sourceName: sourceName,
		logger:     logger,
		startTime:  time.Now(),
		version:    version,
	}
}

func (s *quoteService) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	start := time.Now()
	q, err := s.fetcher.Fetch(ctx, symbol)
	if err != nil {
		s.logger.Warn("quote fetch failed",
			zap.String("symbol", symbol),
			zap.String("source", s.sourceName),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("quote fetched",
		zap.String("symbol", q.Symbol),
		zap.String("source", s.sourceName),
		zap.Float64("price", q.Price),
		zap.Duration("took", time.Since(start)))
	return q, nil
}
