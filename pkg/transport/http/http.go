package http

import (
	"context"
	"encoding/json"
	"net/http"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/vecha2468/stockquote/pkg/endpoint"
	"github.com/vecha2468/stockquote/quote"
	"go.uber.org/zap"
)

// NewHTTPHandler sets up HTTP handlers for the endpoints.
func NewHTTPHandler(endpoints endpoint.Endpoints, logger *zap.Logger) http.Handler {
	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(makeErrorEncoder(logger)),
	}

	mux := http.NewServeMux()

	mux.Handle("/api/v1/quote", httptransport.NewServer(
		endpoints.GetQuote,
		decodeGetQuoteRequest,
		encodeResponse,
		options...,
	))

	mux.Handle("/health", httptransport.NewServer(
		endpoints.CheckHealth,
		decodeHealthRequest,
		encodeResponse,
		options...,
	))

	return mux
}

func decodeGetQuoteRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return endpoint.GetQuoteRequest{Symbol: r.URL.Query().Get("symbol")}, nil
}

func decodeHealthRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

func encodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

// makeErrorEncoder maps expected quote failures to 400 and everything else
// to 500, always with a JSON error body.
func makeErrorEncoder(logger *zap.Logger) httptransport.ErrorEncoder {
	return func(_ context.Context, err error, w http.ResponseWriter) {
		status := http.StatusInternalServerError
		if quote.IsQuoteError(err) {
			status = http.StatusBadRequest
		} else {
			logger.Error("unexpected API error", zap.Error(err))
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
	}
}
