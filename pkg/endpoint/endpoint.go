package endpoint

import (
	"context"
	"errors"

	"github.com/go-kit/kit/endpoint"
	"github.com/vecha2468/stockquote/pkg/service"
)

// GetQuoteRequest carries the symbol through the transport layer.
type GetQuoteRequest struct {
	Symbol string `json:"symbol"`
}

// Endpoints holds all Go-Kit endpoints.
type Endpoints struct {
	GetQuote    endpoint.Endpoint
	CheckHealth endpoint.Endpoint
}

// MakeEndpoints creates endpoints for the service.
func MakeEndpoints(s service.Service) Endpoints {
	return Endpoints{
		GetQuote:    makeGetQuoteEndpoint(s),
		CheckHealth: makeCheckHealthEndpoint(s),
	}
}

func makeGetQuoteEndpoint(s service.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req, ok := request.(GetQuoteRequest)
		if !ok {
			return nil, errors.New("invalid request")
		}
		return s.GetQuote(ctx, req.Symbol)
	}
}

func makeCheckHealthEndpoint(s service.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		return s.CheckHealth(ctx), nil
	}
}
