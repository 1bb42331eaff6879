package api

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vecha2468/stockquote/pkg/service"
	"github.com/vecha2468/stockquote/quote"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// quoteView is the template model for the form page.
type quoteView struct {
	Symbol  string
	Company string
	Price   string
	Change  string
	Percent string
	Error   string
}

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", quoteView{})
}

// GetQuote renders the form page with the quote for ?symbol=S, or with the
// failure message inline. Expected quote errors keep a 200 so the form
// stays usable.
func (h *Handler) GetQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	q, err := h.svc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		view := quoteView{Symbol: symbol}
		if quote.IsQuoteError(err) {
			view.Error = err.Error()
		} else {
			view.Error = fmt.Sprintf("Unexpected error: %v", err)
		}
		c.HTML(http.StatusOK, "index", view)
		return
	}
	c.HTML(http.StatusOK, "index", quoteView{
		Symbol:  q.Symbol,
		Company: q.Company,
		Price:   fmt.Sprintf("%.2f", q.Price),
		Change:  fmt.Sprintf("%s%.2f", quote.Sign(q.Change), math.Abs(q.Change)),
		Percent: fmt.Sprintf("%s%.2f%%", quote.Sign(q.Percent), math.Abs(q.Percent)),
	})
}
