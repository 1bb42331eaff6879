package quote

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vecha2468/stockquote/model"
)

func TestSign(t *testing.T) {
	assert.Equal(t, "+", Sign(5.50))
	assert.Equal(t, "-", Sign(-1.23))
	assert.Equal(t, "", Sign(0))
}

func TestRender(t *testing.T) {
	q := &model.Quote{
		Symbol:  "AAPL",
		Company: "Apple Inc.",
		Price:   105.50,
		Change:  5.50,
		Percent: 5.50,
	}
	now := time.Date(2026, time.August, 31, 9, 30, 0, 0, time.UTC)
	got := Render(q, now)
	want := fmt.Sprintf("%s\n\nApple Inc. (AAPL)\n\n105.50 +5.50 (+5.50%%)\n", now.Format(TimestampLayout))
	assert.Equal(t, want, got)
}

func TestRenderNegativeChange(t *testing.T) {
	q := &model.Quote{
		Symbol:  "ADBE",
		Company: "Adobe Inc.",
		Price:   98.77,
		Change:  -1.23,
		Percent: -1.23,
	}
	got := Render(q, time.Now())
	assert.Contains(t, got, "98.77 -1.23 (-1.23%)")
}

func TestRenderZeroChangeHasNoSign(t *testing.T) {
	q := &model.Quote{
		Symbol:  "FLAT",
		Company: "Flatline Corp",
		Price:   42.00,
		Change:  0,
		Percent: 0,
	}
	got := Render(q, time.Now())
	assert.Contains(t, got, "42.00 0.00 (0.00%)")
}
