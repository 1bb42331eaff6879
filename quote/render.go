package quote

import (
	"fmt"
	"math"
	"time"

	"github.com/vecha2468/stockquote/model"
)

// TimestampLayout matches the classic `date`-style header line.
const TimestampLayout = "Mon Jan 02 15:04:05 MST 2006"

// Sign returns the display sign for a value: "+", "-", or "" for zero.
func Sign(v float64) string {
	switch {
	case v > 0:
		return "+"
	case v < 0:
		return "-"
	default:
		return ""
	}
}

// Render formats a quote for the CLI:
//
//	Mon Jan 02 15:04:05 PST 2026
//
//	Apple Inc. (AAPL)
//
//	105.50 +5.50 (+5.50%)
func Render(q *model.Quote, now time.Time) string {
	return fmt.Sprintf("%s\n\n%s (%s)\n\n%.2f %s%.2f (%s%.2f%%)\n",
		now.Format(TimestampLayout),
		q.Company, q.Symbol,
		q.Price,
		Sign(q.Change), math.Abs(q.Change),
		Sign(q.Percent), math.Abs(q.Percent),
	)
}
