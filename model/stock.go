package model

import "time"

// Quote is a derived snapshot of a symbol's price and day-over-day change.
// Price, Change and Percent are rounded to 2 decimal places; Percent is 0
// when the previous close used as the baseline was 0.
type Quote struct {
	Symbol  string  `json:"symbol"`
	Company string  `json:"company"`
	Price   float64 `json:"price"`
	Change  float64 `json:"change"`
	Percent float64 `json:"percent"`
}

// FastQuote is the lightweight price pair some backends expose without a
// full historical download.
type FastQuote struct {
	Symbol        string  `json:"symbol"`
	LastPrice     float64 `json:"last_price"`
	PreviousClose float64 `json:"previous_close"`
}

// StockData is a single daily OHLCV bar.
type StockData struct {
	Symbol    string    `json:"symbol"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
	CloseTime time.Time `json:"close_time"`
}
