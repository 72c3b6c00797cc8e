package core

// StockSnapshot is a point-in-time read of market data for one symbol.
// Snapshots are fetched fresh per request and never persisted.
// MarketCap, PERatio and DividendYield are not reported for every
// instrument and are omitted when unknown.
type StockSnapshot struct {
	Symbol        string  `json:"symbol"`
	CompanyName   string  `json:"company_name"`
	CurrentPrice  float64 `json:"current_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"market_cap,omitempty"`
	Sector        string  `json:"sector"`
	PERatio       float64 `json:"pe_ratio,omitempty"`
	DividendYield float64 `json:"dividend_yield,omitempty"`
}
