package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	defaultTimeout = 10 * time.Second
	userAgent      = "finance-tracker/1.0"
)

// YahooClient fetches quotes from the Yahoo Finance v7 quote endpoint.
// The base URL is configurable so tests can point it at a local server.
type YahooClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &YahooClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

type quoteResult struct {
	Symbol                     string  `json:"symbol"`
	LongName                   string  `json:"longName"`
	ShortName                  string  `json:"shortName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketChange        float64 `json:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
	RegularMarketVolume        int64   `json:"regularMarketVolume"`
	MarketCap                  float64 `json:"marketCap"`
	Sector                     string  `json:"sector"`
	TrailingPE                 float64 `json:"trailingPE"`
	DividendYield              float64 `json:"trailingAnnualDividendYield"`
}

// FetchQuote implements QuoteProvider. Unknown symbols return
// ErrSymbolNotFound; transport and provider failures surface as
// core.GatewayError.
func (c *YahooClient) FetchQuote(ctx context.Context, symbol string) (core.StockSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return core.StockSnapshot{}, &core.GatewayError{Provider: "yahoo", Op: "quote", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Quote request failed", "error", err, "symbol", symbol)
		return core.StockSnapshot{}, &core.GatewayError{Provider: "yahoo", Op: "quote", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return core.StockSnapshot{}, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return core.StockSnapshot{}, &core.GatewayError{
			Provider: "yahoo",
			Op:       "quote",
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var qr quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return core.StockSnapshot{}, &core.GatewayError{Provider: "yahoo", Op: "quote", Err: err}
	}
	if qr.QuoteResponse.Error != nil {
		return core.StockSnapshot{}, &core.GatewayError{
			Provider: "yahoo",
			Op:       "quote",
			Err:      fmt.Errorf("%s: %s", qr.QuoteResponse.Error.Code, qr.QuoteResponse.Error.Description),
		}
	}
	if len(qr.QuoteResponse.Result) == 0 {
		return core.StockSnapshot{}, ErrSymbolNotFound
	}

	r := qr.QuoteResponse.Result[0]
	if r.RegularMarketPrice == 0 {
		// Yahoo returns stub results for some unknown symbols.
		return core.StockSnapshot{}, ErrSymbolNotFound
	}

	name := r.LongName
	if name == "" {
		name = r.ShortName
	}
	if name == "" {
		name = r.Symbol
	}
	sector := r.Sector
	if sector == "" {
		sector = "N/A"
	}

	snap := core.StockSnapshot{
		Symbol:        strings.ToUpper(r.Symbol),
		CompanyName:   name,
		CurrentPrice:  round2(r.RegularMarketPrice),
		Change:        round2(r.RegularMarketChange),
		ChangePercent: round2(r.RegularMarketChangePercent),
		Volume:        r.RegularMarketVolume,
		MarketCap:     r.MarketCap,
		Sector:        sector,
		PERatio:       r.TrailingPE,
		DividendYield: r.DividendYield,
	}

	slog.DebugContext(ctx, "Quote fetched",
		"symbol", snap.Symbol,
		"price", snap.CurrentPrice,
		"change_percent", snap.ChangePercent)
	return snap, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
