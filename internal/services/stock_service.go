package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/advisor"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/market"
)

// StockService composes the market-data fetch with the advisory model:
// validate symbol, fetch the snapshot, then hand it to the model as
// grounding context. Each stage fails independently.
type StockService struct {
	quotes  market.QuoteProvider
	advisor advisor.Advisor
}

func NewStockService(quotes market.QuoteProvider, adv advisor.Advisor) *StockService {
	return &StockService{
		quotes:  quotes,
		advisor: adv,
	}
}

// StockAnalysis pairs the fetched snapshot with the advisor's
// commentary on it.
type StockAnalysis struct {
	Snapshot core.StockSnapshot
	Analysis string
}

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

// NormalizeSymbol uppercases and validates a ticker symbol.
func NormalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !symbolPattern.MatchString(symbol) {
		return "", core.ErrInvalidSymbol
	}
	return symbol, nil
}

// Snapshot fetches a fresh quote for the symbol.
func (s *StockService) Snapshot(ctx context.Context, symbol string) (core.StockSnapshot, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return core.StockSnapshot{}, err
	}
	snap, err := s.quotes.FetchQuote(ctx, sym)
	if err != nil {
		return core.StockSnapshot{}, err
	}
	return snap, nil
}

// Analyze runs the full pipeline and returns the snapshot together with
// the model's commentary.
func (s *StockService) Analyze(ctx context.Context, symbol string) (StockAnalysis, error) {
	snap, err := s.Snapshot(ctx, symbol)
	if err != nil {
		return StockAnalysis{}, err
	}

	text, err := s.advisor.AnalyzeStock(ctx, snap)
	if err != nil {
		slog.ErrorContext(ctx, "Advisory analysis failed",
			"symbol", snap.Symbol, "error", err,
			"component", "stocks", "operation", "analyze")
		return StockAnalysis{}, fmt.Errorf("advisory analysis: %w", err)
	}

	slog.InfoContext(ctx, "Stock analysis completed",
		"symbol", snap.Symbol,
		"component", "stocks",
		"operation", "analyze")
	return StockAnalysis{Snapshot: snap, Analysis: text}, nil
}
