// Package market defines the port for the external market-data
// collaborator and its Yahoo-style quote adapter.
package market

import (
	"context"
	"errors"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
)

// ErrSymbolNotFound signals that the provider knows nothing about the
// requested symbol. Malformed symbols are rejected earlier as a
// validation error.
var ErrSymbolNotFound = errors.New("stock symbol not found")

// QuoteProvider fetches a point-in-time market snapshot for one symbol.
type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol string) (core.StockSnapshot, error)
}
