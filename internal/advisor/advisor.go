// Package advisor defines the port for the external advisory
// collaborator: a hosted language model reached over the network. The
// core builds context payloads and invokes it; it never retries.
package advisor

import (
	"context"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
)

type Advisor interface {
	// Chat answers message given the session's prior turns as context.
	Chat(ctx context.Context, history []core.ChatTurn, message string) (string, error)
	// AnalyzeStock returns free-text commentary grounded on the
	// fetched snapshot.
	AnalyzeStock(ctx context.Context, snap core.StockSnapshot) (string, error)
}
