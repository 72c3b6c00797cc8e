// Package store defines the outbound ports for ledger and conversation
// persistence. Implementations live in subpackages (memory) and in
// internal/storage (SQLite).
package store

import (
	"context"
	"errors"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
)

// ErrTransactionNotFound signals a delete or lookup of an unknown id.
// Deleting an unknown id is a failure, not a no-op: the API returns
// 404 in that case.
var ErrTransactionNotFound = errors.New("transaction not found")

type (
	// TransactionStore owns the ledger of transaction records.
	TransactionStore interface {
		// Create inserts a fully-populated record (id and timestamp
		// already assigned by the caller).
		Create(ctx context.Context, tx core.Transaction) error
		// Delete removes the record with the given id, returning
		// ErrTransactionNotFound for unknown ids.
		Delete(ctx context.Context, id string) error
		// List returns all records, newest first.
		List(ctx context.Context) ([]core.Transaction, error)
	}

	// ConversationStore holds chat turns keyed by session id.
	ConversationStore interface {
		// Append adds a turn to the session, minting a new session id
		// when sessionID is empty, and returns the (possibly new) id.
		Append(ctx context.Context, sessionID string, turn core.ChatTurn) (string, error)
		// History returns the session's turns in append order. Unknown
		// sessions yield an empty slice, not an error.
		History(ctx context.Context, sessionID string) ([]core.ChatTurn, error)
	}
)
