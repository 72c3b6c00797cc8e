// Package services orchestrates the domain operations: ledger lifecycle
// and analytics, the conversational loop, and the stock analysis
// pipeline.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/events"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store"
)

// LedgerService owns transaction lifecycle and derived analytics.
type LedgerService struct {
	store     store.TransactionStore
	publisher *events.Publisher // optional, nil disables event publishing
}

func NewLedgerService(st store.TransactionStore, publisher *events.Publisher) *LedgerService {
	return &LedgerService{
		store:     st,
		publisher: publisher,
	}
}

// Create assigns the identifier and timestamp, validates and stores the
// record. The ledger event is published fire-and-forget afterwards.
func (s *LedgerService) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	tx.ID = uuid.NewString()
	tx.CreatedAt = time.Now().UTC()

	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if err := s.store.Create(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionCreated(ctx, tx.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish ledger event",
				"event", events.EventTransactionCreated, "id", tx.ID, "error", err)
		}
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", tx.ID,
		"type", tx.Type,
		"amount_cents", tx.Amount.Cents,
		"category", tx.Category,
		"component", "ledger",
		"operation", "create")
	return tx, nil
}

// Delete removes the record. Unknown ids surface as
// store.ErrTransactionNotFound: delete is not a silent no-op here.
func (s *LedgerService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionDeleted(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish ledger event",
				"event", events.EventTransactionDeleted, "id", id, "error", err)
		}
	}

	slog.InfoContext(ctx, "Transaction deleted",
		"id", id,
		"component", "ledger",
		"operation", "delete")
	return nil
}

// List returns all transactions, newest first.
func (s *LedgerService) List(ctx context.Context) ([]core.Transaction, error) {
	return s.store.List(ctx)
}

// Summary recomputes analytics from the full transaction set on every
// call. At current volumes a cached aggregate is not worth the
// invalidation bookkeeping.
func (s *LedgerService) Summary(ctx context.Context) (core.Summary, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return core.Summary{}, fmt.Errorf("load transactions: %w", err)
	}
	return core.Summarize(txs), nil
}
