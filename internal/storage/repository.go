// Package storage provides the SQLite-backed implementation of the
// transaction and conversation stores.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Writes from concurrent requests serialize on a single connection.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Create implements store.TransactionStore.
func (r *SQLiteRepository) Create(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	err := r.queries.CreateTransaction(ctx, TransactionRow{
		ID:          tx.ID,
		Type:        string(tx.Type),
		AmountCents: tx.Amount.Cents,
		Category:    tx.Category,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", tx.ID,
		"type", tx.Type,
		"amount_cents", tx.Amount.Cents,
		"category", tx.Category)
	return nil
}

// Delete implements store.TransactionStore. Unknown ids surface as
// store.ErrTransactionNotFound.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if affected == 0 {
		return store.ErrTransactionNotFound
	}
	return nil
}

// List implements store.TransactionStore, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	txs := make([]core.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = core.Transaction{
			ID:          row.ID,
			Type:        core.TransactionType(row.Type),
			Amount:      core.Money{Cents: row.AmountCents},
			Category:    row.Category,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		}
	}
	return txs, nil
}

// Append implements store.ConversationStore.
func (r *SQLiteRepository) Append(ctx context.Context, sessionID string, turn core.ChatTurn) (string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	err := r.queries.InsertChatTurn(ctx, ChatTurnRow{
		SessionID: sessionID,
		Role:      string(turn.Role),
		Text:      turn.Text,
		CreatedAt: turn.CreatedAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("insert chat turn: %w", err)
	}
	return sessionID, nil
}

// History implements store.ConversationStore. Unknown sessions yield an
// empty slice.
func (r *SQLiteRepository) History(ctx context.Context, sessionID string) ([]core.ChatTurn, error) {
	rows, err := r.queries.ListSessionTurns(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session turns: %w", err)
	}

	turns := make([]core.ChatTurn, len(rows))
	for i, row := range rows {
		turns[i] = core.ChatTurn{
			Role:      core.ChatRole(row.Role),
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		}
	}
	return turns, nil
}
