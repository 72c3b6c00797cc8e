package storage

import (
	"context"
	"database/sql"
	"time"
)

// Queries is the thin SQL layer over the SQLite schema.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// TransactionRow mirrors the transactions table.
type TransactionRow struct {
	ID          string
	Type        string
	AmountCents int64
	Category    string
	Description string
	CreatedAt   time.Time
}

// ChatTurnRow mirrors the chat_turns table.
type ChatTurnRow struct {
	SessionID string
	Role      string
	Text      string
	CreatedAt time.Time
}

const createTransaction = `
INSERT INTO transactions (id, type, amount_cents, category, description, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

func (q *Queries) CreateTransaction(ctx context.Context, row TransactionRow) error {
	_, err := q.db.ExecContext(ctx, createTransaction,
		row.ID, row.Type, row.AmountCents, row.Category, row.Description, row.CreatedAt)
	return err
}

const deleteTransaction = `
DELETE FROM transactions WHERE id = ?
`

// DeleteTransaction removes one record and reports how many rows matched.
func (q *Queries) DeleteTransaction(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteTransaction, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listTransactions = `
SELECT id, type, amount_cents, category, description, created_at
FROM transactions
ORDER BY created_at DESC, rowid DESC
`

func (q *Queries) ListTransactions(ctx context.Context) ([]TransactionRow, error) {
	rows, err := q.db.QueryContext(ctx, listTransactions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransactionRow
	for rows.Next() {
		var r TransactionRow
		if err := rows.Scan(&r.ID, &r.Type, &r.AmountCents, &r.Category, &r.Description, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const insertChatTurn = `
INSERT INTO chat_turns (session_id, role, text, created_at)
VALUES (?, ?, ?, ?)
`

func (q *Queries) InsertChatTurn(ctx context.Context, row ChatTurnRow) error {
	_, err := q.db.ExecContext(ctx, insertChatTurn,
		row.SessionID, row.Role, row.Text, row.CreatedAt)
	return err
}

const listSessionTurns = `
SELECT session_id, role, text, created_at
FROM chat_turns
WHERE session_id = ?
ORDER BY id ASC
`

func (q *Queries) ListSessionTurns(ctx context.Context, sessionID string) ([]ChatTurnRow, error) {
	rows, err := q.db.QueryContext(ctx, listSessionTurns, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ChatTurnRow
	for rows.Next() {
		var r ChatTurnRow
		if err := rows.Scan(&r.SessionID, &r.Role, &r.Text, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
