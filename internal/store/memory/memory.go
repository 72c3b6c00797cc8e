// Package memory provides the in-memory backend, the default for local
// development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store"
)

// Store keeps transactions in insertion order and chat turns in append
// order per session. All operations run under a single mutex, which
// also gives the append ordering the chat flow relies on.
type Store struct {
	mu       sync.Mutex
	txs      []core.Transaction
	sessions map[string][]core.ChatTurn
}

func New() *Store {
	return &Store{sessions: make(map[string][]core.ChatTurn)}
}

func (s *Store) Create(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.txs {
		if t.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return nil
		}
	}
	return store.ErrTransactionNotFound
}

// List returns all transactions newest first. Records are created with
// monotonically increasing timestamps, so reversed insertion order is
// the display order.
func (s *Store) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	for i, t := range s.txs {
		out[len(s.txs)-1-i] = t
	}
	return out, nil
}

func (s *Store) Append(_ context.Context, sessionID string, turn core.ChatTurn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], turn)
	return sessionID, nil
}

func (s *Store) History(_ context.Context, sessionID string) ([]core.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.sessions[sessionID]
	out := make([]core.ChatTurn, len(turns))
	copy(out, turns)
	return out, nil
}
