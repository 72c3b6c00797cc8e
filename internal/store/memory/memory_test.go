package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store"
)

func record(id string, cents int64) core.Transaction {
	return core.Transaction{
		ID:          id,
		Type:        core.Expense,
		Amount:      core.Money{Cents: cents},
		Category:    "Food & Dining",
		Description: "Groceries",
		CreatedAt:   time.Now(),
	}
}

func TestCreateAndListNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.Create(ctx, record(id, 100)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{"c", "b", "a"} {
		if got[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	s := New()
	bad := record("x", 0)
	if err := s.Create(context.Background(), bad); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Create(ctx, record("a", 100)); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := s.List(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty ledger after delete, got %d records", len(got))
	}

	if err := s.Delete(ctx, "a"); !errors.Is(err, store.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestAppendMintsSession(t *testing.T) {
	s := New()
	ctx := context.Background()

	sid, err := s.Append(ctx, "", core.ChatTurn{Role: core.RoleUser, Text: "hello"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if sid == "" {
		t.Fatalf("expected minted session id")
	}

	sid2, err := s.Append(ctx, sid, core.ChatTurn{Role: core.RoleAssistant, Text: "hi"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if sid2 != sid {
		t.Fatalf("expected session id %s echoed, got %s", sid, sid2)
	}

	turns, err := s.History(ctx, sid)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != core.RoleUser || turns[1].Role != core.RoleAssistant {
		t.Fatalf("turns out of order: %+v", turns)
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	s := New()
	turns, err := s.History(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unknown session must not error: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty history, got %d", len(turns))
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	sid, _ := s.Append(ctx, "", core.ChatTurn{Role: core.RoleUser, Text: "original"})

	turns, _ := s.History(ctx, sid)
	turns[0].Text = "mutated"

	again, _ := s.History(ctx, sid)
	if again[0].Text != "original" {
		t.Fatalf("history must not share backing storage with callers")
	}
}
