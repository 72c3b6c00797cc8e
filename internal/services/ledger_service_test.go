package services

import (
	"context"
	"errors"
	"testing"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store/memory"
)

func newLedger() *LedgerService {
	return NewLedgerService(memory.New(), nil)
}

func TestLedgerCreateAssignsIDAndTimestamp(t *testing.T) {
	svc := newLedger()
	created, err := svc.Create(context.Background(), core.Transaction{
		Type:        core.Income,
		Amount:      core.Money{Cents: 100000},
		Category:    "Salary",
		Description: "June pay",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected assigned timestamp")
	}
}

func TestLedgerCreateValidation(t *testing.T) {
	svc := newLedger()
	_, err := svc.Create(context.Background(), core.Transaction{
		Type:        core.Expense,
		Amount:      core.Money{Cents: -5},
		Category:    "Food & Dining",
		Description: "Groceries",
	})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	txs, _ := svc.List(context.Background())
	if len(txs) != 0 {
		t.Fatalf("invalid transaction must not be stored")
	}
}

func TestLedgerDeleteUnknownID(t *testing.T) {
	svc := newLedger()
	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, store.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestLedgerDeleteRemovesFromListAndSummary(t *testing.T) {
	svc := newLedger()
	ctx := context.Background()

	income, err := svc.Create(ctx, core.Transaction{
		Type: core.Income, Amount: core.Money{Cents: 100000},
		Category: "Salary", Description: "June pay",
	})
	if err != nil {
		t.Fatalf("create income: %v", err)
	}
	expense, err := svc.Create(ctx, core.Transaction{
		Type: core.Expense, Amount: core.Money{Cents: 20000},
		Category: "Food & Dining", Description: "Groceries",
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalIncome.Cents != 100000 || summary.TotalExpenses.Cents != 20000 {
		t.Fatalf("totals wrong: %+v", summary)
	}
	if summary.NetSavings.Cents != 80000 || summary.SavingsRate != 80.0 {
		t.Fatalf("savings wrong: %+v", summary)
	}
	if got := summary.ExpenseCategories["Food & Dining"].Cents; got != 20000 {
		t.Fatalf("category sum = %d", got)
	}

	if err := svc.Delete(ctx, expense.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	txs, _ := svc.List(ctx)
	if len(txs) != 1 || txs[0].ID != income.ID {
		t.Fatalf("expected only income left, got %+v", txs)
	}
	summary, _ = svc.Summary(ctx)
	if summary.TotalExpenses.Cents != 0 {
		t.Fatalf("deleted expense still counted: %+v", summary)
	}
	if len(summary.ExpenseCategories) != 0 {
		t.Fatalf("deleted category still present: %v", summary.ExpenseCategories)
	}
	if summary.SavingsRate != 100.0 {
		t.Fatalf("savings rate = %v", summary.SavingsRate)
	}
}
