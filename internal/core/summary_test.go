package core

import "testing"

func tx(typ TransactionType, cents int64, category string) Transaction {
	return Transaction{Type: typ, Amount: Money{Cents: cents}, Category: category, Description: "test"}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome.Cents != 0 || s.TotalExpenses.Cents != 0 || s.NetSavings.Cents != 0 {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	if len(s.ExpenseCategories) != 0 {
		t.Fatalf("expected empty categories, got %v", s.ExpenseCategories)
	}
	if s.ExpenseCategories == nil {
		t.Fatalf("categories map must be non-nil for serialization")
	}
	if s.SavingsRate != 0 {
		t.Fatalf("expected zero savings rate, got %v", s.SavingsRate)
	}
}

func TestSummarizeWorkedExample(t *testing.T) {
	txs := []Transaction{
		tx(Income, 100000, "Salary"),
		tx(Expense, 20000, "Food & Dining"),
	}
	s := Summarize(txs)
	if s.TotalIncome.Cents != 100000 {
		t.Fatalf("total income = %d", s.TotalIncome.Cents)
	}
	if s.TotalExpenses.Cents != 20000 {
		t.Fatalf("total expenses = %d", s.TotalExpenses.Cents)
	}
	if s.NetSavings.Cents != 80000 {
		t.Fatalf("net savings = %d", s.NetSavings.Cents)
	}
	if got := s.ExpenseCategories["Food & Dining"].Cents; got != 20000 {
		t.Fatalf("food category = %d", got)
	}
	if len(s.ExpenseCategories) != 1 {
		t.Fatalf("expected exactly one category, got %v", s.ExpenseCategories)
	}
	if s.SavingsRate != 80.0 {
		t.Fatalf("savings rate = %v", s.SavingsRate)
	}
}

func TestSummarizeNetSavingsIdentity(t *testing.T) {
	sets := [][]Transaction{
		nil,
		{tx(Income, 5000, "Salary")},
		{tx(Expense, 999, "Rent")},
		{tx(Income, 123456, "Salary"), tx(Expense, 78901, "Rent"), tx(Expense, 2345, "Food & Dining"), tx(Income, 67, "Interest")},
	}
	for i, txs := range sets {
		s := Summarize(txs)
		if s.TotalIncome.Cents-s.TotalExpenses.Cents != s.NetSavings.Cents {
			t.Fatalf("set %d: identity violated: %+v", i, s)
		}
	}
}

func TestSummarizeZeroIncomeRate(t *testing.T) {
	s := Summarize([]Transaction{
		tx(Expense, 50000, "Rent"),
		tx(Expense, 7000, "Food & Dining"),
	})
	if s.SavingsRate != 0 {
		t.Fatalf("expected zero savings rate with no income, got %v", s.SavingsRate)
	}
	if s.NetSavings.Cents != -57000 {
		t.Fatalf("net savings = %d", s.NetSavings.Cents)
	}
}

func TestSummarizeCategoryOmission(t *testing.T) {
	s := Summarize([]Transaction{
		tx(Income, 10000, "Salary"), // income categories never appear
		tx(Expense, 1000, "Transport"),
		tx(Expense, 2500, "Transport"),
	})
	if len(s.ExpenseCategories) != 1 {
		t.Fatalf("expected one category, got %v", s.ExpenseCategories)
	}
	if got := s.ExpenseCategories["Transport"].Cents; got != 3500 {
		t.Fatalf("transport sum = %d", got)
	}
	if _, ok := s.ExpenseCategories["Salary"]; ok {
		t.Fatalf("income category must not appear in expense breakdown")
	}
}

func TestSummarizeRateRounding(t *testing.T) {
	// 1/3 saved: 33.333...% rounds to 33.33
	s := Summarize([]Transaction{
		tx(Income, 30000, "Salary"),
		tx(Expense, 20000, "Rent"),
	})
	if s.SavingsRate != 33.33 {
		t.Fatalf("savings rate = %v, want 33.33", s.SavingsRate)
	}
}
