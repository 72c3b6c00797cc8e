package core

import "math"

// Summary holds metrics derived from the full transaction set. It is
// recomputed on every read and never stored.
type Summary struct {
	TotalIncome       Money            `json:"total_income"`
	TotalExpenses     Money            `json:"total_expenses"`
	NetSavings        Money            `json:"net_savings"`
	ExpenseCategories map[string]Money `json:"expense_categories"`
	SavingsRate       float64          `json:"savings_rate"`
}

// Summarize derives a Summary from txs.
//
// Categories with no expense transactions are omitted from
// ExpenseCategories (never zero-filled). SavingsRate is net savings over
// total income as a percentage, rounded to two decimals, and 0 when
// there is no income.
func Summarize(txs []Transaction) Summary {
	s := Summary{ExpenseCategories: map[string]Money{}}
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.TotalIncome.Cents += t.Amount.Cents
		case Expense:
			s.TotalExpenses.Cents += t.Amount.Cents
			c := s.ExpenseCategories[t.Category]
			c.Cents += t.Amount.Cents
			s.ExpenseCategories[t.Category] = c
		}
	}
	s.NetSavings.Cents = s.TotalIncome.Cents - s.TotalExpenses.Cents
	if s.TotalIncome.Cents > 0 {
		rate := float64(s.NetSavings.Cents) / float64(s.TotalIncome.Cents) * 100
		s.SavingsRate = math.Round(rate*100) / 100
	}
	return s
}
