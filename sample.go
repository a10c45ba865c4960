package spendwise

import "github.com/shopspring/decimal"

// SampleTransactions returns a small ledger to play with.
func SampleTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Description: "Salary", Amount: decimal.NewFromInt(3500), Type: Income, Category: "Salary", Date: "2025-07-28"},
		{ID: "2", Description: "Groceries", Amount: decimal.NewFromInt(120), Type: Expense, Category: "Food", Date: "2025-08-01"},
		{ID: "3", Description: "Internet bill", Amount: decimal.NewFromInt(60), Type: Expense, Category: "Utilities", Date: "2025-08-05"},
		{ID: "4", Description: "Freelance", Amount: decimal.NewFromInt(400), Type: Income, Category: "Freelance", Date: "2025-08-07"},
		{ID: "5", Description: "Dinner out", Amount: decimal.NewFromInt(45), Type: Expense, Category: "Entertainment", Date: "2025-08-08"},
	}
}
