package finance

import (
	"github.com/shopspring/decimal"

	"fintrack-server/src/models"
)

// Summarize folds an owner's (already filtered) transactions into the
// dashboard totals. Amounts accumulate as decimals so repeated small values
// never pick up binary floating-point error; rounding happens only when the
// summary is serialized. Expense categories are grouped by their exact
// stored value and emitted in first-occurrence order.
func Summarize(transactions []models.Transaction) models.Summary {
	summary := models.Summary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		Net:               decimal.Zero,
		ExpenseByCategory: []models.CategoryTotal{},
	}

	index := make(map[string]int)
	for _, tx := range transactions {
		if tx.Type == models.TypeIncome {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			continue
		}
		summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
		if i, ok := index[tx.Category]; ok {
			summary.ExpenseByCategory[i].Total = summary.ExpenseByCategory[i].Total.Add(tx.Amount)
		} else {
			index[tx.Category] = len(summary.ExpenseByCategory)
			summary.ExpenseByCategory = append(summary.ExpenseByCategory, models.CategoryTotal{
				Category: tx.Category,
				Total:    tx.Amount,
			})
		}
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
