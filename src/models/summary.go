package models

import "github.com/shopspring/decimal"

type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Net               decimal.Decimal
	ExpenseByCategory []CategoryTotal
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type SummaryResponse struct {
	TotalIncome       float64                 `json:"totalIncome"`
	TotalExpense      float64                 `json:"totalExpense"`
	Net               float64                 `json:"net"`
	ExpenseByCategory []CategoryTotalResponse `json:"expenseByCategory"`
}

type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Response rounds the decimal totals to two-decimal currency values for
// serialization.
func (s Summary) Response() SummaryResponse {
	byCategory := make([]CategoryTotalResponse, 0, len(s.ExpenseByCategory))
	for _, c := range s.ExpenseByCategory {
		byCategory = append(byCategory, CategoryTotalResponse{
			Category: c.Category,
			Total:    c.Total.Round(2).InexactFloat64(),
		})
	}
	return SummaryResponse{
		TotalIncome:       s.TotalIncome.Round(2).InexactFloat64(),
		TotalExpense:      s.TotalExpense.Round(2).InexactFloat64(),
		Net:               s.Net.Round(2).InexactFloat64(),
		ExpenseByCategory: byCategory,
	}
}
