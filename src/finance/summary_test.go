package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fintrack-server/src/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(typ models.TransactionType, amount, category string) models.Transaction {
	return models.Transaction{
		Type:     typ,
		Amount:   d(amount),
		Category: category,
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.Net.IsZero())
	assert.NotNil(t, s.ExpenseByCategory)
	assert.Empty(t, s.ExpenseByCategory)
}

func TestSummarize_JanuaryExample(t *testing.T) {
	// The February transaction is already excluded by the range filter;
	// the engine only sees what the store returned.
	s := Summarize([]models.Transaction{
		record(models.TypeIncome, "1000", "Salary"),
		record(models.TypeExpense, "200", "Food"),
	})

	assert.True(t, s.TotalIncome.Equal(d("1000")))
	assert.True(t, s.TotalExpense.Equal(d("200")))
	assert.True(t, s.Net.Equal(d("800")))
	if assert.Len(t, s.ExpenseByCategory, 1) {
		assert.Equal(t, "Food", s.ExpenseByCategory[0].Category)
		assert.True(t, s.ExpenseByCategory[0].Total.Equal(d("200")))
	}
}

func TestSummarize_NetIdentityAndCategorySums(t *testing.T) {
	transactions := []models.Transaction{
		record(models.TypeIncome, "2500.50", "Salary"),
		record(models.TypeExpense, "120.33", "Food"),
		record(models.TypeExpense, "79.67", "Food"),
		record(models.TypeExpense, "900", "Rent"),
		record(models.TypeIncome, "14.99", "Refund"),
	}
	s := Summarize(transactions)

	assert.True(t, s.Net.Equal(s.TotalIncome.Sub(s.TotalExpense)))

	categorySum := decimal.Zero
	for _, c := range s.ExpenseByCategory {
		categorySum = categorySum.Add(c.Total)
	}
	assert.True(t, categorySum.Equal(s.TotalExpense))

	// Income never contributes to the category breakdown
	for _, c := range s.ExpenseByCategory {
		assert.NotEqual(t, "Salary", c.Category)
		assert.NotEqual(t, "Refund", c.Category)
	}
}

func TestSummarize_NegativeNet(t *testing.T) {
	s := Summarize([]models.Transaction{
		record(models.TypeIncome, "100", "Salary"),
		record(models.TypeExpense, "150.25", "Rent"),
	})
	assert.True(t, s.Net.Equal(d("-50.25")))
}

func TestSummarize_NoFloatDrift(t *testing.T) {
	// 0.10 a hundred times is exactly 10, not 9.99999...
	transactions := make([]models.Transaction, 0, 100)
	for i := 0; i < 100; i++ {
		transactions = append(transactions, record(models.TypeExpense, "0.10", "Coffee"))
	}
	s := Summarize(transactions)

	assert.True(t, s.TotalExpense.Equal(d("10")))
	assert.Equal(t, 10.0, s.Response().TotalExpense)

	s = Summarize([]models.Transaction{
		record(models.TypeExpense, "0.1", "A"),
		record(models.TypeExpense, "0.2", "A"),
	})
	assert.True(t, s.TotalExpense.Equal(d("0.3")))
}

func TestSummarize_CategoryFirstOccurrenceOrder(t *testing.T) {
	s := Summarize([]models.Transaction{
		record(models.TypeExpense, "10", "Food"),
		record(models.TypeExpense, "20", "Rent"),
		record(models.TypeExpense, "5", "Food"),
	})

	if assert.Len(t, s.ExpenseByCategory, 2) {
		assert.Equal(t, "Food", s.ExpenseByCategory[0].Category)
		assert.True(t, s.ExpenseByCategory[0].Total.Equal(d("15")))
		assert.Equal(t, "Rent", s.ExpenseByCategory[1].Category)
		assert.True(t, s.ExpenseByCategory[1].Total.Equal(d("20")))
	}
}

func TestSummaryResponse_RoundsAtBoundary(t *testing.T) {
	s := Summarize([]models.Transaction{
		record(models.TypeIncome, "10.005", "Salary"),
	})
	resp := s.Response()
	assert.Equal(t, 10.01, resp.TotalIncome)
	assert.NotNil(t, resp.ExpenseByCategory)
	assert.Empty(t, resp.ExpenseByCategory)
}
