package finance

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fintrack-server/src/models"
)

func TestBuildTransactionFilter_Type(t *testing.T) {
	userID := uuid.New()
	cases := []struct {
		name string
		in   string
		want models.TransactionType
	}{
		{"income accepted", "income", models.TypeIncome},
		{"expense accepted", "expense", models.TypeExpense},
		{"unknown value ignored", "savings", ""},
		{"empty ignored", "", ""},
		{"wrong case ignored", "Income", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := BuildTransactionFilter(userID, url.Values{"type": {tc.in}})
			assert.Equal(t, tc.want, f.Type)
			assert.Equal(t, userID, f.UserID)
		})
	}
}

func TestBuildTransactionFilter_Category(t *testing.T) {
	userID := uuid.New()

	f := BuildTransactionFilter(userID, url.Values{"category": {"  Food  "}})
	assert.Equal(t, "Food", f.Category)

	f = BuildTransactionFilter(userID, url.Values{"category": {"   "}})
	assert.Empty(t, f.Category)

	f = BuildTransactionFilter(userID, url.Values{})
	assert.Empty(t, f.Category)
}

func TestBuildTransactionFilter_Dates(t *testing.T) {
	userID := uuid.New()
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	f := BuildTransactionFilter(userID, url.Values{
		"startDate": {"2024-01-01"},
		"endDate":   {"2024-01-31"},
	})
	if assert.NotNil(t, f.StartDate) {
		assert.True(t, f.StartDate.Equal(jan1))
	}
	if assert.NotNil(t, f.EndDate) {
		assert.True(t, f.EndDate.Equal(jan31))
	}

	// Only one valid bound keeps that bound
	f = BuildTransactionFilter(userID, url.Values{"startDate": {"2024-01-01"}})
	assert.NotNil(t, f.StartDate)
	assert.Nil(t, f.EndDate)

	f = BuildTransactionFilter(userID, url.Values{"endDate": {"2024-01-31"}})
	assert.Nil(t, f.StartDate)
	assert.NotNil(t, f.EndDate)

	// Malformed values degrade to "no bound", never an error
	f = BuildTransactionFilter(userID, url.Values{
		"startDate": {"not-a-date"},
		"endDate":   {"2024-13-40"},
	})
	assert.Nil(t, f.StartDate)
	assert.Nil(t, f.EndDate)

	// RFC 3339 timestamps are accepted too
	f = BuildTransactionFilter(userID, url.Values{"startDate": {"2024-01-05T10:30:00Z"}})
	if assert.NotNil(t, f.StartDate) {
		assert.True(t, f.StartDate.Equal(time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)))
	}
}

func TestBuildTransactionFilter_InvertedRangeKeepsBothBounds(t *testing.T) {
	f := BuildTransactionFilter(uuid.New(), url.Values{
		"startDate": {"2024-02-01"},
		"endDate":   {"2024-01-01"},
	})
	if assert.NotNil(t, f.StartDate) && assert.NotNil(t, f.EndDate) {
		assert.True(t, f.StartDate.After(*f.EndDate))
	}
}

func TestBuildSummaryFilter_OnlyDatesHonored(t *testing.T) {
	userID := uuid.New()
	f := BuildSummaryFilter(userID, url.Values{
		"type":      {"expense"},
		"category":  {"Food"},
		"startDate": {"2024-01-01"},
	})
	assert.Equal(t, userID, f.UserID)
	assert.Empty(t, f.Type)
	assert.Empty(t, f.Category)
	assert.NotNil(t, f.StartDate)
	assert.Nil(t, f.EndDate)
}
