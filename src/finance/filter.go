package finance

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"fintrack-server/src/models"
)

// TransactionFilter is the normalized predicate handed to the store. The
// owner clause is always present and always comes from the authenticated
// caller; the remaining clauses are optional.
type TransactionFilter struct {
	UserID    uuid.UUID
	Type      models.TransactionType // empty means no type clause
	Category  string                 // case-insensitive substring, empty means none
	StartDate *time.Time
	EndDate   *time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// BuildTransactionFilter translates the list endpoint's query parameters
// into a predicate. An unrecognized type value is ignored, a blank category
// is ignored, and a date that fails to parse degrades to "no bound" rather
// than rejecting the request. Both date bounds are applied independently,
// so startDate > endDate is legal and simply matches nothing.
func BuildTransactionFilter(userID uuid.UUID, query url.Values) TransactionFilter {
	f := TransactionFilter{UserID: userID}

	switch query.Get("type") {
	case string(models.TypeIncome):
		f.Type = models.TypeIncome
	case string(models.TypeExpense):
		f.Type = models.TypeExpense
	}

	if category := strings.TrimSpace(query.Get("category")); category != "" {
		f.Category = category
	}

	f.StartDate = parseFilterDate(query.Get("startDate"))
	f.EndDate = parseFilterDate(query.Get("endDate"))
	return f
}

// BuildSummaryFilter is the dashboard variant: only the date bounds are
// honored, with the same leniency as the list endpoint.
func BuildSummaryFilter(userID uuid.UUID, query url.Values) TransactionFilter {
	return TransactionFilter{
		UserID:    userID,
		StartDate: parseFilterDate(query.Get("startDate")),
		EndDate:   parseFilterDate(query.Get("endDate")),
	}
}

func parseFilterDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
