package finance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fintrack-server/src/models"
)

// ValidationError marks a rejected write-path payload. The message names
// the offending field and is returned to the caller verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

const (
	msgInvalidType      = "Type must be 'income' or 'expense'"
	msgInvalidAmount    = "Invalid amount (must be a non-negative number)"
	msgCategoryRequired = "Category is required"
	msgCategoryEmpty    = "Category cannot be empty"
	msgInvalidDate      = "Invalid date"
)

// ParseDate parses a write-path date. Surrounding whitespace is
// tolerated, but unlike the filter side a value that does not parse is an
// error here, not a silently dropped bound.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, newValidationError(msgInvalidDate)
}

func isValidType(s string) bool {
	return s == string(models.TypeIncome) || s == string(models.TypeExpense)
}

// ValidateCreate checks a create payload field by field, first violation
// wins. On success it returns the transaction ready for the store, minus
// the identity and timestamps the store assigns. The date defaults to now
// when omitted.
func ValidateCreate(userID uuid.UUID, req models.CreateTransactionRequest, now time.Time) (models.Transaction, error) {
	if !isValidType(req.Type) {
		return models.Transaction{}, newValidationError(msgInvalidType)
	}
	if req.Amount == nil || req.Amount.IsNegative() {
		return models.Transaction{}, newValidationError(msgInvalidAmount)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return models.Transaction{}, newValidationError(msgCategoryRequired)
	}

	// Only a truly empty date defaults to now; a whitespace-only value is
	// present and must fail to parse.
	date := now
	if req.Date != "" {
		parsed, err := ParseDate(req.Date)
		if err != nil {
			return models.Transaction{}, err
		}
		date = parsed
	}

	return models.Transaction{
		UserID:      userID,
		Type:        models.TransactionType(req.Type),
		Amount:      *req.Amount,
		Category:    category,
		Date:        date,
		Description: normalizeDescription(req.Description),
	}, nil
}

// ApplyUpdate merges a partial payload into an existing transaction,
// validating each supplied field. Absent fields stay untouched. Explicit
// null on a required field is a validation error; null description clears
// the stored value.
func ApplyUpdate(tx *models.Transaction, req models.UpdateTransactionRequest) error {
	if req.Type.Set {
		if !req.Type.Valid || !isValidType(req.Type.Value) {
			return newValidationError(msgInvalidType)
		}
		tx.Type = models.TransactionType(req.Type.Value)
	}
	if req.Amount.Set {
		if !req.Amount.Valid || req.Amount.Value.IsNegative() {
			return newValidationError("Invalid amount")
		}
		tx.Amount = req.Amount.Value
	}
	if req.Category.Set {
		category := ""
		if req.Category.Valid {
			category = strings.TrimSpace(req.Category.Value)
		}
		if category == "" {
			return newValidationError(msgCategoryEmpty)
		}
		tx.Category = category
	}
	if req.Date.Set {
		if !req.Date.Valid {
			return newValidationError(msgInvalidDate)
		}
		date, err := ParseDate(req.Date.Value)
		if err != nil {
			return err
		}
		tx.Date = date
	}
	if req.Description.Set {
		if !req.Description.Valid {
			tx.Description = nil
		} else {
			tx.Description = normalizeDescription(&req.Description.Value)
		}
	}
	return nil
}

// Blank descriptions are stored as absent, never as an empty string.
func normalizeDescription(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
