package models

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    string           `json:"category"`
	Date        string           `json:"date"`
	Description *string          `json:"description"`
}

// UpdateTransactionRequest is a partial payload: fields absent from the
// body leave the stored value untouched.
type UpdateTransactionRequest struct {
	Type        Optional[string]          `json:"type"`
	Amount      Optional[decimal.Decimal] `json:"amount"`
	Category    Optional[string]          `json:"category"`
	Date        Optional[string]          `json:"date"`
	Description Optional[string]          `json:"description"`
}
