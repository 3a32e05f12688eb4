package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID          string          `json:"id"`
	BalanceID   string          `json:"balance_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type PaymentRequest struct {
	BalanceID   string          `json:"balance_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

type PaymentUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
