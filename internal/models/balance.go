package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Balance struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	StartMoney   decimal.Decimal `json:"start_money"`
	CurrentMoney decimal.Decimal `json:"current_money"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type BalanceWithPayments struct {
	Balance
	Payments []*Payment `json:"payments"`
}

type BalanceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartMoney  decimal.Decimal `json:"start_money"`
}

type BalanceUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
