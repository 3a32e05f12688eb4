package store

import (
	"context"
	"errors"

	"budget-service/internal/models"
)

// Sentinel errors shared by all adapters. Services translate these into
// their own domain errors; driver errors pass through wrapped.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// BalanceStore persists balances. Delete fails for balances that still
// have payments attached (enforced by a foreign key as well).
type BalanceStore interface {
	Create(ctx context.Context, balance *models.Balance) error
	GetWithPayments(ctx context.Context, id string) (*models.BalanceWithPayments, error)
	List(ctx context.Context) ([]*models.Balance, error)
	UpdateMeta(ctx context.Context, id, name, description string) (*models.Balance, error)
	Delete(ctx context.Context, id string) error
}

// PaymentStore persists payments. Create and Delete are the two
// money-moving operations: each runs the payment write and the balance
// current_money write in one transaction, locking the balance row so
// concurrent calls against the same balance serialize.
type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	Get(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	UpdateMeta(ctx context.Context, id, name, description string) (*models.Payment, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}
