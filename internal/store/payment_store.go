package store

import (
	"context"
	"database/sql"
	"fmt"

	"budget-service/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type MySQLPaymentStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMySQLPaymentStore(db *sql.DB, logger zerolog.Logger) *MySQLPaymentStore {
	return &MySQLPaymentStore{
		db:     db,
		logger: logger,
	}
}

// Create inserts the payment and decrements the owning balance in one
// transaction. The balance row is locked with FOR UPDATE so the funds
// check holds until commit; a concurrent Create against the same balance
// waits on the lock and re-reads the decremented amount.
func (s *MySQLPaymentStore) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error starting payment create transaction")
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var currentMoney decimal.Decimal
	err = tx.QueryRowContext(ctx,
		"SELECT current_money FROM balances WHERE id = ? FOR UPDATE",
		payment.BalanceID,
	).Scan(&currentMoney)

	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", payment.BalanceID).Msg("Error locking balance row")
		return fmt.Errorf("failed to lock balance: %w", err)
	}

	newBalance := currentMoney.Sub(payment.Value)
	if newBalance.IsNegative() {
		return ErrInsufficientFunds
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO payments (id, balance_id, name, description, value) VALUES (?, ?, ?, ?, ?)",
		payment.ID, payment.BalanceID, payment.Name, payment.Description, payment.Value,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", payment.ID).Msg("Error inserting payment")
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE balances SET current_money = ?, updated_at = NOW() WHERE id = ?",
		newBalance, payment.BalanceID,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", payment.BalanceID).Msg("Error updating balance amount")
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error().Err(err).Msg("Error committing payment create")
		return fmt.Errorf("failed to commit payment create: %w", err)
	}

	return nil
}

func (s *MySQLPaymentStore) Get(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment

	err := s.db.QueryRowContext(ctx,
		"SELECT id, balance_id, name, description, value, created_at, updated_at FROM payments WHERE id = ?",
		id,
	).Scan(
		&payment.ID, &payment.BalanceID, &payment.Name, &payment.Description,
		&payment.Value, &payment.CreatedAt, &payment.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", id).Msg("Error fetching payment")
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &payment, nil
}

func (s *MySQLPaymentStore) List(ctx context.Context) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, balance_id, name, description, value, created_at, updated_at FROM payments ORDER BY created_at",
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing payments")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		var payment models.Payment
		err := rows.Scan(
			&payment.ID, &payment.BalanceID, &payment.Name, &payment.Description,
			&payment.Value, &payment.CreatedAt, &payment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment: %w", err)
		}
		payments = append(payments, &payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return payments, nil
}

func (s *MySQLPaymentStore) UpdateMeta(ctx context.Context, id, name, description string) (*models.Payment, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE payments SET name = ?, description = ?, updated_at = NOW() WHERE id = ?",
		name, description, id,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", id).Msg("Error updating payment")
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

// Delete removes the payment and restores its value to the owning balance
// in one transaction. The payment row is read first to learn value and
// balance_id; the balance row is locked before the increment.
func (s *MySQLPaymentStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error starting payment delete transaction")
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var balanceID string
	var value decimal.Decimal
	err = tx.QueryRowContext(ctx,
		"SELECT balance_id, value FROM payments WHERE id = ? FOR UPDATE",
		id,
	).Scan(&balanceID, &value)

	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", id).Msg("Error locking payment row")
		return fmt.Errorf("failed to lock payment: %w", err)
	}

	var currentMoney decimal.Decimal
	err = tx.QueryRowContext(ctx,
		"SELECT current_money FROM balances WHERE id = ? FOR UPDATE",
		balanceID,
	).Scan(&currentMoney)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", balanceID).Msg("Error locking balance row")
		return fmt.Errorf("failed to lock balance: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", id).Msg("Error deleting payment")
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE balances SET current_money = ?, updated_at = NOW() WHERE id = ?",
		currentMoney.Add(value), balanceID,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", balanceID).Msg("Error restoring balance amount")
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error().Err(err).Msg("Error committing payment delete")
		return fmt.Errorf("failed to commit payment delete: %w", err)
	}

	return nil
}
