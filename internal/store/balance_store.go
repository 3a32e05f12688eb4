package store

import (
	"context"
	"database/sql"
	"fmt"

	"budget-service/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type MySQLBalanceStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMySQLBalanceStore(db *sql.DB, logger zerolog.Logger) *MySQLBalanceStore {
	return &MySQLBalanceStore{
		db:     db,
		logger: logger,
	}
}

func (s *MySQLBalanceStore) Create(ctx context.Context, balance *models.Balance) error {
	if balance.ID == "" {
		balance.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO balances (id, user_id, name, description, start_money, current_money) VALUES (?, ?, ?, ?, ?, ?)",
		balance.ID, balance.UserID, balance.Name, balance.Description, balance.StartMoney, balance.CurrentMoney,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", balance.ID).Msg("Error inserting balance")
		return fmt.Errorf("failed to insert balance: %w", err)
	}

	return nil
}

func (s *MySQLBalanceStore) GetWithPayments(ctx context.Context, id string) (*models.BalanceWithPayments, error) {
	var balance models.BalanceWithPayments

	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, name, description, start_money, current_money, created_at, updated_at FROM balances WHERE id = ?",
		id,
	).Scan(
		&balance.ID, &balance.UserID, &balance.Name, &balance.Description,
		&balance.StartMoney, &balance.CurrentMoney, &balance.CreatedAt, &balance.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", id).Msg("Error fetching balance")
		return nil, fmt.Errorf("database error: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, balance_id, name, description, value, created_at, updated_at FROM payments WHERE balance_id = ? ORDER BY created_at",
		id,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", id).Msg("Error fetching balance payments")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	balance.Payments = []*models.Payment{}
	for rows.Next() {
		var payment models.Payment
		err := rows.Scan(
			&payment.ID, &payment.BalanceID, &payment.Name, &payment.Description,
			&payment.Value, &payment.CreatedAt, &payment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment: %w", err)
		}
		balance.Payments = append(balance.Payments, &payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &balance, nil
}

func (s *MySQLBalanceStore) List(ctx context.Context) ([]*models.Balance, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, name, description, start_money, current_money, created_at, updated_at FROM balances ORDER BY created_at",
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing balances")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	balances := []*models.Balance{}
	for rows.Next() {
		var balance models.Balance
		err := rows.Scan(
			&balance.ID, &balance.UserID, &balance.Name, &balance.Description,
			&balance.StartMoney, &balance.CurrentMoney, &balance.CreatedAt, &balance.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning balance: %w", err)
		}
		balances = append(balances, &balance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return balances, nil
}

func (s *MySQLBalanceStore) UpdateMeta(ctx context.Context, id, name, description string) (*models.Balance, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE balances SET name = ?, description = ?, updated_at = NOW() WHERE id = ?",
		name, description, id,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", id).Msg("Error updating balance")
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	var balance models.Balance
	err = s.db.QueryRowContext(ctx,
		"SELECT id, user_id, name, description, start_money, current_money, created_at, updated_at FROM balances WHERE id = ?",
		id,
	).Scan(
		&balance.ID, &balance.UserID, &balance.Name, &balance.Description,
		&balance.StartMoney, &balance.CurrentMoney, &balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", id).Msg("Error re-reading balance after update")
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &balance, nil
}

func (s *MySQLBalanceStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM balances WHERE id = ?", id)
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", id).Msg("Error deleting balance")
		return fmt.Errorf("failed to delete balance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
