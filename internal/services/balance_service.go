package services

import (
	"context"
	"errors"

	"budget-service/internal/models"
	"budget-service/internal/store"

	"github.com/rs/zerolog"
)

// BalanceService enforces the balance lifecycle: creation seeds the
// current amount from the start amount, updates touch metadata only,
// and a balance with payments cannot be deleted. The running amount is
// never written here; only the payment money-moving paths change it.
type BalanceService struct {
	balances store.BalanceStore
	logger   zerolog.Logger
}

func NewBalanceService(balances store.BalanceStore, logger zerolog.Logger) *BalanceService {
	return &BalanceService{
		balances: balances,
		logger:   logger,
	}
}

func (s *BalanceService) CreateBalance(ctx context.Context, req *models.BalanceRequest, userID string) (*models.Balance, error) {
	balance := &models.Balance{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		StartMoney:   req.StartMoney,
		CurrentMoney: req.StartMoney,
	}

	if err := s.balances.Create(ctx, balance); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Error creating balance")
		return nil, ErrCreateBalance
	}

	s.logger.Info().
		Str("balance_id", balance.ID).
		Str("user_id", userID).
		Str("start_money", balance.StartMoney.String()).
		Msg("Balance created")

	return balance, nil
}

func (s *BalanceService) GetBalance(ctx context.Context, id string) (*models.BalanceWithPayments, error) {
	balance, err := s.balances.GetWithPayments(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBalanceNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", id).Msg("Error fetching balance")
		return nil, ErrBalanceNotFound
	}

	return balance, nil
}

func (s *BalanceService) GetBalanceList(ctx context.Context) ([]*models.Balance, error) {
	balances, err := s.balances.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing balances")
		return nil, ErrUnknown
	}

	return balances, nil
}

func (s *BalanceService) UpdateBalance(ctx context.Context, id string, req *models.BalanceUpdateRequest) (*models.Balance, error) {
	balance, err := s.balances.UpdateMeta(ctx, id, req.Name, req.Description)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error().Err(err).Str("balance_id", id).Msg("Error updating balance")
		}
		return nil, ErrUpdateBalance
	}

	return balance, nil
}

func (s *BalanceService) DeleteBalance(ctx context.Context, id string) error {
	balance, err := s.balances.GetWithPayments(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error().Err(err).Str("balance_id", id).Msg("Error fetching balance for delete")
		}
		return ErrDeleteBalance
	}

	if len(balance.Payments) != 0 {
		return ErrBalanceHasPayments
	}

	if err := s.balances.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error().Err(err).Str("balance_id", id).Msg("Error deleting balance")
		}
		return ErrDeleteBalance
	}

	s.logger.Info().Str("balance_id", id).Msg("Balance deleted")
	return nil
}
