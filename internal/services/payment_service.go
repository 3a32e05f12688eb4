package services

import (
	"context"
	"errors"
	"sync"

	"budget-service/internal/models"
	"budget-service/internal/store"

	"github.com/rs/zerolog"
)

// PaymentService enforces the payment lifecycle. Creating a payment
// debits the owning balance and deleting one restores the funds; both
// happen inside the store's transaction so the two writes are a single
// atomic unit. The service reads balances through BalanceService but
// never mutates the running amount itself.
type PaymentService struct {
	payments       store.PaymentStore
	balanceService *BalanceService
	logger         zerolog.Logger
	mu             sync.Map
}

func NewPaymentService(payments store.PaymentStore, balanceService *BalanceService, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		payments:       payments,
		balanceService: balanceService,
		logger:         logger,
	}
}

// getMutex serializes money-moving calls per balance within this
// process. The database row lock is the authoritative guard; this keeps
// local contention off the database.
func (s *PaymentService) getMutex(balanceID string) *sync.Mutex {
	mu, _ := s.mu.LoadOrStore(balanceID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *PaymentService) CreatePayment(ctx context.Context, req *models.PaymentRequest) (*models.Payment, error) {
	balance, err := s.balanceService.GetBalance(ctx, req.BalanceID)
	if err != nil {
		return nil, ErrBalanceNotFound
	}

	// Early rejection on stale data; the store re-checks under the row
	// lock before committing.
	if balance.CurrentMoney.Sub(req.Value).IsNegative() {
		return nil, ErrInsufficientBalance
	}

	payment := &models.Payment{
		BalanceID:   req.BalanceID,
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
	}

	mu := s.getMutex(req.BalanceID)
	mu.Lock()
	err = s.payments.Create(ctx, payment)
	mu.Unlock()

	if errors.Is(err, store.ErrInsufficientFunds) {
		return nil, ErrInsufficientBalance
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBalanceNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("balance_id", req.BalanceID).Msg("Error creating payment")
		return nil, ErrCreatePayment
	}

	s.logger.Info().
		Str("payment_id", payment.ID).
		Str("balance_id", payment.BalanceID).
		Str("value", payment.Value.String()).
		Msg("Payment created")

	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := s.payments.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", id).Msg("Error fetching payment")
		return nil, ErrPaymentNotFound
	}

	return payment, nil
}

func (s *PaymentService) GetPaymentList(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing payments")
		return nil, ErrUnknown
	}

	return payments, nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id string, req *models.PaymentUpdateRequest) (*models.Payment, error) {
	payment, err := s.payments.UpdateMeta(ctx, id, req.Name, req.Description)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error().Err(err).Str("payment_id", id).Msg("Error updating payment")
		}
		return nil, ErrUpdatePayment
	}

	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	payment, err := s.payments.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error().Err(err).Str("payment_id", id).Msg("Error fetching payment for delete")
		}
		return ErrDeletePayment
	}

	mu := s.getMutex(payment.BalanceID)
	mu.Lock()
	err = s.payments.Delete(ctx, id)
	mu.Unlock()

	if errors.Is(err, store.ErrNotFound) {
		// Raced with another delete; the funds were restored exactly once.
		return ErrDeletePayment
	}
	if err != nil {
		s.logger.Error().Err(err).Str("payment_id", id).Msg("Error deleting payment")
		return ErrDeletePayment
	}

	s.logger.Info().
		Str("payment_id", id).
		Str("balance_id", payment.BalanceID).
		Str("value", payment.Value.String()).
		Msg("Payment deleted")

	return nil
}
