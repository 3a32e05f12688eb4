package services

import (
	"context"
	"sync"

	"budget-service/internal/models"
	"budget-service/internal/store"

	"github.com/google/uuid"
)

// Stub stores with overridable functions, for exercising the engines'
// error mapping without a database.

type balanceStoreStub struct {
	createFn          func(ctx context.Context, balance *models.Balance) error
	getWithPaymentsFn func(ctx context.Context, id string) (*models.BalanceWithPayments, error)
	listFn            func(ctx context.Context) ([]*models.Balance, error)
	updateMetaFn      func(ctx context.Context, id, name, description string) (*models.Balance, error)
	deleteFn          func(ctx context.Context, id string) error
}

func (s *balanceStoreStub) Create(ctx context.Context, balance *models.Balance) error {
	return s.createFn(ctx, balance)
}

func (s *balanceStoreStub) GetWithPayments(ctx context.Context, id string) (*models.BalanceWithPayments, error) {
	return s.getWithPaymentsFn(ctx, id)
}

func (s *balanceStoreStub) List(ctx context.Context) ([]*models.Balance, error) {
	return s.listFn(ctx)
}

func (s *balanceStoreStub) UpdateMeta(ctx context.Context, id, name, description string) (*models.Balance, error) {
	return s.updateMetaFn(ctx, id, name, description)
}

func (s *balanceStoreStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type paymentStoreStub struct {
	createFn     func(ctx context.Context, payment *models.Payment) error
	getFn        func(ctx context.Context, id string) (*models.Payment, error)
	listFn       func(ctx context.Context) ([]*models.Payment, error)
	updateMetaFn func(ctx context.Context, id, name, description string) (*models.Payment, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (s *paymentStoreStub) Create(ctx context.Context, payment *models.Payment) error {
	return s.createFn(ctx, payment)
}

func (s *paymentStoreStub) Get(ctx context.Context, id string) (*models.Payment, error) {
	return s.getFn(ctx, id)
}

func (s *paymentStoreStub) List(ctx context.Context) ([]*models.Payment, error) {
	return s.listFn(ctx)
}

func (s *paymentStoreStub) UpdateMeta(ctx context.Context, id, name, description string) (*models.Payment, error) {
	return s.updateMetaFn(ctx, id, name, description)
}

func (s *paymentStoreStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// memGateway is an in-memory persistence gateway honoring the same
// atomicity contract as the MySQL adapters: the money-moving operations
// run check and write under one lock, all-or-nothing.
type memGateway struct {
	mu       sync.Mutex
	balances map[string]*models.Balance
	payments map[string]*models.Payment
}

func newMemGateway() *memGateway {
	return &memGateway{
		balances: make(map[string]*models.Balance),
		payments: make(map[string]*models.Payment),
	}
}

type memBalanceStore struct{ g *memGateway }

func (s *memBalanceStore) Create(ctx context.Context, balance *models.Balance) error {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	if balance.ID == "" {
		balance.ID = uuid.NewString()
	}
	clone := *balance
	s.g.balances[balance.ID] = &clone
	return nil
}

func (s *memBalanceStore) GetWithPayments(ctx context.Context, id string) (*models.BalanceWithPayments, error) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	balance, ok := s.g.balances[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	result := &models.BalanceWithPayments{Balance: *balance, Payments: []*models.Payment{}}
	for _, p := range s.g.payments {
		if p.BalanceID == id {
			clone := *p
			result.Payments = append(result.Payments, &clone)
		}
	}
	return result, nil
}

func (s *memBalanceStore) List(ctx context.Context) ([]*models.Balance, error) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	balances := []*models.Balance{}
	for _, b := range s.g.balances {
		clone := *b
		balances = append(balances, &clone)
	}
	return balances, nil
}

func (s *memBalanceStore) UpdateMeta(ctx context.Context, id, name, description string) (*models.Balance, error) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	balance, ok := s.g.balances[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	balance.Name = name
	balance.Description = description
	clone := *balance
	return &clone, nil
}

func (s *memBalanceStore) Delete(ctx context.Context, id string) error {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	if _, ok := s.g.balances[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.g.balances, id)
	return nil
}

type memPaymentStore struct{ g *memGateway }

func (s *memPaymentStore) Create(ctx context.Context, payment *models.Payment) error {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	balance, ok := s.g.balances[payment.BalanceID]
	if !ok {
		return store.ErrNotFound
	}
	newBalance := balance.CurrentMoney.Sub(payment.Value)
	if newBalance.IsNegative() {
		return store.ErrInsufficientFunds
	}
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	clone := *payment
	s.g.payments[payment.ID] = &clone
	balance.CurrentMoney = newBalance
	return nil
}

func (s *memPaymentStore) Get(ctx context.Context, id string) (*models.Payment, error) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	payment, ok := s.g.payments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *payment
	return &clone, nil
}

func (s *memPaymentStore) List(ctx context.Context) ([]*models.Payment, error) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	payments := []*models.Payment{}
	for _, p := range s.g.payments {
		clone := *p
		payments = append(payments, &clone)
	}
	return payments, nil
}

func (s *memPaymentStore) UpdateMeta(ctx context.Context, id, name, description string) (*models.Payment, error) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	payment, ok := s.g.payments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	payment.Name = name
	payment.Description = description
	clone := *payment
	return &clone, nil
}

func (s *memPaymentStore) Delete(ctx context.Context, id string) error {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	payment, ok := s.g.payments[id]
	if !ok {
		return store.ErrNotFound
	}
	balance, ok := s.g.balances[payment.BalanceID]
	if !ok {
		return store.ErrNotFound
	}
	delete(s.g.payments, id)
	balance.CurrentMoney = balance.CurrentMoney.Add(payment.Value)
	return nil
}
