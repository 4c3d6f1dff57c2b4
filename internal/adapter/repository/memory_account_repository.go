package repository

import (
	"context"
	"sync"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

// In-memory stores back local development and tests. They favor clarity
// over performance and keep the same contract as the Firestore stores.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]entity.Account
}

func NewMemoryAccountRepository() repository.AccountRepository {
	return &memoryAccountRepository{accounts: make(map[string]entity.Account)}
}

func (r *memoryAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; ok {
		return errors.AlreadyRegistered("An account already exists for this identity")
	}
	r.accounts[account.ID] = *account
	return nil
}

func (r *memoryAccountRepository) GetByID(_ context.Context, id string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if account, ok := r.accounts[id]; ok {
		return &account, nil
	}
	return nil, errors.NotFound("Account", nil)
}

func (r *memoryAccountRepository) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if account.Email == email {
			match := account
			return &match, nil
		}
	}
	return nil, errors.NotFound("Account", nil)
}

func (r *memoryAccountRepository) Update(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return errors.NotFound("Account", nil)
	}
	r.accounts[account.ID] = *account
	return nil
}
