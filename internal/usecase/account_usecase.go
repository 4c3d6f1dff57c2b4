package usecase

import (
	"context"
	"time"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
	"localmart/pkg/logger"
)

type AccountUseCase struct {
	accountRepo repository.AccountRepository
	authorizer  *Authorizer
}

func NewAccountUseCase(accountRepo repository.AccountRepository, authorizer *Authorizer) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		authorizer:  authorizer,
	}
}

type RegisterInput struct {
	DisplayName string
	Email       string
	Role        entity.Role
}

// Register binds an identity credential to exactly one account. The role is
// fixed here and never rewritten by any self-service path.
func (uc *AccountUseCase) Register(ctx context.Context, credentialUID string, input RegisterInput) (*entity.Account, error) {
	if !input.Role.Valid() {
		return nil, errors.BadRequest("Unknown role", nil)
	}

	if existing, err := uc.accountRepo.GetByID(ctx, credentialUID); err == nil && existing != nil {
		return nil, errors.AlreadyRegistered("An account already exists for this identity")
	}

	if existing, err := uc.accountRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.AlreadyRegistered("An account already exists for this email")
	}

	now := time.Now()
	account := &entity.Account{
		ID:          credentialUID,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Role:        input.Role,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Internal("Failed to create account", err)
	}

	logger.Info("Registered account %s with role %s", account.ID, account.Role)
	return account, nil
}

// Resolve is a pure lookup from credential to account.
func (uc *AccountUseCase) Resolve(ctx context.Context, credentialUID string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, credentialUID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}
	return account, nil
}

type UpdateProfileInput struct {
	DisplayName string
	Email       string
}

// UpdateProfile edits contact fields only. Role is deliberately absent from
// the input so the update path cannot be used for self-escalation.
func (uc *AccountUseCase) UpdateProfile(ctx context.Context, credentialUID string, input UpdateProfileInput) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, credentialUID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}

	if input.DisplayName != "" {
		account.DisplayName = input.DisplayName
	}
	if input.Email != "" {
		account.Email = input.Email
	}
	account.UpdatedAt = time.Now()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Internal("Failed to update account", err)
	}

	return account, nil
}

// ChangeRole is the reserved admin-only role mutation.
func (uc *AccountUseCase) ChangeRole(ctx context.Context, actorUID, accountID string, role entity.Role) (*entity.Account, error) {
	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapChangeAccountRole, ""); err != nil {
		return nil, err
	}

	if !role.Valid() {
		return nil, errors.BadRequest("Unknown role", nil)
	}

	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}

	account.Role = role
	account.UpdatedAt = time.Now()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Internal("Failed to change role", err)
	}

	logger.Warn("Account %s role changed to %s by admin %s", accountID, role, actorUID)
	return account, nil
}
