package usecase

import (
	"context"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

// Authorizer is the single source of truth for capability rules. Every
// mutating usecase goes through it before touching state.
type Authorizer struct {
	accountRepo repository.AccountRepository
	shopRepo    repository.ShopRepository
}

func NewAuthorizer(accountRepo repository.AccountRepository, shopRepo repository.ShopRepository) *Authorizer {
	return &Authorizer{
		accountRepo: accountRepo,
		shopRepo:    shopRepo,
	}
}

// Authorize resolves the identity credential to an account and checks the
// capability. shopID is consulted only for ownership-scoped capabilities.
// Failure kinds stay distinguishable: UNREGISTERED (no account), FORBIDDEN
// (role insufficient), NOT_OWNER (role fine, resource is someone else's).
func (a *Authorizer) Authorize(ctx context.Context, credentialUID string, capability entity.Capability, shopID string) (*entity.Account, error) {
	account, err := a.accountRepo.GetByID(ctx, credentialUID)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, errors.Unregistered(err)
		}
		return nil, err
	}

	switch capability {
	case entity.CapCreateShop, entity.CapViewSellerDashboard:
		if account.Role != entity.RoleSeller {
			return nil, errors.Forbidden("Seller role required", nil)
		}
		return account, nil

	case entity.CapManageOwnShop, entity.CapAddProduct:
		if account.Role != entity.RoleSeller {
			return nil, errors.Forbidden("Seller role required", nil)
		}
		shop, err := a.shopRepo.GetByID(ctx, shopID)
		if err != nil {
			return nil, err
		}
		if shop.OwnerID != account.ID {
			return nil, errors.NotOwner("shop")
		}
		return account, nil

	case entity.CapReviewVerification, entity.CapDecideVerification,
		entity.CapViewAdminDashboard, entity.CapChangeAccountRole:
		if account.Role != entity.RoleAdmin {
			return nil, errors.Forbidden("Admin role required", nil)
		}
		return account, nil
	}

	// Unknown capabilities deny; nothing falls through to an allow.
	return nil, errors.Forbidden("Unknown capability", nil)
}
