package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
	"localmart/pkg/geo"
)

type ShopUseCase struct {
	shopRepo         repository.ShopRepository
	productRepo      repository.ProductRepository
	verificationRepo repository.VerificationRepository
	authorizer       *Authorizer
}

func NewShopUseCase(shopRepo repository.ShopRepository, productRepo repository.ProductRepository, verificationRepo repository.VerificationRepository, authorizer *Authorizer) *ShopUseCase {
	return &ShopUseCase{
		shopRepo:         shopRepo,
		productRepo:      productRepo,
		verificationRepo: verificationRepo,
		authorizer:       authorizer,
	}
}

type CreateShopInput struct {
	Name        string
	Description string
	Contact     string
	Latitude    float64
	Longitude   float64
	Address     string
}

func (uc *ShopUseCase) CreateShop(ctx context.Context, actorUID string, input CreateShopInput) (*entity.Shop, error) {
	owner, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapCreateShop, "")
	if err != nil {
		return nil, err
	}

	if !geo.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, errors.BadRequest("Location coordinates are out of range", nil)
	}

	now := time.Now()
	shop := &entity.Shop{
		ID:          uuid.New().String(),
		OwnerID:     owner.ID,
		Name:        input.Name,
		Description: input.Description,
		Contact:     input.Contact,
		Location: entity.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Address:   input.Address,
		},
		VerificationStatus: entity.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.Internal("Failed to create shop", err)
	}

	// Every shop starts Pending with an active review request on file, so
	// the admin queue sees it without a separate submission step.
	initial := &entity.VerificationRequest{
		ID:           uuid.New().String(),
		ShopID:       shop.ID,
		BusinessName: shop.Name,
		Address:      shop.Location.Address,
		Status:       entity.VerificationPending,
		SubmittedAt:  now,
	}
	if _, err := uc.verificationRepo.Submit(ctx, initial); err != nil {
		return nil, errors.Internal("Failed to file verification request", err)
	}

	return shop, nil
}

type UpdateShopInput struct {
	Name        string
	Description string
	Contact     string
	Latitude    *float64
	Longitude   *float64
	Address     string
}

// UpdateShopDetails edits detail fields. It never touches the verification
// status; only the verification usecase may change that.
func (uc *ShopUseCase) UpdateShopDetails(ctx context.Context, actorUID, shopID string, input UpdateShopInput) (*entity.Shop, error) {
	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapManageOwnShop, shopID); err != nil {
		return nil, err
	}

	shop, err := uc.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		shop.Name = input.Name
	}
	if input.Description != "" {
		shop.Description = input.Description
	}
	if input.Contact != "" {
		shop.Contact = input.Contact
	}
	if input.Address != "" {
		shop.Location.Address = input.Address
	}
	if input.Latitude != nil || input.Longitude != nil {
		lat := shop.Location.Latitude
		lon := shop.Location.Longitude
		if input.Latitude != nil {
			lat = *input.Latitude
		}
		if input.Longitude != nil {
			lon = *input.Longitude
		}
		if !geo.ValidCoordinates(lat, lon) {
			return nil, errors.BadRequest("Location coordinates are out of range", nil)
		}
		shop.Location.Latitude = lat
		shop.Location.Longitude = lon
	}
	shop.UpdatedAt = time.Now()

	if err := uc.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Internal("Failed to update shop", err)
	}

	return shop, nil
}

func (uc *ShopUseCase) GetShop(ctx context.Context, shopID string) (*entity.Shop, error) {
	return uc.shopRepo.GetByID(ctx, shopID)
}

func (uc *ShopUseCase) ListMyShops(ctx context.Context, actorUID string, limit, offset int) ([]*entity.Shop, int64, error) {
	account, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapViewSellerDashboard, "")
	if err != nil {
		return nil, 0, err
	}
	return uc.shopRepo.ListByOwner(ctx, account.ID, limit, offset)
}

// DeleteShop tombstones the shop and all of its products so neither surfaces
// in queries again.
func (uc *ShopUseCase) DeleteShop(ctx context.Context, actorUID, shopID string) error {
	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapManageOwnShop, shopID); err != nil {
		return err
	}

	if err := uc.shopRepo.SoftDelete(ctx, shopID); err != nil {
		return errors.Internal("Failed to delete shop", err)
	}
	if err := uc.productRepo.SoftDeleteByShop(ctx, shopID); err != nil {
		return errors.Internal("Failed to delete shop products", err)
	}
	return nil
}
