package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	authorizer  *Authorizer
}

func NewProductUseCase(productRepo repository.ProductRepository, shopRepo repository.ShopRepository, authorizer *Authorizer) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		shopRepo:    shopRepo,
		authorizer:  authorizer,
	}
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    entity.Category
	Quantity    int
	Images      []string
}

func validateProductInput(input ProductInput) error {
	if input.Price < 0 {
		return errors.BadRequest("Price must not be negative", nil)
	}
	if input.Quantity < 0 {
		return errors.BadRequest("Quantity must not be negative", nil)
	}
	if !input.Category.Valid() {
		return errors.BadRequest("Unknown category", nil)
	}
	return nil
}

func (uc *ProductUseCase) AddProduct(ctx context.Context, actorUID, shopID string, input ProductInput) (*entity.Product, error) {
	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapAddProduct, shopID); err != nil {
		return nil, err
	}

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		ShopID:      shopID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Internal("Failed to create product", err)
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, actorUID, productID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapAddProduct, product.ShopID); err != nil {
		return nil, err
	}

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Quantity = input.Quantity
	if len(input.Images) > 0 {
		product.Images = input.Images
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Internal("Failed to update product", err)
	}

	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, productID)
}

// ListProducts returns a shop's products ordered by creation time.
func (uc *ProductUseCase) ListProducts(ctx context.Context, shopID string, limit, offset int) ([]*entity.Product, int64, error) {
	if _, err := uc.shopRepo.GetByID(ctx, shopID); err != nil {
		return nil, 0, err
	}
	return uc.productRepo.ListByShop(ctx, shopID, limit, offset)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, actorUID, productID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if _, err := uc.authorizer.Authorize(ctx, actorUID, entity.CapAddProduct, product.ShopID); err != nil {
		return err
	}

	return uc.productRepo.SoftDelete(ctx, productID)
}
