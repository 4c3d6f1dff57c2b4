package repository

import (
	"context"

	"localmart/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error
	// SoftDeleteByShop tombstones every product of a removed shop so queries
	// exclude them consistently.
	SoftDeleteByShop(ctx context.Context, shopID string) error
	// ListByShop returns non-deleted products ordered by creation time.
	ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.Product, int64, error)
	// Search matches name by case-insensitive substring and category exactly.
	// Either filter may be empty. limit 0 means no limit; the discovery
	// usecase applies visibility filtering and pagination.
	Search(ctx context.Context, query string, category entity.Category, limit, offset int) ([]*entity.Product, int64, error)
}
