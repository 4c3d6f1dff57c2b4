package repository

import (
	"context"

	"localmart/internal/domain/entity"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	// Update persists mutable detail fields. Implementations must not let it
	// change the verification status; that write belongs to the
	// VerificationRepository's transactional paths.
	Update(ctx context.Context, shop *entity.Shop) error
	SoftDelete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Shop, int64, error)
	// List returns non-deleted shops matching the filter (keys: "status",
	// "ownerId"). limit 0 means no limit; discovery fetches candidates and
	// ranks them in-process.
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Shop, int64, error)
}
