package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

type MemoryShopRepository struct {
	mu    sync.RWMutex
	shops map[string]entity.Shop
}

func NewMemoryShopRepository() *MemoryShopRepository {
	return &MemoryShopRepository{shops: make(map[string]entity.Shop)}
}

var _ repository.ShopRepository = (*MemoryShopRepository)(nil)

func (r *MemoryShopRepository) Create(_ context.Context, shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[shop.ID] = *shop
	return nil
}

func (r *MemoryShopRepository) GetByID(_ context.Context, id string) (*entity.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getLocked(id)
}

func (r *MemoryShopRepository) getLocked(id string) (*entity.Shop, error) {
	shop, ok := r.shops[id]
	if !ok || shop.DeletedAt != nil {
		return nil, errors.NotFound("Shop", nil)
	}
	return &shop, nil
}

// Update persists detail fields but preserves the stored verification
// status: that field is owned by the verification store.
func (r *MemoryShopRepository) Update(_ context.Context, shop *entity.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.shops[shop.ID]
	if !ok || current.DeletedAt != nil {
		return errors.NotFound("Shop", nil)
	}
	next := *shop
	next.VerificationStatus = current.VerificationStatus
	r.shops[shop.ID] = next
	return nil
}

// setStatus is used by the verification store inside its per-shop critical
// section.
func (r *MemoryShopRepository) setStatus(id string, status entity.VerificationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[id]
	if !ok || shop.DeletedAt != nil {
		return errors.NotFound("Shop", nil)
	}
	shop.VerificationStatus = status
	shop.UpdatedAt = time.Now()
	r.shops[id] = shop
	return nil
}

func (r *MemoryShopRepository) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	shop, ok := r.shops[id]
	if !ok || shop.DeletedAt != nil {
		return errors.NotFound("Shop", nil)
	}
	now := time.Now()
	shop.DeletedAt = &now
	r.shops[id] = shop
	return nil
}

func (r *MemoryShopRepository) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*entity.Shop, int64, error) {
	return r.list(map[string]interface{}{"ownerId": ownerID}, limit, offset)
}

func (r *MemoryShopRepository) List(_ context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Shop, int64, error) {
	return r.list(filter, limit, offset)
}

func (r *MemoryShopRepository) list(filter map[string]interface{}, limit, offset int) ([]*entity.Shop, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Shop
	for _, shop := range r.shops {
		if shop.DeletedAt != nil {
			continue
		}
		if status, ok := filter["status"]; ok && shop.VerificationStatus != status.(entity.VerificationStatus) {
			continue
		}
		if ownerID, ok := filter["ownerId"]; ok && shop.OwnerID != ownerID.(string) {
			continue
		}
		match := shop
		matched = append(matched, &match)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Shop{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}
