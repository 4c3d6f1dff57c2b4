package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{products: make(map[string]entity.Product)}
}

func (r *memoryProductRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = *product
	return nil
}

func (r *memoryProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok || product.DeletedAt != nil {
		return nil, errors.NotFound("Product", nil)
	}
	return &product, nil
}

func (r *memoryProductRepository) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.products[product.ID]
	if !ok || current.DeletedAt != nil {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = *product
	return nil
}

func (r *memoryProductRepository) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok || product.DeletedAt != nil {
		return errors.NotFound("Product", nil)
	}
	now := time.Now()
	product.DeletedAt = &now
	r.products[id] = product
	return nil
}

func (r *memoryProductRepository) SoftDeleteByShop(_ context.Context, shopID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for id, product := range r.products {
		if product.ShopID == shopID && product.DeletedAt == nil {
			product.DeletedAt = &now
			r.products[id] = product
		}
	}
	return nil
}

func (r *memoryProductRepository) ListByShop(_ context.Context, shopID string, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Product
	for _, product := range r.products {
		if product.DeletedAt != nil || product.ShopID != shopID {
			continue
		}
		match := product
		matched = append(matched, &match)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return slicePage(matched, limit, offset)
}

func (r *memoryProductRepository) Search(_ context.Context, query string, category entity.Category, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)

	var matched []*entity.Product
	for _, product := range r.products {
		if product.DeletedAt != nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		match := product
		matched = append(matched, &match)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return slicePage(matched, limit, offset)
}

func slicePage(matched []*entity.Product, limit, offset int) ([]*entity.Product, int64, error) {
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*entity.Product{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}
