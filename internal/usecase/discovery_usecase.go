package usecase

import (
	"context"
	"sort"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
	"localmart/pkg/geo"
)

// DiscoveryUseCase is the read-only query surface over shops and products.
// Visibility is enforced here, server-side: non-approved shops are shown only
// to their owner or an admin, regardless of what the client asks for.
type DiscoveryUseCase struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	accountRepo repository.AccountRepository
}

func NewDiscoveryUseCase(shopRepo repository.ShopRepository, productRepo repository.ProductRepository, accountRepo repository.AccountRepository) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		shopRepo:    shopRepo,
		productRepo: productRepo,
		accountRepo: accountRepo,
	}
}

type ShopResult struct {
	*entity.Shop
	DistanceKm float64 `json:"distance_km"`
}

// viewer resolves the optional identity credential. Anonymous and
// unregistered callers both get the public view.
func (uc *DiscoveryUseCase) viewer(ctx context.Context, viewerUID string) *entity.Account {
	if viewerUID == "" {
		return nil
	}
	account, err := uc.accountRepo.GetByID(ctx, viewerUID)
	if err != nil {
		return nil
	}
	return account
}

// visibleShops returns every shop the viewer may see: all approved shops,
// plus the viewer's own shops, plus everything for admins.
func (uc *DiscoveryUseCase) visibleShops(ctx context.Context, viewer *entity.Account) ([]*entity.Shop, error) {
	if viewer != nil && viewer.Role == entity.RoleAdmin {
		shops, _, err := uc.shopRepo.List(ctx, nil, 0, 0)
		return shops, err
	}

	approved, _, err := uc.shopRepo.List(ctx, map[string]interface{}{
		"status": entity.VerificationApproved,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	if viewer == nil || viewer.Role != entity.RoleSeller {
		return approved, nil
	}

	own, _, err := uc.shopRepo.List(ctx, map[string]interface{}{
		"ownerId": viewer.ID,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(approved))
	for _, shop := range approved {
		seen[shop.ID] = true
	}
	for _, shop := range own {
		if !seen[shop.ID] {
			approved = append(approved, shop)
		}
	}
	return approved, nil
}

// FindShops answers a bounded-radius query, nearest-first with creation-time
// tiebreak. A radius of zero matches only coincident points.
func (uc *DiscoveryUseCase) FindShops(ctx context.Context, viewerUID string, lat, lon, radiusKm float64, limit, offset int) ([]*ShopResult, int64, error) {
	if radiusKm < 0 {
		return nil, 0, errors.BadRequest("Radius must not be negative", nil)
	}
	if !geo.ValidCoordinates(lat, lon) {
		return nil, 0, errors.BadRequest("Center coordinates are out of range", nil)
	}

	shops, err := uc.visibleShops(ctx, uc.viewer(ctx, viewerUID))
	if err != nil {
		return nil, 0, errors.Internal("Failed to list shops", err)
	}

	var results []*ShopResult
	for _, shop := range shops {
		d := geo.DistanceKm(lat, lon, shop.Location.Latitude, shop.Location.Longitude)
		if d <= radiusKm {
			results = append(results, &ShopResult{Shop: shop, DistanceKm: d})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})

	total := int64(len(results))
	return paginate(results, limit, offset), total, nil
}

// SearchProducts matches product names case-insensitively and categories
// exactly, over products of shops the viewer may see. Empty filters return
// everything visible.
func (uc *DiscoveryUseCase) SearchProducts(ctx context.Context, viewerUID, query string, category entity.Category, shopIDs []string, limit, offset int) ([]*entity.Product, int64, error) {
	if category != "" && !category.Valid() {
		return nil, 0, errors.BadRequest("Unknown category", nil)
	}

	shops, err := uc.visibleShops(ctx, uc.viewer(ctx, viewerUID))
	if err != nil {
		return nil, 0, errors.Internal("Failed to list shops", err)
	}

	visible := make(map[string]bool, len(shops))
	for _, shop := range shops {
		visible[shop.ID] = true
	}
	if len(shopIDs) > 0 {
		bounded := make(map[string]bool, len(shopIDs))
		for _, id := range shopIDs {
			if visible[id] {
				bounded[id] = true
			}
		}
		visible = bounded
	}

	candidates, _, err := uc.productRepo.Search(ctx, query, category, 0, 0)
	if err != nil {
		return nil, 0, errors.Internal("Failed to search products", err)
	}

	var results []*entity.Product
	for _, product := range candidates {
		if visible[product.ShopID] {
			results = append(results, product)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})

	total := int64(len(results))
	return paginate(results, limit, offset), total, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
