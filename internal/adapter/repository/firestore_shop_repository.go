package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

type firestoreShopRepository struct {
	client *firestore.Client
}

func NewFirestoreShopRepository(client *firestore.Client) repository.ShopRepository {
	return &firestoreShopRepository{
		client: client,
	}
}

func (r *firestoreShopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == "" {
		doc := r.client.Collection("shops").NewDoc()
		shop.ID = doc.ID
	}

	_, err := r.client.Collection("shops").Doc(shop.ID).Set(ctx, shop)
	if err != nil {
		return errors.Internal("Failed to create shop", err)
	}

	return nil
}

func (r *firestoreShopRepository) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	doc, err := r.client.Collection("shops").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Shop", err)
		}
		return nil, errors.Internal("Failed to get shop", err)
	}

	var shop entity.Shop
	if err := doc.DataTo(&shop); err != nil {
		return nil, errors.Internal("Failed to decode shop", err)
	}
	if shop.DeletedAt != nil {
		return nil, errors.NotFound("Shop", nil)
	}

	return &shop, nil
}

// Update merges detail fields only. The verification status is deliberately
// left out of the merge map; only the verification store writes it.
func (r *firestoreShopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	updateData := map[string]interface{}{
		"name":        shop.Name,
		"description": shop.Description,
		"contact":     shop.Contact,
		"location":    shop.Location,
		"updatedAt":   time.Now(),
	}

	_, err := r.client.Collection("shops").Doc(shop.ID).Set(ctx, updateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update shop", err)
	}
	return nil
}

func (r *firestoreShopRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.client.Collection("shops").Doc(id).Set(ctx, map[string]interface{}{
		"deletedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to delete shop", err)
	}
	return nil
}

func (r *firestoreShopRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Shop, int64, error) {
	return r.List(ctx, map[string]interface{}{"ownerId": ownerID}, limit, offset)
}

func (r *firestoreShopRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Shop, int64, error) {
	query := r.client.Collection("shops").Query.Where("deletedAt", "==", nil)

	for key, value := range filter {
		if key == "status" {
			key = "verificationStatus"
		}
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("createdAt", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list shops", err)
	}

	total := int64(len(docs))

	if offset > 0 {
		if offset >= len(docs) {
			return []*entity.Shop{}, total, nil
		}
		docs = docs[offset:]
	}
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}

	var shops []*entity.Shop
	for _, doc := range docs {
		var shop entity.Shop
		if err := doc.DataTo(&shop); err != nil {
			continue
		}
		shops = append(shops, &shop)
	}

	return shops, total, nil
}
