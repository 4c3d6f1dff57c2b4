package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"localmart/internal/domain/entity"
	"localmart/internal/domain/repository"
	"localmart/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to decode product", err)
	}
	if product.DeletedAt != nil {
		return nil, errors.NotFound("Product", nil)
	}

	return &product, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()
	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

func (r *firestoreProductRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Set(ctx, map[string]interface{}{
		"deletedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}

func (r *firestoreProductRepository) SoftDeleteByShop(ctx context.Context, shopID string) error {
	iter := r.client.Collection("products").
		Where("shopId", "==", shopID).
		Where("deletedAt", "==", nil).
		Documents(ctx)
	defer iter.Stop()

	now := time.Now()
	batch := r.client.Batch()
	count := 0

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to list shop products", err)
		}
		batch.Set(doc.Ref, map[string]interface{}{"deletedAt": now}, firestore.MergeAll)
		count++
	}

	if count == 0 {
		return nil
	}
	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to delete shop products", err)
	}
	return nil
}

func (r *firestoreProductRepository) ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").
		Where("shopId", "==", shopID).
		Where("deletedAt", "==", nil).
		OrderBy("createdAt", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list products", err)
	}

	total := int64(len(docs))

	if offset > 0 {
		if offset >= len(docs) {
			return []*entity.Product{}, total, nil
		}
		docs = docs[offset:]
	}
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}

	var products []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		products = append(products, &product)
	}

	return products, total, nil
}

func (r *firestoreProductRepository) Search(ctx context.Context, query string, category entity.Category, limit, offset int) ([]*entity.Product, int64, error) {
	// Firestore has no substring search, so name matching happens
	// client-side over the category-filtered set. Fine at local-market
	// scale; a dedicated search service would replace this first.
	query = strings.ToLower(query)

	baseQuery := r.client.Collection("products").Query.Where("deletedAt", "==", nil)
	if category != "" {
		baseQuery = baseQuery.Where("category", "==", category)
	}
	baseQuery = baseQuery.OrderBy("createdAt", firestore.Asc)

	docs, err := baseQuery.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to search products", err)
	}

	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		matched = append(matched, &product)
	}

	total := int64(len(matched))

	if offset > 0 {
		if offset >= len(matched) {
			return []*entity.Product{}, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}
