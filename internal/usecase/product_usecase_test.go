package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmart/internal/domain/entity"
	"localmart/internal/usecase"
	"localmart/pkg/errors"
)

func TestAddProductValidInput(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	product, err := env.products.AddProduct(ctx, "seller-1", shop.ID, usecase.ProductInput{
		Name:     "Filter Coffee",
		Price:    2.0,
		Category: entity.CategoryFood,
		Quantity: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, shop.ID, product.ShopID)
	assert.True(t, product.Available())

	got, err := env.products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryFood, got.Category)
}

func TestAddProductNegativePriceCreatesNothing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	_, err := env.products.AddProduct(ctx, "seller-1", shop.ID, usecase.ProductInput{
		Name:     "Bad Price",
		Price:    -1,
		Category: entity.CategoryFood,
		Quantity: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	products, total, err := env.products.ListProducts(ctx, shop.ID, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, products)
}

func TestAddProductInvalidInput(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	for name, input := range map[string]usecase.ProductInput{
		"negative quantity": {Name: "x", Price: 1, Category: entity.CategoryFood, Quantity: -1},
		"unknown category":  {Name: "x", Price: 1, Category: entity.Category("Weapons"), Quantity: 1},
	} {
		_, err := env.products.AddProduct(ctx, "seller-1", shop.ID, input)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, errors.CodeValidation), name)
	}
}

func TestAddProductCrossSeller(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	env.register(t, "seller-2", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	_, err := env.products.AddProduct(ctx, "seller-2", shop.ID, usecase.ProductInput{
		Name:     "Intruder",
		Price:    1,
		Category: entity.CategoryOther,
		Quantity: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotOwner))
}

func TestUpdateProductCrossSeller(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	env.register(t, "seller-2", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	product, err := env.products.AddProduct(ctx, "seller-1", shop.ID, usecase.ProductInput{
		Name:     "Original",
		Price:    5,
		Category: entity.CategoryClothing,
		Quantity: 3,
	})
	require.NoError(t, err)

	_, err = env.products.UpdateProduct(ctx, "seller-2", product.ID, usecase.ProductInput{
		Name:     "Tampered",
		Price:    1,
		Category: entity.CategoryClothing,
		Quantity: 3,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotOwner))

	got, err := env.products.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name)
}

func TestUpdateProductByOwner(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	product, err := env.products.AddProduct(ctx, "seller-1", shop.ID, usecase.ProductInput{
		Name:     "Lamp",
		Price:    20,
		Category: entity.CategoryHomeGoods,
		Quantity: 2,
	})
	require.NoError(t, err)

	updated, err := env.products.UpdateProduct(ctx, "seller-1", product.ID, usecase.ProductInput{
		Name:     "Desk Lamp",
		Price:    18,
		Category: entity.CategoryHomeGoods,
		Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", updated.Name)
	assert.False(t, updated.Available())
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	product, err := env.products.AddProduct(ctx, "seller-1", shop.ID, usecase.ProductInput{
		Name:     "Ephemeral",
		Price:    1,
		Category: entity.CategoryOther,
		Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, env.products.DeleteProduct(ctx, "seller-1", product.ID))

	_, err = env.products.GetProduct(ctx, product.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestListProductsUnknownShop(t *testing.T) {
	env := newTestEnv()

	_, _, err := env.products.ListProducts(context.Background(), "no-such-shop", 20, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
