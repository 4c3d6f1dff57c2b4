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

func TestCreateShopStartsPendingWithRequestOnFile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	assert.Equal(t, entity.VerificationPending, shop.VerificationStatus)
	assert.Equal(t, "seller-1", shop.OwnerID)

	// The initial review request is filed at creation time.
	request, err := env.verification.GetShopStatus(ctx, "seller-1", shop.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationPending, request.Status)
	assert.Equal(t, shop.ID, request.ShopID)
}

func TestCreateShopRequiresSellerRole(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "buyer-1", entity.RoleBuyer)

	_, err := env.shops.CreateShop(ctx, "buyer-1", usecase.CreateShopInput{
		Name:     "Nope",
		Latitude: 12.9, Longitude: 77.6,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	_, err = env.shops.CreateShop(ctx, "ghost", usecase.CreateShopInput{
		Name:     "Nope",
		Latitude: 12.9, Longitude: 77.6,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnregistered))
}

func TestCreateShopRejectsOutOfRangeCoordinates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)

	for _, tc := range []struct{ lat, lon float64 }{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	} {
		_, err := env.shops.CreateShop(ctx, "seller-1", usecase.CreateShopInput{
			Name:     "Edge",
			Latitude: tc.lat, Longitude: tc.lon,
		})
		require.Error(t, err, "lat=%v lon=%v", tc.lat, tc.lon)
		assert.True(t, errors.Is(err, errors.CodeValidation))
	}
}

func TestUpdateShopDetailsNeverTouchesStatus(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	env.register(t, "admin-1", entity.RoleAdmin)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)
	env.approveShop(t, "admin-1", shop.ID)

	updated, err := env.shops.UpdateShopDetails(ctx, "seller-1", shop.ID, usecase.UpdateShopInput{
		Name:        "Renamed",
		Description: "New description",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, entity.VerificationApproved, updated.VerificationStatus)
}

func TestUpdateShopDetailsCrossSeller(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	env.register(t, "seller-2", entity.RoleSeller)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)

	_, err := env.shops.UpdateShopDetails(ctx, "seller-2", shop.ID, usecase.UpdateShopInput{Name: "Hijacked"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotOwner))

	// Unchanged after the denied write.
	got, err := env.shops.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.Name, got.Name)
}

func TestListMyShopsReturnsOnlyOwn(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	env.register(t, "seller-2", entity.RoleSeller)
	env.createShop(t, "seller-1", 12.9, 77.6)
	env.createShop(t, "seller-1", 12.91, 77.61)
	env.createShop(t, "seller-2", 12.9, 77.6)

	shops, total, err := env.shops.ListMyShops(ctx, "seller-1", 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, shop := range shops {
		assert.Equal(t, "seller-1", shop.OwnerID)
	}
}

func TestDeleteShopTombstonesShopAndProducts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.register(t, "seller-1", entity.RoleSeller)
	env.register(t, "admin-1", entity.RoleAdmin)
	shop := env.createShop(t, "seller-1", 12.9, 77.6)
	env.approveShop(t, "admin-1", shop.ID)

	product, err := env.products.AddProduct(ctx, "seller-1", shop.ID, usecase.ProductInput{
		Name:     "Masala Dosa",
		Price:    4.5,
		Category: entity.CategoryFood,
		Quantity: 10,
	})
	require.NoError(t, err)

	require.NoError(t, env.shops.DeleteShop(ctx, "seller-1", shop.ID))

	_, err = env.shops.GetShop(ctx, shop.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	_, err = env.products.GetProduct(ctx, product.ID)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	// Gone from discovery too.
	results, total, err := env.discovery.FindShops(ctx, "", 12.9, 77.6, 1, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, results)
}
