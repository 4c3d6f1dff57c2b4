package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localmart/internal/adapter/api/handler"
	"localmart/internal/adapter/repository"
	"localmart/internal/domain/entity"
	"localmart/internal/usecase"
	"localmart/pkg/response"
)

type fixture struct {
	discovery *handler.DiscoveryHandler
	shopID    string
}

// newFixture wires the discovery handler over memory stores with one
// approved shop at (12.9, 77.6) owned by seller-1, containing one product.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	shopRepo := repository.NewMemoryShopRepository()
	accountRepo := repository.NewMemoryAccountRepository()
	productRepo := repository.NewMemoryProductRepository()
	verificationRepo := repository.NewMemoryVerificationRepository(shopRepo)

	authorizer := usecase.NewAuthorizer(accountRepo, shopRepo)
	accounts := usecase.NewAccountUseCase(accountRepo, authorizer)
	shops := usecase.NewShopUseCase(shopRepo, productRepo, verificationRepo, authorizer)
	products := usecase.NewProductUseCase(productRepo, shopRepo, authorizer)
	verification := usecase.NewVerificationUseCase(verificationRepo, shopRepo, authorizer)
	discovery := usecase.NewDiscoveryUseCase(shopRepo, productRepo, accountRepo)

	for uid, role := range map[string]entity.Role{
		"seller-1": entity.RoleSeller,
		"admin-1":  entity.RoleAdmin,
	} {
		_, err := accounts.Register(ctx, uid, usecase.RegisterInput{
			DisplayName: uid,
			Email:       uid + "@example.com",
			Role:        role,
		})
		require.NoError(t, err)
	}

	shop, err := shops.CreateShop(ctx, "seller-1", usecase.CreateShopInput{
		Name:     "Corner Store",
		Latitude: 12.9, Longitude: 77.6,
		Address: "12 Market Street",
	})
	require.NoError(t, err)

	_, err = verification.Decide(ctx, "admin-1", shop.ID, entity.DecisionApprove)
	require.NoError(t, err)

	_, err = products.AddProduct(ctx, "seller-1", shop.ID, usecase.ProductInput{
		Name:     "Fresh Bread",
		Price:    2.5,
		Category: entity.CategoryFood,
		Quantity: 12,
	})
	require.NoError(t, err)

	return &fixture{
		discovery: handler.NewDiscoveryHandler(discovery),
		shopID:    shop.ID,
	}
}

func doGet(t *testing.T, h echo.HandlerFunc, target string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.HealthCheck(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestFindShopsEndpoint(t *testing.T) {
	fix := newFixture(t)

	rec, body := doGet(t, fix.discovery.FindShops, "/v1/discovery/shops?lat=12.9&lon=77.6&radius=1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Contains(t, rec.Body.String(), fix.shopID)
	assert.Contains(t, rec.Body.String(), "distance_km")
}

func TestFindShopsMissingParams(t *testing.T) {
	fix := newFixture(t)

	rec, body := doGet(t, fix.discovery.FindShops, "/v1/discovery/shops?lon=77.6&radius=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestFindShopsNegativeRadiusEndpoint(t *testing.T) {
	fix := newFixture(t)

	rec, body := doGet(t, fix.discovery.FindShops, "/v1/discovery/shops?lat=12.9&lon=77.6&radius=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestSearchProductsEndpoint(t *testing.T) {
	fix := newFixture(t)

	rec, body := doGet(t, fix.discovery.SearchProducts, "/v1/discovery/products?q=bread&category=Food")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Contains(t, rec.Body.String(), "Fresh Bread")
}

func TestSearchProductsUnknownCategoryEndpoint(t *testing.T) {
	fix := newFixture(t)

	rec, body := doGet(t, fix.discovery.SearchProducts, "/v1/discovery/products?category=Antiques")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}
