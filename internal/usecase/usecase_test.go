package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"localmart/internal/adapter/repository"
	"localmart/internal/domain/entity"
	"localmart/internal/usecase"
)

// testEnv wires every usecase over the in-memory stores, the same way
// cmd/api does when no Firebase project is configured.
type testEnv struct {
	accounts     *usecase.AccountUseCase
	shops        *usecase.ShopUseCase
	products     *usecase.ProductUseCase
	verification *usecase.VerificationUseCase
	discovery    *usecase.DiscoveryUseCase
	authorizer   *usecase.Authorizer
}

func newTestEnv() *testEnv {
	shopRepo := repository.NewMemoryShopRepository()
	accountRepo := repository.NewMemoryAccountRepository()
	productRepo := repository.NewMemoryProductRepository()
	verificationRepo := repository.NewMemoryVerificationRepository(shopRepo)

	authorizer := usecase.NewAuthorizer(accountRepo, shopRepo)

	return &testEnv{
		accounts:     usecase.NewAccountUseCase(accountRepo, authorizer),
		shops:        usecase.NewShopUseCase(shopRepo, productRepo, verificationRepo, authorizer),
		products:     usecase.NewProductUseCase(productRepo, shopRepo, authorizer),
		verification: usecase.NewVerificationUseCase(verificationRepo, shopRepo, authorizer),
		discovery:    usecase.NewDiscoveryUseCase(shopRepo, productRepo, accountRepo),
		authorizer:   authorizer,
	}
}

func (env *testEnv) register(t *testing.T, uid string, role entity.Role) *entity.Account {
	t.Helper()
	account, err := env.accounts.Register(context.Background(), uid, usecase.RegisterInput{
		DisplayName: uid,
		Email:       uid + "@example.com",
		Role:        role,
	})
	require.NoError(t, err)
	return account
}

func (env *testEnv) createShop(t *testing.T, ownerUID string, lat, lon float64) *entity.Shop {
	t.Helper()
	shop, err := env.shops.CreateShop(context.Background(), ownerUID, usecase.CreateShopInput{
		Name:      "Shop of " + ownerUID,
		Contact:   "+62-555-0100",
		Latitude:  lat,
		Longitude: lon,
		Address:   "12 Market Street",
	})
	require.NoError(t, err)
	return shop
}

func (env *testEnv) approveShop(t *testing.T, adminUID, shopID string) {
	t.Helper()
	_, err := env.verification.Decide(context.Background(), adminUID, shopID, entity.DecisionApprove)
	require.NoError(t, err)
}
