package handler

import (
	"localmart/internal/usecase"
)

var (
	accountHandler      *AccountHandler
	shopHandler         *ShopHandler
	productHandler      *ProductHandler
	verificationHandler *VerificationHandler
	discoveryHandler    *DiscoveryHandler
)

func Setup(
	accountUseCase *usecase.AccountUseCase,
	shopUseCase *usecase.ShopUseCase,
	productUseCase *usecase.ProductUseCase,
	verificationUseCase *usecase.VerificationUseCase,
	discoveryUseCase *usecase.DiscoveryUseCase,
) {
	accountHandler = NewAccountHandler(accountUseCase)
	shopHandler = NewShopHandler(shopUseCase)
	productHandler = NewProductHandler(productUseCase)
	verificationHandler = NewVerificationHandler(verificationUseCase)
	discoveryHandler = NewDiscoveryHandler(discoveryUseCase)
}

func GetAccountHandler() *AccountHandler {
	return accountHandler
}

func GetShopHandler() *ShopHandler {
	return shopHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetVerificationHandler() *VerificationHandler {
	return verificationHandler
}

func GetDiscoveryHandler() *DiscoveryHandler {
	return discoveryHandler
}
