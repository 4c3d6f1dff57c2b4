package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"localmart/internal/adapter/api"
	"localmart/internal/adapter/api/handler"
	apimiddleware "localmart/internal/adapter/api/middleware"
	"localmart/internal/adapter/api/router"
	"localmart/internal/adapter/repository"
	domainrepo "localmart/internal/domain/repository"
	"localmart/internal/infrastructure/firebase"
	"localmart/internal/infrastructure/ratelimit"
	"localmart/internal/usecase"
	"localmart/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var (
		accountRepo      domainrepo.AccountRepository
		shopRepo         domainrepo.ShopRepository
		productRepo      domainrepo.ProductRepository
		verificationRepo domainrepo.VerificationRepository
		verifier         apimiddleware.TokenVerifier
	)

	if cfg.UseMemoryStores() {
		log.Printf("No Firebase project configured; using in-memory stores and the dev token verifier")

		memShopRepo := repository.NewMemoryShopRepository()
		accountRepo = repository.NewMemoryAccountRepository()
		shopRepo = memShopRepo
		productRepo = repository.NewMemoryProductRepository()
		verificationRepo = repository.NewMemoryVerificationRepository(memShopRepo)
		verifier = firebase.NewDevVerifier()
	} else {
		var opt option.ClientOption

		serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
		if serviceAccountJSON != "" {
			opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
		} else {
			serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
			if serviceAccountPath == "" {
				log.Fatalf("FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_SERVICE_ACCOUNT_PATH is required")
			}
			opt = option.WithCredentialsFile(serviceAccountPath)
		}

		firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}

		authClient, err := firebaseApp.Auth(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase Auth: %v", err)
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		accountRepo = repository.NewFirestoreAccountRepository(firestoreClient)
		shopRepo = repository.NewFirestoreShopRepository(firestoreClient)
		productRepo = repository.NewFirestoreProductRepository(firestoreClient)
		verificationRepo = repository.NewFirestoreVerificationRepository(firestoreClient)
		verifier = firebase.NewAuthClient(authClient)
	}

	authorizer := usecase.NewAuthorizer(accountRepo, shopRepo)

	accountUseCase := usecase.NewAccountUseCase(accountRepo, authorizer)
	shopUseCase := usecase.NewShopUseCase(shopRepo, productRepo, verificationRepo, authorizer)
	productUseCase := usecase.NewProductUseCase(productRepo, shopRepo, authorizer)
	verificationUseCase := usecase.NewVerificationUseCase(verificationRepo, shopRepo, authorizer)
	discoveryUseCase := usecase.NewDiscoveryUseCase(shopRepo, productRepo, accountRepo)

	handler.Setup(accountUseCase, shopUseCase, productUseCase, verificationUseCase, discoveryUseCase)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(verifier)
	adminMiddleware := apimiddleware.NewAdminMiddleware(accountRepo)

	discoveryLimiter := ratelimit.NewRateLimiter(cfg.DiscoveryBurst, cfg.DiscoveryRefill, time.Second)
	stop := make(chan struct{})
	defer close(stop)
	discoveryLimiter.StartCleanup(stop)

	router.Setup(e, authMiddleware, adminMiddleware, discoveryLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
