package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"trendkart/internal/adapter/api"
	"trendkart/internal/adapter/api/handler"
	apimiddleware "trendkart/internal/adapter/api/middleware"
	"trendkart/internal/adapter/api/router"
	"trendkart/internal/adapter/repository"
	domainrepo "trendkart/internal/domain/repository"
	"trendkart/internal/infrastructure/cache"
	infrafirebase "trendkart/internal/infrastructure/firebase"
	"trendkart/internal/usecase"
	"trendkart/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
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

	// Redis backs the section cache and recent-search history; without an
	// address both fall back to process memory.
	var sectionCache cache.Cache
	var historyRepo domainrepo.SearchHistoryRepository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		defer redisClient.Close()

		sectionCache = cache.NewRedisCache(redisClient)
		historyRepo = repository.NewRedisSearchHistoryRepository(redisClient)
	} else {
		log.Printf("REDIS_ADDR not set, using in-memory cache and search history")
		sectionCache = cache.NewMemoryCache()
		historyRepo = repository.NewMemorySearchHistoryRepository()
	}

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	bannerRepo := repository.NewFirestoreBannerRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	sellerRepo := repository.NewFirestoreSellerRepository(firestoreClient)

	catalogUseCase := usecase.NewCatalogUseCase(productRepo, categoryRepo)
	searchUseCase := usecase.NewSearchUseCase(productRepo, historyRepo)
	bannerUseCase := usecase.NewBannerUseCase(bannerRepo)
	homeUseCase := usecase.NewHomeUseCase(productRepo, sectionCache, cfg.SectionCacheTTL)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, sellerRepo, cfg.DefaultSellerID)

	handler.Setup(catalogUseCase, searchUseCase, bannerUseCase, homeUseCase, orderUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(infrafirebase.NewFirebaseAuthClient(authClient))

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
