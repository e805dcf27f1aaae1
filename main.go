package main

import (
	"context"
	"log"
	"time"

	"tableside/config"
	httpapi "tableside/internal/api/http"
	"tableside/internal/service"
	"tableside/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var photoCache service.PhotoCache
	var tracker service.PopularityTracker
	if rdb := config.OptionalRedis(); rdb != nil {
		defer rdb.Close()
		photoCache = storage.NewPhotoCache(rdb, 24*time.Hour)
		tracker = storage.NewPopularityStore(rdb)
	}

	var publisher service.BasketPublisher
	if writer := config.NewKafkaWriter("baskets"); writer != nil {
		defer writer.Close()
		publisher = storage.NewBasketEventPublisher(writer)
	}

	if reader := config.NewKafkaReader("baskets", "basket-popularity"); reader != nil && tracker != nil {
		defer reader.Close()
		consumer := service.NewBasketConsumer(reader, tracker)
		go consumer.Start(context.Background())
	}

	qr := service.MenuQRGenerator{BaseURL: config.QRBaseURL()}
	catalogSvc := service.NewCatalogService(repo, qr)
	basketSvc := service.NewBasketService(repo, repo, publisher, config.StrictExtraPricing())
	waiterSvc := service.NewWaiterService(repo)
	imageSvc := service.NewImageService(config.StaticPhotoDir(), config.DefaultPhoto(), photoCache)
	analyticsSvc := service.NewAnalyticsService(tracker, repo, repo)

	handler := httpapi.NewHandler(catalogSvc, basketSvc, waiterSvc, imageSvc, analyticsSvc)
	httpapi.StartServer(config.ListenAddr(), httpapi.NewRouter(handler))
}
