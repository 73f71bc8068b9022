package main

import (
	"context"
	"log"
	"time"

	"keroluxe-store/internal/core/cache"
	"keroluxe-store/internal/core/config"
	"keroluxe-store/internal/core/logger"
	"keroluxe-store/internal/core/server"
	catalogadapter "keroluxe-store/internal/features/catalog/adapters"
	cataloghandler "keroluxe-store/internal/features/catalog/handler"
	catalogservice "keroluxe-store/internal/features/catalog/service"
	checkoutadapter "keroluxe-store/internal/features/checkout/adapters"
	checkouthandler "keroluxe-store/internal/features/checkout/handler"
	checkoutservice "keroluxe-store/internal/features/checkout/service"
	collectionshandler "keroluxe-store/internal/features/collections/handler"
	collectionsservice "keroluxe-store/internal/features/collections/service"
	ordershandler "keroluxe-store/internal/features/orders/handler"
	ordersservice "keroluxe-store/internal/features/orders/service"
	reviewsadapter "keroluxe-store/internal/features/reviews/adapters"
	reviewshandler "keroluxe-store/internal/features/reviews/handler"
	reviewsservice "keroluxe-store/internal/features/reviews/service"
	stylistadapter "keroluxe-store/internal/features/stylist/adapters"
	stylisthandler "keroluxe-store/internal/features/stylist/handler"
	stylistports "keroluxe-store/internal/features/stylist/ports"
	stylistservice "keroluxe-store/internal/features/stylist/service"

	"go.uber.org/zap"
)

// @title Keroluxe Store API
// @version 1.0
// @description This API drives the KEROLUXE ONLINE STORE: catalog browsing, cart and wishlist, product comparison, checkout, orders, reviews, and the AI stylist.
// @contact.name API Support
// @contact.email support@keroluxe.store
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the review store and verify connectivity
	store, err := cache.NewRedisAdapter(cfg.Store.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect to review store", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(ctx); err != nil {
		cancel()
		l.Fatal("Review store health check failed", zap.Error(err))
	}
	cancel()
	l.Info("Review store connection verified")

	// Catalog
	catalog := catalogadapter.NewStaticCatalog(nil)
	catalogSvc := catalogservice.NewCatalogService(catalog)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	// Cart, wishlist, compare
	collectionsSvc := collectionsservice.NewCollectionsService(catalog)
	collectionsHdl := collectionshandler.NewCollectionsHandler(collectionsSvc)

	// Orders
	ledger := ordersservice.NewLedgerService()
	ordersHdl := ordershandler.NewOrdersHandler(ledger)

	// Checkout
	gateway := checkoutadapter.NewSimulatedPaystackGateway(time.Duration(cfg.Payment.LatencyMs) * time.Millisecond)
	checkoutSvc := checkoutservice.NewCheckoutService(collectionsSvc, gateway, ledger)
	checkoutHdl := checkouthandler.NewCheckoutHandler(checkoutSvc)

	// Reviews
	reviewRepo := reviewsadapter.NewRedisReviewRepository(store)
	reviewSvc := reviewsservice.NewReviewService(reviewRepo, catalog)
	reviewHdl := reviewshandler.NewReviewHandler(reviewSvc)

	// Stylist
	var assistant stylistports.Assistant
	assistant, err = stylistadapter.NewGeminiAssistant(cfg.Stylist.BaseURL, cfg.Stylist.Model, cfg.Stylist.APIKey, catalog)
	if err != nil {
		l.Warn("Stylist disabled", zap.Error(err))
		assistant = stylistadapter.DisabledAssistant{}
	}
	stylistSvc := stylistservice.NewStylistService(assistant, collectionsSvc)
	stylistHdl := stylisthandler.NewStylistHandler(stylistSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/products", catalogHdl.ListProducts)
	srv.App.Get("/products/facets", catalogHdl.GetFacets)
	srv.App.Delete("/products/filters", catalogHdl.ResetFilters)
	srv.App.Get("/products/:id", catalogHdl.GetProduct)
	srv.App.Get("/products/:id/reviews", reviewHdl.ListReviews)
	srv.App.Post("/products/:id/reviews", reviewHdl.AddReview)

	srv.App.Get("/cart", collectionsHdl.GetCart)
	srv.App.Post("/cart/items/:id", collectionsHdl.AddToCart)
	srv.App.Delete("/cart/items/:id", collectionsHdl.RemoveFromCart)
	srv.App.Patch("/cart/items/:id", collectionsHdl.AdjustCartQuantity)

	srv.App.Get("/wishlist", collectionsHdl.GetWishlist)
	srv.App.Post("/wishlist/items/:id", collectionsHdl.ToggleWishlist)

	srv.App.Get("/compare", collectionsHdl.GetCompare)
	srv.App.Post("/compare/items/:id", collectionsHdl.ToggleCompare)
	srv.App.Delete("/compare/items/:id", collectionsHdl.RemoveFromCompare)
	srv.App.Delete("/compare", collectionsHdl.ClearCompare)

	srv.App.Get("/checkout", checkoutHdl.GetState)
	srv.App.Post("/checkout", checkoutHdl.Begin)
	srv.App.Post("/checkout/details", checkoutHdl.SubmitDetails)
	srv.App.Post("/checkout/back", checkoutHdl.BackToDetails)
	srv.App.Post("/checkout/coupon", checkoutHdl.ApplyCoupon)
	srv.App.Post("/checkout/payment", checkoutHdl.SubmitPayment)
	srv.App.Post("/checkout/confirm", checkoutHdl.Confirm)

	srv.App.Get("/orders", ordersHdl.ListOrders)

	srv.App.Post("/stylist", stylistHdl.Chat)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
