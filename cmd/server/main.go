package main

import (
	"net/http"

	"premiumshop-be/internal/address"
	"premiumshop-be/internal/api"
	"premiumshop-be/internal/cart"
	"premiumshop-be/internal/config"
	"premiumshop-be/internal/db"
	"premiumshop-be/internal/localstore"
	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/metrics"
	"premiumshop-be/internal/newsletter"
	"premiumshop-be/internal/order"
	"premiumshop-be/internal/product"
	"premiumshop-be/internal/review"
	"premiumshop-be/internal/user"
	"premiumshop-be/internal/wishlist"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	store, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		log.Fatal("failed to open local store", zap.String("path", cfg.LocalStorePath), zap.Error(err))
	}

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, userRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo, store)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	server := api.NewServer(api.Config{
		Users:          userSvc,
		Products:       productSvc,
		Carts:          cart.NewRepository(database),
		Wishlists:      wishlist.NewRepository(database),
		Orders:         orderSvc,
		Reviews:        reviewSvc,
		Addresses:      addressSvc,
		News:           newsletter.NewService(store),
		Metrics:        metrics.NewRegistry(),
		ShippingFee:    cfg.ShippingFlatFee,
		MerchantNumber: cfg.MerchantNumber,
	})

	addr := ":" + cfg.AppPort
	log.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	if err := http.ListenAndServe(addr, server.Routes()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
