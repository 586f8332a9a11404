package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"wellnest-be/internal/auth"
	"wellnest-be/internal/cart"
	"wellnest-be/internal/config"
	"wellnest-be/internal/db"
	"wellnest-be/internal/logger"
	"wellnest-be/internal/order"
	"wellnest-be/internal/payment"
	"wellnest-be/internal/prescription"
	"wellnest-be/internal/product"
	"wellnest-be/internal/seed"
	"wellnest-be/internal/server"
	"wellnest-be/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx := context.Background()
	client, database, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.L().Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := seed.Run(ctx, database); err != nil {
		logger.L().Fatal("seeding failed", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, tokens)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartRepo)

	prescriptionRepo := prescription.NewRepository(database)
	prescriptionSvc := prescription.NewService(prescriptionRepo)

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	srv := server.New(server.Deps{
		Config:        cfg,
		Tokens:        tokens,
		UserRepo:      userRepo,
		Users:         userSvc,
		Products:      productSvc,
		Carts:         cartSvc,
		Orders:        orderSvc,
		Prescriptions: prescriptionSvc,
		Payments:      gateway,
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Engine(),
	}

	go func() {
		logger.L().Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("shutdown error", zap.Error(err))
	}
}
