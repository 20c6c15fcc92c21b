package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"techsync/internal/auth"
	"techsync/internal/config"
	apphttp "techsync/internal/http"
	"techsync/internal/repository"
	"techsync/internal/repository/memory"
	"techsync/internal/repository/postgres"
	"techsync/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var userRepo repository.UserRepository
	var orderRepo repository.WorkOrderRepository

	if cfg.Database.URL != "" {
		pool, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			logger.Fatalf("open database: %v", err)
		}
		defer pool.Close()

		userRepo = postgres.NewUserRepository(pool)
		orderRepo = postgres.NewWorkOrderRepository(pool)
		logger.Info("using postgres store")
	} else {
		userRepo = repository.NewUnconfiguredUserRepository()
		orderRepo = memory.NewWorkOrderRepository()
		logger.Warn("database url is not set; serving seeded work orders, authentication unavailable")
	}

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := orderRepo.Init(ctx); err != nil {
		logger.Fatalf("init work order repository: %v", err)
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	authService := service.NewAuthService(userRepo, hasher, codec)
	orderService := service.NewWorkOrderService(orderRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(authService, orderService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
