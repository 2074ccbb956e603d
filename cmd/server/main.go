package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/LeducSama/congo-marketplace-backend/internal/config"
	"github.com/LeducSama/congo-marketplace-backend/internal/db"
	"github.com/LeducSama/congo-marketplace-backend/internal/es"
	"github.com/LeducSama/congo-marketplace-backend/internal/httpserver"
	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	authmw "github.com/LeducSama/congo-marketplace-backend/internal/middleware/auth"
	loggingmw "github.com/LeducSama/congo-marketplace-backend/internal/middleware/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/middleware/ratelimit"
	"github.com/LeducSama/congo-marketplace-backend/internal/mykafka"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
)

const productsIndex = "products"

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmptyBytes(cfg.RefreshSecret, "REFRESH_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Warn("kafka disabled, no brokers configured")
	}
	defer producer.Close()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	} else {
		logger.Warn("redis disabled, rate limiting off")
	}

	store := repo.New(gdb)

	authSvc := &service.AuthService{
		Repo:          store,
		JWTSecret:     cfg.JWTSecret,
		RefreshSecret: cfg.RefreshSecret,
		Producer:      producer,
	}
	catalogSvc := &service.CatalogService{Repo: store}
	cartSvc := &service.CartService{Repo: store, Producer: producer}
	wishlistSvc := &service.WishlistService{Repo: store, Producer: producer}
	vendorSvc := &service.VendorService{Repo: store, Producer: producer}
	storySvc := &service.StoryService{Repo: store, Producer: producer}

	deps := httpserver.Deps{
		Auth:     &httpserver.AuthHTTP{Svc: authSvc},
		Catalog:  &httpserver.CatalogHTTP{Svc: catalogSvc},
		Cart:     &httpserver.CartHTTP{Svc: cartSvc},
		Wishlist: &httpserver.WishlistHTTP{Svc: wishlistSvc},
		Vendor:   &httpserver.VendorHTTP{Svc: vendorSvc},
		Story:    &httpserver.StoryHTTP{Svc: storySvc},
		AuthMW:   authmw.New(cfg.JWTSecret),
	}

	if cfg.ESURL != "" {
		client, err := es.NewClient(cfg)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search disabled", "error", err)
		} else {
			deps.Search = &httpserver.SearchHTTP{ES: client, Index: productsIndex}
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(ratelimit.New(redisClient))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("bye")
}
