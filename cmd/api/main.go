package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	cartstore "lumina-shop/internal/cart"
	"lumina-shop/internal/config"
	"lumina-shop/internal/db"
	"lumina-shop/internal/httpserver"
	"lumina-shop/internal/query"
	productrepo "lumina-shop/internal/repository/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var pool *pgxpool.Pool
	var catalog productrepo.Repository
	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		catalog = productrepo.NewPostgres(pool, logger)
		logger.Printf("catalog: postgres")
	} else {
		catalog = productrepo.NewMock(mockOptions(cfg))
		logger.Printf("catalog: generated mock")
	}

	productStore := query.NewStore(catalog, logger)
	if err := productStore.Load(ctx); err != nil {
		// Not fatal: the store stays empty and POST /api/products/reload
		// serves as the retry affordance.
		logger.Printf("initial catalog load failed: %v", err)
	}

	cartStorage := buildCartStorage(cfg, logger)
	cartStore := cartstore.NewStore(ctx, cartStorage, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Catalog:     catalog,
		Products:    productStore,
		Cart:        cartStore,
		CORSOrigins: cfg.CORSOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func mockOptions(cfg config.Config) productrepo.MockOptions {
	opts := productrepo.MockOptions{Seed: 42}
	if cfg.MockDelay >= 0 {
		d := cfg.MockDelay
		if d == 0 {
			d = -1
		}
		opts.ListDelay = d
		opts.GetDelay = d
	}
	return opts
}

func buildCartStorage(cfg config.Config, logger *log.Logger) cartstore.Storage {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		logger.Printf("cart storage: redis %s", cfg.RedisAddr)
		return cartstore.NewRedisStorage(client)
	}
	if cfg.CartFile != "" {
		logger.Printf("cart storage: file %s", cfg.CartFile)
		return cartstore.NewFileStorage(cfg.CartFile)
	}
	logger.Printf("cart storage: in-memory only")
	return cartstore.NewMemoryStorage()
}
