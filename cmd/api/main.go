package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tmusonda/smartcart-backend/internal/modules/analytics"
	"github.com/tmusonda/smartcart-backend/internal/modules/cart"
	"github.com/tmusonda/smartcart-backend/internal/modules/catalog"
	"github.com/tmusonda/smartcart-backend/internal/modules/order"
	"github.com/tmusonda/smartcart-backend/internal/modules/session"
	"github.com/tmusonda/smartcart-backend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store, err := newStore()
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	sessionService := session.NewService(store)
	session.NewHandler(sessionService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewMemoryRepository(catalog.DemoProducts())
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	carts := cart.NewStore()
	cart.NewHandler(carts, catalogService).RegisterRoutes(router)

	// ── Orders ──────────────────────────────────────────────
	orderLog := order.NewLog(store)
	if err := orderLog.Seed(context.Background(), order.DemoOrders()); err != nil {
		logger.Fatal("order history seed failed", zap.Error(err))
	}
	orderService := order.NewService(carts, orderLog, logger)
	order.NewHandler(orderService, carts, sessionService).RegisterRoutes(router)

	// ── Analytics ───────────────────────────────────────────
	analytics.NewHandler(analytics.NewService()).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("smartcart api listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newStore selects the storage backend from the environment. Memory is the
// default; file mimics the browser's local store on disk; redis keeps the
// same keyed whole-value contract on a shared instance.
func newStore() (storage.Store, error) {
	switch backend := os.Getenv("STORAGE_BACKEND"); backend {
	case "", "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		dir := os.Getenv("STORAGE_DIR")
		if dir == "" {
			dir = "data"
		}
		return storage.NewFileStore(dir)
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		s := storage.NewRedisStore(addr)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis unreachable: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}
}
