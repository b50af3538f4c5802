package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ambulnz/pizza-ordering/internal/config"
	"github.com/ambulnz/pizza-ordering/internal/handlers"
	"github.com/ambulnz/pizza-ordering/internal/idgen"
	"github.com/ambulnz/pizza-ordering/internal/metrics"
	"github.com/ambulnz/pizza-ordering/internal/middleware"
	"github.com/ambulnz/pizza-ordering/internal/repository"
	"github.com/ambulnz/pizza-ordering/internal/repository/postgres"
	"github.com/ambulnz/pizza-ordering/internal/service"
	"github.com/ambulnz/pizza-ordering/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting pizza ordering api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"storage_driver", cfg.Storage.Driver,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	// Initialize storage backends
	var (
		catalog    repository.CatalogRepository
		orderStore repository.OrderStore
	)

	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := postgres.Open(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pg.Close()

		pgCatalog, err := postgres.NewCatalog(ctx, pg)
		if err != nil {
			log.Error("failed to load catalog", "error", err)
			os.Exit(1)
		}
		catalog = pgCatalog
		orderStore = postgres.NewOrderStore(pg)
	default:
		catalog = repository.NewInMemoryCatalog()
		orderStore = repository.NewInMemoryOrderStore()
	}

	// Initialize capabilities and metrics
	ids := idgen.NewUUIDGenerator()
	orderMetrics := metrics.NewOrderMetrics()

	// Initialize services
	pizzaService := service.NewPizzaService(catalog)
	orderService := service.NewOrderService(catalog, orderStore, ids, orderMetrics, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	pizzaHandler := handlers.NewPizzaHandler(pizzaService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration for the browser menu client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health and metrics endpoints
	r.Get("/health", healthHandler.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Menu endpoints
		r.Get("/pizza", pizzaHandler.ListPizzas)
		r.Get("/pizza/{pizzaName}", pizzaHandler.GetPizza)

		// Order endpoints
		r.Post("/order", orderHandler.CreateOrder)
		r.Get("/order", orderHandler.ListOrders)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
