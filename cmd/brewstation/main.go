package main

import (
	"context"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/mkcho/brewstation/config"
	"github.com/mkcho/brewstation/internal/auth"
	handler "github.com/mkcho/brewstation/internal/handler/http"
	"github.com/mkcho/brewstation/internal/middleware"
	"github.com/mkcho/brewstation/internal/repository"
	"github.com/mkcho/brewstation/internal/repository/postgres"
	"github.com/mkcho/brewstation/internal/service"
	"github.com/mkcho/brewstation/internal/telemetry"
	"go.uber.org/zap"
)

// fixed delay after a failed telemetry read or decode
const telemetryRetryDelay = time.Second

const shutdownTimeout = 5 * time.Second

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context cancelled on shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokenKey, err := hex.DecodeString(cfg.TokenKey)
	if err != nil {
		logger.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// initialize storage per deployment variant
	var userRepo service.UserRepository
	var orderRepo service.OrderRepository

	switch cfg.Storage {
	case config.StorageMemory:
		userRepo = repository.NewMemoryUserRepo()
		orderRepo = repository.NewMemoryOrderRepo()
	default:
		db, err := postgres.New(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Fatal("Error initializing database", zap.Error(err))
		}
		defer db.Close()

		// migrate database
		if err := db.Migrate(); err != nil {
			logger.Fatal("Error migrating database", zap.Error(err))
		}

		userRepo = repository.NewUserRepository(db)
		orderRepo = repository.NewOrderRepository(db)
	}

	// telemetry ingestion; a failure to open the port is fatal
	channel := telemetry.NewChannel()
	port, err := telemetry.OpenPort(cfg.SerialPort, cfg.BaudRate)
	if err != nil {
		logger.Fatal("Error opening serial port", zap.String("port", cfg.SerialPort), zap.Error(err))
	}
	reader := telemetry.NewReader(port, channel, logger, telemetryRetryDelay)

	go func() {
		if err := reader.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("telemetry reader stopped", zap.Error(err))
		}
	}()

	// dependency injection
	// user
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	// auth
	authService := service.NewAuthService(userRepo, token)
	authHandler := handler.NewAuthHandler(authService)

	// order
	orderService := service.NewOrderService(orderRepo)
	orderHandler := handler.NewOrderHandler(orderService)

	// stock
	stockService := service.NewStockService(channel)
	stockHandler := handler.NewStockHandler(stockService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Post("/register", userHandler.RegisterUser())
	router.Post("/login", authHandler.LoginUser())
	router.Get("/orders", orderHandler.ListAllOrders())
	router.Get("/order/{orderID}/status", orderHandler.GetOrderStatus())
	router.Patch("/order/{orderID}/status", orderHandler.UpdateOrderStatus())
	router.Get("/stock", stockHandler.GetStock())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))
		group.Post("/order", orderHandler.CreateOrder())
		group.Get("/orders/me", orderHandler.ListUserOrders())
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
