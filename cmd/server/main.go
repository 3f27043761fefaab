package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	financeapp "github.com/pedidos/backend/internal/application/finance"
	partnerapp "github.com/pedidos/backend/internal/application/partner"
	tradeapp "github.com/pedidos/backend/internal/application/trade"
	"github.com/pedidos/backend/internal/infrastructure/auth"
	"github.com/pedidos/backend/internal/infrastructure/config"
	"github.com/pedidos/backend/internal/infrastructure/logger"
	fsrepo "github.com/pedidos/backend/internal/infrastructure/persistence/firestore"
	"github.com/pedidos/backend/internal/interfaces/http/handler"
	"github.com/pedidos/backend/internal/interfaces/http/middleware"
	"github.com/pedidos/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting pedidos backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Firebase backs both the document store and operator authentication
	firebaseApp, err := auth.NewApp(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal("Failed to initialize firebase", zap.Error(err))
	}
	tokenVerifier, err := auth.NewTokenVerifier(ctx, firebaseApp)
	if err != nil {
		log.Fatal("Failed to initialize token verifier", zap.Error(err))
	}
	storeClient, err := fsrepo.NewClient(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal("Failed to initialize firestore", zap.Error(err))
	}
	defer func() {
		if err := storeClient.Close(); err != nil {
			log.Error("Error closing firestore client", zap.Error(err))
		}
	}()
	log.Info("Document store connected")

	// Repositories
	customerRepo := fsrepo.NewCustomerRepository(storeClient)
	debtRepo := fsrepo.NewDebtRepository(storeClient)
	paymentRepo := fsrepo.NewPaymentRepository(storeClient)
	orderRepo := fsrepo.NewOrderRepository(storeClient)

	// Application services
	customerService := partnerapp.NewCustomerService(customerRepo)
	accountService := financeapp.NewAccountService(customerRepo, debtRepo, paymentRepo, orderRepo)
	orderService := tradeapp.NewOrderService(orderRepo, customerRepo, cfg.Folio.IncludeDeleted)
	feedManager := tradeapp.NewFeedManager(orderRepo, cfg.Feed.Window, cfg.Feed.Step)

	// HTTP engine
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.RegisterCustomValidators()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.HTTP),
	)

	// Health stays outside authentication
	systemHandler := handler.NewSystemHandler(cfg.App.Name, cfg.App.Env)
	engine.GET("/health", systemHandler.Health)

	engine.Use(middleware.FirebaseAuth(tokenVerifier))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewAccountHandler(accountService)).
		Register(handler.NewOrderHandler(orderService, feedManager))
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}
