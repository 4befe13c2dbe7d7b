package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/api"
	"fintrack/internal/auth"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/quote"
	"fintrack/internal/repository"
	"fintrack/internal/scheduler"
	"fintrack/internal/secrets"
	"fintrack/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Quote clients share one cache behind the resolver
	binanceClient := quote.NewBinanceClient(cfg.Quotes.HTTPTimeout)
	mfapiClient := quote.NewMFAPIClient(cfg.Quotes.HTTPTimeout)
	quoteCache := quote.NewCache(cfg.Quotes.CacheTTL)
	resolver := quote.NewResolver(quoteCache, binanceClient, mfapiClient)

	// Secret-at-rest encryption is optional; without a key, credentials
	// can only come from the environment
	var encryptor *secrets.Encryptor
	if cfg.Exchange.FernetKey != "" {
		encryptor, err = secrets.NewEncryptor(cfg.Exchange.FernetKey)
		if err != nil {
			log.Fatalf("Failed to initialize encryption: %v", err)
		}
	}

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	cryptoRepo := repository.NewCryptoRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	authService := auth.NewService(cfg.Auth.PIN, cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime)
	fundService := service.NewFundService(fundRepo, resolver)
	cryptoService := service.NewCryptoService(cryptoRepo, resolver)
	walletService := service.NewWalletService(
		cryptoRepo,
		credentialRepo,
		cryptoService,
		resolver,
		binanceClient,
		encryptor,
		cfg.Exchange.APIKey,
		cfg.Exchange.Secret,
	)
	expenseService := service.NewExpenseService(expenseRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	profileService := service.NewProfileService(profileRepo)
	dashboardService := service.NewDashboardService(fundService, cryptoService, expenseRepo, profileRepo)
	statsService := service.NewStatsService(expenseRepo, categoryRepo, profileRepo)

	// Background quote refresh
	refreshScheduler := scheduler.New(fundService, cryptoService)
	if err := refreshScheduler.Start(cfg.Scheduler.RefreshSpec); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer refreshScheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Auth:      authService,
		Funds:     fundService,
		Crypto:    cryptoService,
		Wallet:    walletService,
		Expenses:  expenseService,
		Category:  categoryService,
		Profile:   profileService,
		Dashboard: dashboardService,
		Stats:     statsService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
