package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fintrack/internal/api/handlers"
	custommiddleware "fintrack/internal/api/middleware"
	"fintrack/internal/auth"
	"fintrack/internal/config"
	"fintrack/internal/service"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	System    *service.SystemService
	Auth      *auth.Service
	Funds     *service.FundService
	Crypto    *service.CryptoService
	Wallet    *service.WalletService
	Expenses  *service.ExpenseService
	Category  *service.CategoryService
	Profile   *service.ProfileService
	Dashboard *service.DashboardService
	Stats     *service.StatsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Route("/api", func(r chi.Router) {
		// Open namespaces: auth and system
		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(svcs.Auth)
			// Tight per-IP limit acts as the first line against PIN guessing.
			limiter := custommiddleware.NewRateLimiter(1, 5)
			r.With(limiter.Limit).Post("/validate-pin", authHandler.ValidatePIN)
		})

		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Everything else requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.RequireToken(svcs.Auth))

			r.Route("/mutual-funds", func(r chi.Router) {
				fundHandler := handlers.NewFundHandler(svcs.Funds)
				r.Get("/", fundHandler.Funds)
				r.Post("/", fundHandler.CreateFund)
				r.Post("/refresh-nav", fundHandler.RefreshNAVs)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", fundHandler.Fund)
					r.Put("/", fundHandler.UpdateFund)
					r.Delete("/", fundHandler.DeleteFund)
					r.Post("/installment", fundHandler.ApplyInstallment)
				})
			})

			r.Route("/crypto", func(r chi.Router) {
				cryptoHandler := handlers.NewCryptoHandler(svcs.Crypto)
				r.Get("/", cryptoHandler.Holdings)
				r.Post("/", cryptoHandler.CreateHolding)
				r.Post("/refresh-prices", cryptoHandler.RefreshPrices)
				r.Get("/price/{symbol}", cryptoHandler.TokenPrice)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", cryptoHandler.Holding)
					r.Put("/", cryptoHandler.UpdateHolding)
					r.Delete("/", cryptoHandler.DeleteHolding)
				})
			})

			r.Route("/wallet-integration", func(r chi.Router) {
				walletHandler := handlers.NewWalletHandler(svcs.Wallet)
				r.Get("/binance-config", walletHandler.BinanceConfig)
				r.Put("/credentials", walletHandler.SaveCredentials)
				r.Post("/sync-binance", walletHandler.SyncBinance)
				r.Post("/sync-metamask", walletHandler.SyncMetaMask)
				r.Get("/aggregated", walletHandler.Aggregated)
			})

			r.Route("/expenses", func(r chi.Router) {
				expenseHandler := handlers.NewExpenseHandler(svcs.Expenses)
				r.Get("/", expenseHandler.Expenses)
				r.Post("/", expenseHandler.CreateExpense)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", expenseHandler.Expense)
					r.Put("/", expenseHandler.UpdateExpense)
					r.Delete("/", expenseHandler.DeleteExpense)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				categoryHandler := handlers.NewCategoryHandler(svcs.Category)
				r.Get("/", categoryHandler.Categories)
				r.Post("/", categoryHandler.CreateCategory)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", categoryHandler.UpdateCategory)
					r.Delete("/", categoryHandler.DeleteCategory)
				})
			})

			r.Route("/profile", func(r chi.Router) {
				profileHandler := handlers.NewProfileHandler(svcs.Profile)
				r.Get("/", profileHandler.Profile)
				r.Put("/", profileHandler.UpdateProfile)
			})

			r.Route("/dashboard", func(r chi.Router) {
				dashboardHandler := handlers.NewDashboardHandler(svcs.Dashboard)
				r.Get("/stats", dashboardHandler.Stats)
				r.Get("/monthly-trend", dashboardHandler.MonthlyTrend)
			})

			r.Route("/stats", func(r chi.Router) {
				statsHandler := handlers.NewStatsHandler(svcs.Stats)
				r.Get("/daily", statsHandler.Daily)
				r.Get("/trend", statsHandler.Trend)
				r.Get("/calendar", statsHandler.Calendar)
				r.Get("/category-limits", statsHandler.CategoryLimits)
			})
		})
	})

	return r
}
