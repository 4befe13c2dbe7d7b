package testutil

import (
	"database/sql"
	"testing"
	"time"

	"fintrack/internal/quote"
	"fintrack/internal/repository"
	"fintrack/internal/secrets"
	"fintrack/internal/service"
)

// NewTestResolver builds a quote resolver over mock sources with a short
// cache TTL suitable for tests.
func NewTestResolver(crypto quote.CryptoSource, nav quote.NAVSource) *quote.Resolver {
	return quote.NewResolver(quote.NewCache(time.Minute), crypto, nav)
}

// NewTestFundService creates a FundService backed by a mock NAV source.
func NewTestFundService(t *testing.T, db *sql.DB, nav quote.NAVSource) *service.FundService {
	t.Helper()

	fundRepo := repository.NewFundRepository(db)
	resolver := NewTestResolver(NewMockCryptoSource(), nav)

	return service.NewFundService(fundRepo, resolver)
}

// NewTestCryptoService creates a CryptoService backed by a mock price source.
func NewTestCryptoService(t *testing.T, db *sql.DB, crypto quote.CryptoSource) *service.CryptoService {
	t.Helper()

	cryptoRepo := repository.NewCryptoRepository(db)
	resolver := NewTestResolver(crypto, NewMockNAVSource())

	return service.NewCryptoService(cryptoRepo, resolver)
}

// NewTestExpenseService creates an ExpenseService over the test database.
func NewTestExpenseService(t *testing.T, db *sql.DB) *service.ExpenseService {
	t.Helper()
	return service.NewExpenseService(repository.NewExpenseRepository(db))
}

// NewTestCategoryService creates a CategoryService over the test database.
func NewTestCategoryService(t *testing.T, db *sql.DB) *service.CategoryService {
	t.Helper()
	return service.NewCategoryService(repository.NewCategoryRepository(db))
}

// NewTestProfileService creates a ProfileService over the test database.
func NewTestProfileService(t *testing.T, db *sql.DB) *service.ProfileService {
	t.Helper()
	return service.NewProfileService(repository.NewProfileRepository(db))
}

// NewTestDashboardService creates a DashboardService with mock quote sources.
func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	fundService := NewTestFundService(t, db, NewMockNAVSource())
	cryptoService := NewTestCryptoService(t, db, NewMockCryptoSource())

	return service.NewDashboardService(
		fundService,
		cryptoService,
		repository.NewExpenseRepository(db),
		repository.NewProfileRepository(db),
	)
}

// fernetKey is a fixed base64url-encoded 32-byte key for test encryptors.
const fernetKey = "AQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQE="

// NewTestWalletService creates a WalletService over mock balance and price
// sources, using environment credentials so no stored pair is needed.
func NewTestWalletService(t *testing.T, db *sql.DB, balances quote.BalanceSource, crypto quote.CryptoSource) *service.WalletService {
	t.Helper()

	encryptor, err := secrets.NewEncryptor(fernetKey)
	if err != nil {
		t.Fatalf("Failed to create encryptor: %v", err)
	}

	cryptoRepo := repository.NewCryptoRepository(db)
	resolver := NewTestResolver(crypto, NewMockNAVSource())

	return service.NewWalletService(
		cryptoRepo,
		repository.NewCredentialRepository(db),
		service.NewCryptoService(cryptoRepo, resolver),
		resolver,
		balances,
		encryptor,
		"test-key",
		"test-secret",
	)
}

// NewTestStatsService creates a StatsService over the test database.
func NewTestStatsService(t *testing.T, db *sql.DB) *service.StatsService {
	t.Helper()

	return service.NewStatsService(
		repository.NewExpenseRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewProfileRepository(db),
	)
}
