package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// MakeID generates a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// FundBuilder provides a fluent interface for creating test mutual funds.
//
// Example usage:
//
//	fund := testutil.NewFund().
//	    WithName("Index Fund").
//	    WithInvested(1500, 125).
//	    WithNAV(14).
//	    Build(t, db)
type FundBuilder struct {
	ID             string
	FundName       string
	SchemeCode     string
	InvestedAmount float64
	Units          float64
	CurrentNAV     float64
	ExpectedValue  float64
	PurchaseDate   time.Time
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		ID:             MakeID(),
		FundName:       "Test Fund",
		SchemeCode:     "120503",
		InvestedAmount: 1000,
		Units:          100,
		CurrentNAV:     10,
		PurchaseDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithName sets a custom fund name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.FundName = name
	return b
}

// WithSchemeCode sets a custom scheme code.
func (b *FundBuilder) WithSchemeCode(code string) *FundBuilder {
	b.SchemeCode = code
	return b
}

// WithInvested sets the invested amount and units.
func (b *FundBuilder) WithInvested(amount, units float64) *FundBuilder {
	b.InvestedAmount = amount
	b.Units = units
	return b
}

// WithNAV sets the stored current NAV.
func (b *FundBuilder) WithNAV(nav float64) *FundBuilder {
	b.CurrentNAV = nav
	return b
}

// Build creates the fund in the database and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.MutualFund {
	t.Helper()

	now := time.Now().UTC()
	fund := model.MutualFund{
		ID:             b.ID,
		FundName:       b.FundName,
		SchemeCode:     b.SchemeCode,
		InvestedAmount: b.InvestedAmount,
		Units:          b.Units,
		CurrentNAV:     b.CurrentNAV,
		ExpectedValue:  b.ExpectedValue,
		PurchaseDate:   b.PurchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repository.NewFundRepository(db).CreateFund(&fund); err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	return fund
}

// HoldingBuilder provides a fluent interface for creating test crypto holdings.
type HoldingBuilder struct {
	ID             string
	TokenSymbol    string
	TokenName      string
	Quantity       float64
	InvestedAmount float64
	Network        string
	WalletAddress  string
	CurrentPrice   float64
	PurchaseDate   time.Time
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:             MakeID(),
		TokenSymbol:    "BTC",
		TokenName:      "Bitcoin",
		Quantity:       0.5,
		InvestedAmount: 20000,
		Network:        "Ethereum",
		CurrentPrice:   50000,
		PurchaseDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithSymbol sets the token symbol and name.
func (b *HoldingBuilder) WithSymbol(symbol, name string) *HoldingBuilder {
	b.TokenSymbol = symbol
	b.TokenName = name
	return b
}

// WithQuantity sets the quantity.
func (b *HoldingBuilder) WithQuantity(quantity float64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithInvested sets the invested amount.
func (b *HoldingBuilder) WithInvested(amount float64) *HoldingBuilder {
	b.InvestedAmount = amount
	return b
}

// WithPrice sets the stored current price.
func (b *HoldingBuilder) WithPrice(price float64) *HoldingBuilder {
	b.CurrentPrice = price
	return b
}

// WithNetwork sets the network.
func (b *HoldingBuilder) WithNetwork(network string) *HoldingBuilder {
	b.Network = network
	return b
}

// WithWallet sets the wallet address.
func (b *HoldingBuilder) WithWallet(address string) *HoldingBuilder {
	b.WalletAddress = address
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.CryptoHolding {
	t.Helper()

	now := time.Now().UTC()
	holding := model.CryptoHolding{
		ID:             b.ID,
		TokenSymbol:    b.TokenSymbol,
		TokenName:      b.TokenName,
		Quantity:       b.Quantity,
		InvestedAmount: b.InvestedAmount,
		Network:        b.Network,
		WalletAddress:  b.WalletAddress,
		CurrentPrice:   b.CurrentPrice,
		PurchaseDate:   b.PurchaseDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repository.NewCryptoRepository(db).CreateHolding(&holding); err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return holding
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
type ExpenseBuilder struct {
	ID       string
	Category string
	Amount   float64
	Note     string
	Date     time.Time
}

// NewExpense creates an ExpenseBuilder with sensible defaults.
func NewExpense() *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:       MakeID(),
		Category: "Food",
		Amount:   100,
		Date:     time.Now().UTC(),
	}
}

// WithCategory sets the category.
func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	b.Category = category
	return b
}

// WithAmount sets the amount.
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.Amount = amount
	return b
}

// WithDate sets the expense date.
func (b *ExpenseBuilder) WithDate(date time.Time) *ExpenseBuilder {
	b.Date = date
	return b
}

// Build creates the expense in the database and returns it.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	now := time.Now().UTC()
	expense := model.Expense{
		ID:        b.ID,
		Category:  b.Category,
		Amount:    b.Amount,
		Note:      b.Note,
		Date:      b.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repository.NewExpenseRepository(db).CreateExpense(&expense); err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return expense
}

// CreateCategory creates a category with the given name and limit.
func CreateCategory(t *testing.T, db *sql.DB, name string, limit float64) model.Category {
	t.Helper()

	now := time.Now().UTC()
	category := model.Category{
		ID:           MakeID(),
		Name:         name,
		MonthlyLimit: limit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repository.NewCategoryRepository(db).CreateCategory(&category); err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return category
}
