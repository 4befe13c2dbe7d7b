package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a mutual fund with the given ID does not exist.
	ErrFundNotFound = errors.New("mutual fund not found")

	// ErrHoldingNotFound indicates that a crypto holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("crypto holding not found")

	// ErrExpenseNotFound indicates that an expense with the given ID does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrCategoryNotFound indicates that a category with the given ID does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCredentialNotFound indicates no exchange API credentials are stored.
	ErrCredentialNotFound = errors.New("exchange credentials not found")
)

// External quote errors represent failures at the market-data boundary.
var (
	// ErrQuoteUnavailable indicates that an external price/NAV source was
	// unreachable, timed out, or returned a malformed response. Recoverable:
	// callers fall back to the last stored quote (or zero on first creation).
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrCredentialsMissing indicates that the exchange API key or secret is
	// not configured. Configuration error, never retried automatically.
	ErrCredentialsMissing = errors.New("exchange API credentials not configured")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidInstallment indicates a SIP installment with a non-positive
	// amount or purchase NAV.
	ErrInvalidInstallment = errors.New("installment amount and purchase NAV must be positive")

	// ErrDuplicateCategory indicates that a category with the same name already exists.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrAllocationMismatch indicates that profile allocations do not sum to
	// the monthly salary.
	ErrAllocationMismatch = errors.New("allocations must sum to monthly salary")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Authentication errors.
var (
	// ErrInvalidPIN indicates that the supplied PIN does not match the configured one.
	ErrInvalidPIN = errors.New("invalid PIN")

	// ErrLockedOut indicates too many failed PIN attempts; the caller must wait.
	ErrLockedOut = errors.New("too many attempts")

	// ErrInvalidToken indicates a missing, malformed, or expired bearer token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. Used as user-facing messages on 500 responses.
var (
	ErrFailedToRetrieveFunds    = errors.New("failed to retrieve mutual funds")
	ErrFailedToRetrieveHoldings = errors.New("failed to retrieve crypto holdings")
	ErrFailedToRetrieveExpenses = errors.New("failed to retrieve expenses")
	ErrFailedToGetDashboard     = errors.New("failed to compute dashboard statistics")
	ErrFailedToGetStats         = errors.New("failed to compute expense statistics")
	ErrFailedToSyncBalances     = errors.New("failed to sync exchange balances")
)
