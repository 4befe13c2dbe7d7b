package testutil

import (
	"fmt"
	"sync"

	"fintrack/internal/quote"
)

// MockCryptoSource is a mock implementation of quote.CryptoSource.
// Prices are keyed by the full trading pair, e.g. "BTCUSDT".
type MockCryptoSource struct {
	mu sync.Mutex

	// Prices maps trading pair to the price to return.
	Prices map[string]float64
	// Errors maps trading pair to an error to return instead.
	Errors map[string]error
	// Calls counts SpotPrice invocations per pair.
	Calls map[string]int
}

// NewMockCryptoSource creates an empty crypto source mock.
func NewMockCryptoSource() *MockCryptoSource {
	return &MockCryptoSource{
		Prices: map[string]float64{},
		Errors: map[string]error{},
		Calls:  map[string]int{},
	}
}

// WithPrice registers a price for a trading pair.
func (m *MockCryptoSource) WithPrice(pair string, price float64) *MockCryptoSource {
	m.Prices[pair] = price
	return m
}

// WithError registers an error for a trading pair.
func (m *MockCryptoSource) WithError(pair string, err error) *MockCryptoSource {
	m.Errors[pair] = err
	return m
}

// SpotPrice returns the configured price or error for the pair.
func (m *MockCryptoSource) SpotPrice(symbol string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls[symbol]++
	if err, ok := m.Errors[symbol]; ok {
		return 0, err
	}
	if price, ok := m.Prices[symbol]; ok {
		return price, nil
	}
	// Unconfigured pairs fail like an unknown symbol would upstream, so a
	// stored price is never clobbered with zero by accident.
	return 0, fmt.Errorf("no price configured for %s", symbol)
}

// CallCount reports how many times a pair was fetched.
func (m *MockCryptoSource) CallCount(symbol string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[symbol]
}

// MockNAVSource is a mock implementation of quote.NAVSource, keyed by
// scheme code.
type MockNAVSource struct {
	mu sync.Mutex

	NAVs   map[string]float64
	Errors map[string]error
	Calls  map[string]int
}

// NewMockNAVSource creates an empty NAV source mock.
func NewMockNAVSource() *MockNAVSource {
	return &MockNAVSource{
		NAVs:   map[string]float64{},
		Errors: map[string]error{},
		Calls:  map[string]int{},
	}
}

// WithNAV registers a NAV for a scheme code.
func (m *MockNAVSource) WithNAV(schemeCode string, nav float64) *MockNAVSource {
	m.NAVs[schemeCode] = nav
	return m
}

// WithError registers an error for a scheme code.
func (m *MockNAVSource) WithError(schemeCode string, err error) *MockNAVSource {
	m.Errors[schemeCode] = err
	return m
}

// LatestNAV returns the configured NAV or error for the scheme.
func (m *MockNAVSource) LatestNAV(schemeCode string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls[schemeCode]++
	if err, ok := m.Errors[schemeCode]; ok {
		return 0, err
	}
	if nav, ok := m.NAVs[schemeCode]; ok {
		return nav, nil
	}
	return 0, fmt.Errorf("no NAV configured for scheme %s", schemeCode)
}

// CallCount reports how many times a scheme was fetched.
func (m *MockNAVSource) CallCount(schemeCode string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[schemeCode]
}

// MockBalanceSource is a mock implementation of quote.BalanceSource.
type MockBalanceSource struct {
	Balances []quote.SpotBalance
	Err      error

	// LastAPIKey records the key of the most recent call.
	LastAPIKey string
}

// SpotBalances returns the configured balances or error.
func (m *MockBalanceSource) SpotBalances(apiKey, secret string) ([]quote.SpotBalance, error) {
	m.LastAPIKey = apiKey
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Balances, nil
}
