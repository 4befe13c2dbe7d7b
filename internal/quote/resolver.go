package quote

import "strings"

// USDT is the quote currency appended to a base asset to form the trading
// pair sent to the exchange.
const quoteSuffix = "USDT"

// stablecoins always resolve to a constant quote of 1 without a network
// call. The allow-list is fixed; the key space is user-controlled and small.
var stablecoins = map[string]bool{
	"USDT":  true,
	"BUSD":  true,
	"USDC":  true,
	"TUSD":  true,
	"USDP":  true,
	"DAI":   true,
	"FDUSD": true,
}

// IsStablecoin reports whether the asset is on the fixed $1 allow-list.
func IsStablecoin(asset string) bool {
	return stablecoins[strings.ToUpper(asset)]
}

// CryptoSource fetches a spot price for a trading pair.
type CryptoSource interface {
	SpotPrice(symbol string) (float64, error)
}

// NAVSource fetches the latest NAV for a mutual fund scheme.
type NAVSource interface {
	LatestNAV(schemeCode string) (float64, error)
}

// BalanceSource fetches signed spot account balances.
type BalanceSource interface {
	SpotBalances(apiKey, secret string) ([]SpotBalance, error)
}

// Resolver is the single entry point for quote lookups. It returns a cached
// value when unexpired, otherwise calls the matching source, stores the
// result, and returns it. Source failures propagate as typed errors without
// touching the cache; the caller decides the fallback.
type Resolver struct {
	cache  *Cache
	crypto CryptoSource
	nav    NAVSource
}

// NewResolver creates a Resolver over the shared cache and quote sources.
func NewResolver(cache *Cache, crypto CryptoSource, nav NAVSource) *Resolver {
	return &Resolver{
		cache:  cache,
		crypto: crypto,
		nav:    nav,
	}
}

// CryptoPrice resolves the USDT spot price for a base asset such as "BTC".
// Stablecoins short-circuit to 1 before the cache or the network.
func (r *Resolver) CryptoPrice(base string) (float64, error) {
	base = strings.ToUpper(base)
	if IsStablecoin(base) {
		return 1, nil
	}
	return r.resolve("crypto:"+base, func() (float64, error) {
		return r.crypto.SpotPrice(base + quoteSuffix)
	})
}

// FundNAV resolves the latest NAV for a mutual fund scheme code.
func (r *Resolver) FundNAV(schemeCode string) (float64, error) {
	return r.resolve("mf:"+schemeCode, func() (float64, error) {
		return r.nav.LatestNAV(schemeCode)
	})
}

func (r *Resolver) resolve(key string, fetch func() (float64, error)) (float64, error) {
	if value, ok := r.cache.Get(key); ok {
		return value, nil
	}

	value, err := fetch()
	if err != nil {
		return 0, err
	}

	r.cache.Set(key, value)
	return value, nil
}
