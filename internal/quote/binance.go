package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fintrack/internal/apperrors"
)

const binanceBaseURL = "https://api.binance.com"

// BinanceClient fetches crypto spot prices and signed account balances from
// the Binance REST API. The HTTP client enforces a bounded wait on every
// call so a hung endpoint cannot block sibling refreshes indefinitely.
type BinanceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBinanceClient creates a Binance client with the given per-request timeout.
func NewBinanceClient(timeout time.Duration) *BinanceClient {
	return &BinanceClient{
		baseURL:    binanceBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a local fake server.
func (c *BinanceClient) WithBaseURL(baseURL string) *BinanceClient {
	c.baseURL = baseURL
	return c
}

// tickerResponse is the /api/v3/ticker/price payload. Binance encodes the
// price as a decimal string.
type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// SpotPrice fetches the current spot price for a trading pair such as
// "BTCUSDT". Network errors, non-2xx responses, and unparsable bodies all
// surface as ErrQuoteUnavailable.
func (c *BinanceClient) SpotPrice(symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.baseURL, url.QueryEscape(symbol))

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrQuoteUnavailable, symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %s: status %d", apperrors.ErrQuoteUnavailable, symbol, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrQuoteUnavailable, symbol, err)
	}

	var ticker tickerResponse
	if err := json.Unmarshal(body, &ticker); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrQuoteUnavailable, symbol, err)
	}

	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil || price <= 0 {
		return 0, fmt.Errorf("%w: %s: invalid price %q", apperrors.ErrQuoteUnavailable, symbol, ticker.Price)
	}

	return price, nil
}
