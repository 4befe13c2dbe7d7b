package quote

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/apperrors"
)

// SpotBalance is one asset's balance on the exchange spot account.
type SpotBalance struct {
	Asset  string
	Free   float64
	Locked float64
}

// Total returns the combined free and locked amount.
func (b SpotBalance) Total() float64 {
	return b.Free + b.Locked
}

// accountResponse is the /api/v3/account payload. Binance reports API-level
// errors as a negative code inside an otherwise-200 JSON body.
type accountResponse struct {
	Code     int    `json:"code"`
	Msg      string `json:"msg"`
	Balances []struct {
		Asset  string `json:"asset"`
		Free   string `json:"free"`
		Locked string `json:"locked"`
	} `json:"balances"`
}

// SpotBalances fetches the account's non-zero spot balances using a signed
// request: the query string (including a millisecond timestamp) is signed
// with HMAC-SHA256 and the signature appended as a query parameter, with the
// API key sent in the X-MBX-APIKEY header.
//
// Missing credentials fail with ErrCredentialsMissing before any network
// call. API errors, including a negative code in a 200 body, fail with
// ErrQuoteUnavailable.
func (c *BinanceClient) SpotBalances(apiKey, secret string) ([]SpotBalance, error) {
	if apiKey == "" || secret == "" {
		return nil, apperrors.ErrCredentialsMissing
	}

	query := fmt.Sprintf("timestamp=%d", time.Now().UnixMilli())
	endpoint := fmt.Sprintf("%s/api/v3/account?%s&signature=%s", c.baseURL, query, signQuery(query, secret))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQuoteUnavailable, err)
	}
	req.Header.Set("X-MBX-APIKEY", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQuoteUnavailable, err)
	}

	var account accountResponse
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON from exchange", apperrors.ErrQuoteUnavailable)
	}

	if account.Code < 0 {
		return nil, fmt.Errorf("%w: exchange error %d: %s", apperrors.ErrQuoteUnavailable, account.Code, account.Msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrQuoteUnavailable, resp.StatusCode)
	}

	balances := make([]SpotBalance, 0, len(account.Balances))
	for _, b := range account.Balances {
		free, _ := strconv.ParseFloat(b.Free, 64)
		locked, _ := strconv.ParseFloat(b.Locked, 64)
		if free <= 0 && locked <= 0 {
			continue
		}
		balances = append(balances, SpotBalance{Asset: b.Asset, Free: free, Locked: locked})
	}

	return balances, nil
}

// signQuery computes the hex-encoded HMAC-SHA256 signature of the query
// string with the account secret.
func signQuery(query, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}
