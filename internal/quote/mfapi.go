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

const mfapiBaseURL = "https://api.mfapi.in"

// MFAPIClient fetches mutual fund NAVs from the public mfapi.in service.
type MFAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMFAPIClient creates an mfapi.in client with the given per-request timeout.
func NewMFAPIClient(timeout time.Duration) *MFAPIClient {
	return &MFAPIClient{
		baseURL:    mfapiBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the API base URL. Used by tests to point the client
// at a local fake server.
func (c *MFAPIClient) WithBaseURL(baseURL string) *MFAPIClient {
	c.baseURL = baseURL
	return c
}

// navResponse is the mfapi.in scheme payload. The newest NAV record is the
// first element of data; the NAV itself is a decimal string.
type navResponse struct {
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
}

// LatestNAV fetches the most recent NAV for a scheme code. A missing NAV
// payload element or a missing/zero NAV field fails with ErrQuoteUnavailable.
func (c *MFAPIClient) LatestNAV(schemeCode string) (float64, error) {
	endpoint := fmt.Sprintf("%s/mf/%s", c.baseURL, url.PathEscape(schemeCode))

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return 0, fmt.Errorf("%w: scheme %s: %v", apperrors.ErrQuoteUnavailable, schemeCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: scheme %s: status %d", apperrors.ErrQuoteUnavailable, schemeCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: scheme %s: %v", apperrors.ErrQuoteUnavailable, schemeCode, err)
	}

	var payload navResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("%w: scheme %s: %v", apperrors.ErrQuoteUnavailable, schemeCode, err)
	}

	if len(payload.Data) == 0 {
		return 0, fmt.Errorf("%w: scheme %s: no NAV data", apperrors.ErrQuoteUnavailable, schemeCode)
	}

	nav, err := strconv.ParseFloat(payload.Data[0].NAV, 64)
	if err != nil || nav == 0 {
		return 0, fmt.Errorf("%w: scheme %s: invalid NAV %q", apperrors.ErrQuoteUnavailable, schemeCode, payload.Data[0].NAV)
	}

	return nav, nil
}
