package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/grana-app/grana_backend/internal/core/domain"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Client fetches exchange rates from an external HTTP provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rate source backed by the provider at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Ensure implementation matches interface
var _ portssvc.RateSource = (*Client)(nil)

// providerResponse is the provider's wire format: a base currency and a map
// of quote currency to rate.
type providerResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRates retrieves the current snapshot from the provider and flattens it
// into directional rates. Each quote yields exactly one pair; inverses are
// not derived here.
func (c *Client) FetchRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("fx provider URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fx provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fx provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fx provider returned status %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode fx provider response: %w", err)
	}
	if payload.Base == "" || len(payload.Rates) == 0 {
		return nil, fmt.Errorf("fx provider returned an empty snapshot")
	}

	dateEffective, err := time.Parse(time.DateOnly, payload.Date)
	if err != nil {
		dateEffective = time.Now().UTC().Truncate(24 * time.Hour)
	}

	now := time.Now()
	rates := make([]domain.ExchangeRate, 0, len(payload.Rates))
	for quote, rate := range payload.Rates {
		if quote == payload.Base || !rate.IsPositive() {
			continue
		}
		rates = append(rates, domain.ExchangeRate{
			ExchangeRateID:   uuid.NewString(),
			FromCurrencyCode: payload.Base,
			ToCurrencyCode:   quote,
			Rate:             rate,
			DateEffective:    dateEffective,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "fx-refresh",
				LastUpdatedAt: now,
				LastUpdatedBy: "fx-refresh",
			},
		})
	}

	return rates, nil
}
