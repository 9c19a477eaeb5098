// Package macro fetches current macroeconomic conditions from the
// external data provider. The provider is optional: every caller must
// tolerate its absence.
package macro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmoura/advisor/internal/domain"
)

// Client is an HTTP client for the macro-data provider with a cached
// last-known-good snapshot
type Client struct {
	baseURL string
	client  *http.Client
	ttl     time.Duration
	log     zerolog.Logger

	mu     sync.RWMutex
	cached *domain.MacroSnapshot
}

// NewClient creates a macro-data client. An empty baseURL disables the
// provider entirely; callers then run in baseline-only mode.
func NewClient(baseURL string, timeout, ttl time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		ttl: ttl,
		log: log.With().Str("client", "macro").Logger(),
	}
}

// conditionsResponse is the provider's wire shape
type conditionsResponse struct {
	SelicAnnual float64 `json:"selic_annual"`
	IPCAAnnual  float64 `json:"ipca_annual"`
}

// CurrentConditions returns the freshest available snapshot. Serves from
// cache while within TTL, otherwise fetches with at most one retry.
// Failure returns ErrMacroUnavailable; it never blocks recommendation
// generation.
func (c *Client) CurrentConditions(ctx context.Context) (*domain.MacroSnapshot, error) {
	if c.baseURL == "" {
		return nil, domain.ErrMacroUnavailable
	}

	c.mu.RLock()
	cached := c.cached
	c.mu.RUnlock()

	if cached != nil && time.Since(cached.FetchedAt) < c.ttl {
		return cached, nil
	}

	snapshot, err := c.fetch(ctx)
	if err != nil {
		// One retry before giving up
		snapshot, err = c.fetch(ctx)
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("Macro conditions unavailable")
		if cached != nil {
			// Stale cache beats no data
			return cached, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMacroUnavailable, err)
	}

	c.mu.Lock()
	c.cached = snapshot
	c.mu.Unlock()

	return snapshot, nil
}

// Refresh forces a fetch and updates the cache
func (c *Client) Refresh(ctx context.Context) error {
	if c.baseURL == "" {
		return domain.ErrMacroUnavailable
	}

	snapshot, err := c.fetch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMacroUnavailable, err)
	}

	c.mu.Lock()
	c.cached = snapshot
	c.mu.Unlock()

	c.log.Debug().
		Float64("selic", snapshot.SelicAnnual).
		Float64("ipca", snapshot.IPCAAnnual).
		Msg("Macro snapshot refreshed")

	return nil
}

func (c *Client) fetch(ctx context.Context) (*domain.MacroSnapshot, error) {
	url := c.baseURL + "/api/v1/conditions"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch conditions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("conditions endpoint returned status %d", resp.StatusCode)
	}

	var body conditionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode conditions: %w", err)
	}

	return &domain.MacroSnapshot{
		SelicAnnual: body.SelicAnnual,
		IPCAAnnual:  body.IPCAAnnual,
		FetchedAt:   time.Now(),
	}, nil
}
