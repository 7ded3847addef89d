package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apppartner "github.com/stockroom/backend/internal/application/partner"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/infrastructure/config"
)

// Client fetches the country directory from the REST Countries API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a REST Countries client from configuration.
func NewClient(cfg config.CountriesConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// NewClientWithHTTPClient creates a client over an existing http.Client.
// Useful for testing.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// countryResponse mirrors the fields requested from the API. The display
// name comes from the Portuguese translation, falling back to the official
// common name when the translation is missing.
type countryResponse struct {
	Cca2 string `json:"cca2"`
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Translations struct {
		Por struct {
			Common string `json:"common"`
		} `json:"por"`
	} `json:"translations"`
}

// FetchAll retrieves every country, deduplicated by name and code.
func (c *Client) FetchAll(ctx context.Context) ([]partner.Country, error) {
	url := c.baseURL + "/all?fields=name,cca2,translations"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building country request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country provider returned status %d", resp.StatusCode)
	}

	var payload []countryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding country response: %w", err)
	}

	if len(payload) == 0 {
		return nil, fmt.Errorf("country provider returned an empty list")
	}

	seenNames := make(map[string]struct{}, len(payload))
	seenCodes := make(map[string]struct{}, len(payload))
	result := make([]partner.Country, 0, len(payload))

	for _, entry := range payload {
		name := entry.Translations.Por.Common
		if name == "" {
			name = entry.Name.Common
		}
		if name == "" || entry.Cca2 == "" {
			c.logger.Debug("skipping country with missing fields", zap.String("code", entry.Cca2))
			continue
		}
		if _, dup := seenNames[name]; dup {
			continue
		}
		if _, dup := seenCodes[entry.Cca2]; dup {
			continue
		}
		seenNames[name] = struct{}{}
		seenCodes[entry.Cca2] = struct{}{}

		result = append(result, partner.Country{Name: name, Code: entry.Cca2})
	}

	c.logger.Info("fetched country directory", zap.Int("count", len(result)))
	return result, nil
}

var _ apppartner.CountryProvider = (*Client)(nil)
