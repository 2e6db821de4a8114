package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

// domainsSettingsPath is the settings endpoint serving equivalent domains.
const domainsSettingsPath = "/api/settings/domains"

// domainsResponse is the wire shape of GET /api/settings/domains.
type domainsResponse struct {
	EquivalentDomains       [][]string           `json:"equivalentDomains"`
	GlobalEquivalentDomains []globalDomainsEntry `json:"globalEquivalentDomains"`
}

type globalDomainsEntry struct {
	Type     int      `json:"type"`
	Domains  []string `json:"domains"`
	Excluded bool     `json:"excluded"`
}

type equivalentDomainsClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewEquivalentDomainsClient constructs an HTTP implementation of
// [EquivalentDomainsFetcher] targeting baseURL.
//
// Returns an error if baseURL is empty or cannot be parsed as a URL with
// scheme and host.
func NewEquivalentDomainsClient(baseURL string, timeout time.Duration, log *logger.Logger) (EquivalentDomainsFetcher, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid equivalent domains url: %w", err)
	}

	return &equivalentDomainsClient{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchEquivalentDomains implements [EquivalentDomainsFetcher]. It issues
// GET /api/settings/domains with the account id in the X-Account-ID header.
func (c *equivalentDomainsClient) FetchEquivalentDomains(ctx context.Context, accountID string) ([]models.EquivalentDomainsGroup, error) {
	var body domainsResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Account-ID", accountID).
		SetResult(&body).
		Get(domainsSettingsPath)
	if err != nil {
		return nil, fmt.Errorf("equivalent domains request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	groups := make([]models.EquivalentDomainsGroup, 0, len(body.EquivalentDomains)+len(body.GlobalEquivalentDomains))
	for _, domains := range body.EquivalentDomains {
		groups = append(groups, models.EquivalentDomainsGroup{
			AccountID: accountID,
			Domains:   domains,
		})
	}
	for _, global := range body.GlobalEquivalentDomains {
		groups = append(groups, models.EquivalentDomainsGroup{
			AccountID: accountID,
			Domains:   global.Domains,
			Excluded:  global.Excluded,
			Global:    true,
		})
	}

	c.logger.Debug().
		Str("func", "equivalentDomainsClient.FetchEquivalentDomains").
		Str("account_id", accountID).
		Int("groups", len(groups)).
		Msg("fetched equivalent domains")

	return groups, nil
}
