package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client defines the interface for the upstream catalog/store service.
//
// Lookup operations report upstream absence (404 or an empty body) as a
// nil result with a nil error so callers can skip the unit of work and
// continue, per the sync error model.
type Client interface {
	// GetProducts lists the shop's published products with nested variants.
	GetProducts(ctx context.Context) ([]Product, error)
	// GetBlueprint fetches a blueprint's eligible provider list.
	GetBlueprint(ctx context.Context, blueprintID int) (*Blueprint, error)
	// GetBlueprintVariants fetches the live variant catalog for a
	// (blueprint, provider) pair.
	GetBlueprintVariants(ctx context.Context, blueprintID, providerID int) (*CatalogSnapshot, error)
	// UpdateProduct applies an update payload to a store product.
	UpdateProduct(ctx context.Context, productID string, payload UpdatePayload) error
}

// NewClient creates a new Printify API client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("printify token is required")
	}
	if cfg.ShopID == "" {
		return nil, fmt.Errorf("printify shop_id is required")
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		baseURL: strings.TrimSuffix(cfg.Endpoint, "/"),
		token:   cfg.Token,
		shopID:  cfg.ShopID,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

type httpClient struct {
	baseURL string
	token   string
	shopID  string
	http    *http.Client
}

func (c *httpClient) GetProducts(ctx context.Context) ([]Product, error) {
	path := fmt.Sprintf("/v1/shops/%s/products.json", c.shopID)

	// The shop products endpoint wraps the list in a data envelope.
	var envelope struct {
		Data []Product `json:"data"`
	}
	found, err := c.getJSON(ctx, path, &envelope)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return envelope.Data, nil
}

func (c *httpClient) GetBlueprint(ctx context.Context, blueprintID int) (*Blueprint, error) {
	path := fmt.Sprintf("/v1/catalog/blueprints/%d/print_providers.json", blueprintID)

	var providers []Provider
	found, err := c.getJSON(ctx, path, &providers)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &Blueprint{ID: blueprintID, Providers: providers}, nil
}

func (c *httpClient) GetBlueprintVariants(ctx context.Context, blueprintID, providerID int) (*CatalogSnapshot, error) {
	path := fmt.Sprintf("/v1/catalog/blueprints/%d/print_providers/%d/variants.json", blueprintID, providerID)

	var body struct {
		Variants []CatalogVariant `json:"variants"`
	}
	found, err := c.getJSON(ctx, path, &body)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &CatalogSnapshot{
		BlueprintID:     blueprintID,
		PrintProviderID: providerID,
		Variants:        body.Variants,
	}, nil
}

func (c *httpClient) UpdateProduct(ctx context.Context, productID string, payload UpdatePayload) error {
	path := fmt.Sprintf("/v1/shops/%s/products/%s.json", c.shopID, productID)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode update payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("update request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("update rejected with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// getJSON performs an authenticated GET and decodes the response into out.
// It returns found=false (without error) when the resource is absent.
func (c *httpClient) getJSON(ctx context.Context, path string, out any) (found bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return true, nil
}
