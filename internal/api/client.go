package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/internal/models"
)

// productsPerPage matches the page size the storefront has always requested.
const productsPerPage = 50

// defaultRetryDelays is the backoff schedule for network errors and 5xx
// responses. 4xx responses are never retried.
var defaultRetryDelays = []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

// Client talks to the public catalog/order API.
type Client struct {
	baseURL     string
	brand       string
	http        *http.Client
	retryDelays []time.Duration
}

func NewClient(baseURL, brand string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		brand:       brand,
		http:        &http.Client{Timeout: timeout},
		retryDelays: defaultRetryDelays,
	}
}

// Stores lists the stores for a country.
func (c *Client) Stores(ctx context.Context, countryCode string) ([]models.Store, error) {
	query := url.Values{}
	query.Set("country_code", countryCode)
	query.Set("brand", c.brand)

	var resp models.StoresResponse
	if err := c.get(ctx, "/public/stores/", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Store fetches a single store.
func (c *Client) Store(ctx context.Context, id int) (*models.Store, error) {
	var store models.Store
	if err := c.get(ctx, "/public/stores/"+strconv.Itoa(id), nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// DeliveryZones lists the delivery zones served by a store.
func (c *Client) DeliveryZones(ctx context.Context, storeID int) ([]models.DeliveryZone, error) {
	path := fmt.Sprintf("/public/stores/%d/delivery-zones", storeID)

	var resp models.DeliveryZonesResponse
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.DeliveryZones, nil
}

// Products lists a store's catalog.
func (c *Client) Products(ctx context.Context, storeID int) ([]models.Product, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(productsPerPage))
	query.Set("store_id", strconv.Itoa(storeID))

	var resp models.ProductsResponse
	if err := c.get(ctx, "/public/products/", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Supplements fetches the bread/fries/sauce options.
func (c *Client) Supplements(ctx context.Context) (*models.SupplementsResponse, error) {
	var resp models.SupplementsResponse
	if err := c.get(ctx, "/public/supplements/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateOrder submits an order. The idempotency key travels as a header so a
// retried submission is recognized server-side as the same logical order.
// Retries within this call reuse the same key.
func (c *Client) CreateOrder(ctx context.Context, payload models.OrderPayload, idempotencyKey string) (*models.OrderResponse, error) {
	var resp models.OrderResponse
	err := c.do(ctx, http.MethodPost, "/public/orders/", nil, payload, idempotencyKey, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any, idempotencyKey string, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= len(c.retryDelays); attempt++ {
		if attempt > 0 {
			log.Printf("[API] retrying %s %s (attempt %d): %v", method, path, attempt+1, lastErr)
			select {
			case <-time.After(c.retryDelays[attempt-1]):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retry, err := c.attempt(ctx, method, target, body, idempotencyKey, out)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// attempt runs one HTTP exchange. The bool result reports whether the error
// is retryable (no response, or a 5xx).
func (c *Client) attempt(ctx context.Context, method, target string, body []byte, idempotencyKey string, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return true, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode, Message: messageFrom(raw)}
		return resp.StatusCode >= 500, apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return false, fmt.Errorf("decode response: %w", err)
		}
	}
	return false, nil
}
