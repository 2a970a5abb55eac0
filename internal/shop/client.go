package shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cardsync/internal/model"
)

// ErrAuth means the platform rejected the API token.
var ErrAuth = errors.New("shop: credential rejected")

var defaultHTTPClient = &http.Client{Timeout: 60 * time.Second}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{BaseURL: baseURL, Token: token, HTTP: defaultHTTPClient}
}

// GetProducts fetches the full catalog, following the cursor chain until the
// platform stops returning a next page. A catalog with zero products yields
// an empty slice.
func (c *Client) GetProducts(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	cursor := ""

	for {
		page, err := c.fetchPage(ctx, cursor)
		if err != nil {
			return nil, err
		}

		products = append(products, page.Products...)

		cursor = page.Pagination.NextPageCursor
		if cursor == "" {
			break
		}
	}

	return products, nil
}

func (c *Client) fetchPage(ctx context.Context, cursor string) (*productsResponse, error) {
	reqURL := c.BaseURL + "/products"
	if cursor != "" {
		reqURL += "?cursor=" + url.QueryEscape(cursor)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("shop: build request for %s: %w", reqURL, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shop: fetch %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("shop: status %d: %w", resp.StatusCode, ErrAuth)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shop: status %d for %s", resp.StatusCode, reqURL)
	}

	var page productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("shop: decode response from %s: %w", reqURL, err)
	}

	return &page, nil
}
