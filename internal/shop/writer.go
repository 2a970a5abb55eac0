package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"cardsync/internal/model"
)

// FormatAmount renders a price the way the platform expects it on the wire:
// a plain decimal string with exactly two places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type Writer struct {
	BaseURL  string
	Token    string
	Currency string
	HTTP     *http.Client
}

func NewWriter(baseURL, token, currency string) *Writer {
	return &Writer{BaseURL: baseURL, Token: token, Currency: currency, HTTP: defaultHTTPClient}
}

// UpdateVariantPrice posts the new amount for one variant. A non-success
// response is returned as an error carrying the response body; the caller
// decides whether that is fatal (it is not, for the sync loop).
func (w *Writer) UpdateVariantPrice(ctx context.Context, productID, variantID string, amount float64) error {
	payload := variantUpdateRequest{
		Pricing: model.Pricing{
			BasePrice: model.Money{Value: FormatAmount(amount), Currency: w.Currency},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("shop: marshal update for %s/%s: %w", productID, variantID, err)
	}

	reqURL := fmt.Sprintf("%s/products/%s/variants/%s", w.BaseURL, productID, variantID)
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("shop: build update for %s: %w", reqURL, err)
	}
	req.Header.Set("Authorization", "Bearer "+w.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("shop: update %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("shop: update %s/%s rejected with status %d: %s", productID, variantID, resp.StatusCode, respBody)
	}

	return nil
}
