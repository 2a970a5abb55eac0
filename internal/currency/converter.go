package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

var defaultHTTPClient = &http.Client{Timeout: 60 * time.Second}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Converter translates amounts between currencies using a JSON rates
// endpoint. With a Redis client attached, rates are cached for TTL so a run
// over hundreds of cards hits the rates API once.
type Converter struct {
	RatesURL string
	Cache    *redis.Client
	TTL      time.Duration
	HTTP     *http.Client
}

func NewConverter(ratesURL string, cache *redis.Client) *Converter {
	return &Converter{
		RatesURL: ratesURL,
		Cache:    cache,
		TTL:      time.Hour,
		HTTP:     defaultHTTPClient,
	}
}

// Convert returns amount expressed in the to currency. An unobtainable rate
// is an error; the caller treats it like a missing reference price.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	rate, err := c.rate(ctx, from, to)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

func (c *Converter) rate(ctx context.Context, from, to string) (float64, error) {
	key := "cardsync:rate:" + from + ":" + to

	if c.Cache != nil {
		if v, err := c.Cache.Get(ctx, key).Float64(); err == nil {
			return v, nil
		}
	}

	reqURL := fmt.Sprintf("%s/%s", c.RatesURL, from)
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("currency: build request for %s: %w", reqURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("currency: fetch rates for %s: %w", from, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("currency: rates API status %d for %s", resp.StatusCode, from)
	}

	var rates ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return 0, fmt.Errorf("currency: decode rates for %s: %w", from, err)
	}

	rate, ok := rates.Rates[to]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("currency: no rate from %s to %s", from, to)
	}

	if c.Cache != nil {
		if err := c.Cache.Set(ctx, key, rate, c.TTL).Err(); err != nil {
			log.Printf("[Currency] cache write failed: %v", err)
		}
	}

	return rate, nil
}
