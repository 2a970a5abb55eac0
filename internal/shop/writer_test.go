package shop

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12.5, "12.50"},
		{12, "12.00"},
		{0.1, "0.10"},
		{1234.567, "1234.57"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUpdateVariantPrice_SendsTwoDecimalString(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	writer := NewWriter(srv.URL, "secret", "BRL")
	if err := writer.UpdateVariantPrice(context.Background(), "p1", "v1", 12.5); err != nil {
		t.Fatalf("UpdateVariantPrice: %v", err)
	}

	if gotMethod != "POST" {
		t.Errorf("method = %q", gotMethod)
	}
	if gotPath != "/products/p1/variants/v1" {
		t.Errorf("path = %q", gotPath)
	}

	var payload struct {
		Pricing struct {
			BasePrice struct {
				Value    string `json:"value"`
				Currency string `json:"currency"`
			} `json:"basePrice"`
		} `json:"pricing"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("body %s: %v", gotBody, err)
	}
	if payload.Pricing.BasePrice.Value != "12.50" {
		t.Errorf("value = %q, want \"12.50\"", payload.Pricing.BasePrice.Value)
	}
	if payload.Pricing.BasePrice.Currency != "BRL" {
		t.Errorf("currency = %q", payload.Pricing.BasePrice.Currency)
	}
}

func TestUpdateVariantPrice_RejectionCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"INVALID_REQUEST_ERROR","message":"price out of range"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	writer := NewWriter(srv.URL, "secret", "BRL")
	err := writer.UpdateVariantPrice(context.Background(), "p1", "v1", 9.99)
	if err == nil {
		t.Fatal("expected error on 400")
	}
	if !strings.Contains(err.Error(), "price out of range") {
		t.Errorf("error %q does not carry the response body", err)
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error %q does not carry the status", err)
	}
}
