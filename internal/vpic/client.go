package vpic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches extended vehicle attributes from a vPIC-compatible decode
// endpoint. It implements vin.ExtendedSource.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Fetch decodes code via GET {base}/vehicles/DecodeVinValues/{code}. A VIN
// the service does not know comes back as an empty map with no error;
// whether to retry is the caller's call.
func (c *Client) Fetch(ctx context.Context, code string) (map[string]string, error) {
	target := fmt.Sprintf("%s/vehicles/DecodeVinValues/%s?format=json", c.Base, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("decode-vin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return map[string]string{}, nil
	}
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("decode-vin status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	// Flat format: one Results element holding every attribute as a string.
	var payload struct {
		Count   int                 `json:"Count"`
		Results []map[string]string `json:"Results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload.Count == 0 || len(payload.Results) == 0 {
		return map[string]string{}, nil
	}

	attrs := make(map[string]string, len(payload.Results[0]))
	for k, val := range payload.Results[0] {
		if val != "" {
			attrs[k] = val
		}
	}
	return attrs, nil
}
