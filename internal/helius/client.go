package helius

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.helius.xyz"

// Config holds configuration for the Helius client.
type Config struct {
	APIKey    string `mapstructure:"api_key"`
	AuthToken string `mapstructure:"auth_token"`
	BaseURL   string `mapstructure:"base_url"`
}

// Client talks to the Helius webhook-management API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient initializes a new Helius client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// webhookRequest is the subscription body sent to the webhook-management
// endpoint. AuthHeader is echoed back by Helius on every delivery, which is
// how inbound payloads are authenticated.
type webhookRequest struct {
	WebhookURL       string   `json:"webhookURL"`
	TransactionTypes []string `json:"transactionTypes"`
	AccountAddresses []string `json:"accountAddresses"`
	WebhookType      string   `json:"webhookType"`
	AuthHeader       string   `json:"authHeader"`
}

// CreateWebhook registers (or re-registers) an enhanced webhook subscription
// for the given addresses, pointed at callbackURL. The raw provider response
// body is returned unmodified; the status code is not validated. One attempt,
// no retries.
func (c *Client) CreateWebhook(ctx context.Context, callbackURL string, addresses []string) (json.RawMessage, error) {
	body, err := json.Marshal(webhookRequest{
		WebhookURL:       callbackURL,
		TransactionTypes: []string{"NFT_SALE", "SWAP"},
		AccountAddresses: addresses,
		WebhookType:      "enhanced",
		AuthHeader:       c.cfg.AuthToken,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v0/webhooks?api-key=%s", c.cfg.BaseURL, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("helius webhook request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
