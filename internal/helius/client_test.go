package helius

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateWebhook(t *testing.T) {
	var got webhookRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/webhooks", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"webhookID":"abc123"}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", AuthToken: "secret", BaseURL: ts.URL})
	raw, err := c.CreateWebhook(context.Background(), "https://bot.example/webhook", []string{"M1", "M2"})
	assert.NoError(t, err)

	assert.Equal(t, "https://bot.example/webhook", got.WebhookURL)
	assert.Equal(t, []string{"NFT_SALE", "SWAP"}, got.TransactionTypes)
	assert.Equal(t, []string{"M1", "M2"}, got.AccountAddresses)
	assert.Equal(t, "enhanced", got.WebhookType)
	assert.Equal(t, "secret", got.AuthHeader)

	// Raw provider body passes through unmodified.
	assert.JSONEq(t, `{"webhookID":"abc123"}`, string(raw))
}

func TestCreateWebhook_NoStatusValidation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "bad", BaseURL: ts.URL})
	raw, err := c.CreateWebhook(context.Background(), "https://bot.example/webhook", nil)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"error":"invalid api key"}`, string(raw))
}

func TestCreateWebhook_NetworkError(t *testing.T) {
	c := NewClient(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	_, err := c.CreateWebhook(context.Background(), "https://bot.example/webhook", nil)
	assert.Error(t, err)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient(Config{APIKey: "k"})
	assert.Equal(t, defaultBaseURL, c.cfg.BaseURL)
}
