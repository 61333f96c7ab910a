package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const xAPIBase = "https://api.twitter.com"

// XChannel publishes sale announcements as posts on X. It is shipped disabled
// in the default configuration; the credentials stay in config so enabling it
// is a configuration change, not a code change.
//
// Flow: obtain an app-only bearer token via the OAuth2 client-credentials
// grant, fetch the sale image into memory, then publish a post with the
// bearer token.
type XChannel struct {
	baseURL    string
	appKey     string
	appSecret  string
	httpClient *http.Client
}

// NewXChannel creates a channel for the given app key/secret pair.
func NewXChannel(appKey, appSecret string) *XChannel {
	return &XChannel{
		baseURL:   xAPIBase,
		appKey:    appKey,
		appSecret: appSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (x *XChannel) Name() string { return "x" }

func (x *XChannel) Send(ctx context.Context, n Notification) error {
	token, err := x.fetchToken(ctx)
	if err != nil {
		return fmt.Errorf("x token: %w", err)
	}

	media, err := FetchMedia(ctx, x.httpClient, n.ImageURL)
	if err != nil {
		return fmt.Errorf("x media: %w", err)
	}

	return x.createPost(ctx, token, n.Message, media)
}

// fetchToken performs the OAuth2 client-credentials grant, basic-authed with
// the app key/secret pair.
func (x *XChannel) fetchToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		x.baseURL+"/2/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(x.appKey, x.appSecret)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}
	return body.AccessToken, nil
}

func (x *XChannel) createPost(ctx context.Context, token, message string, media *Media) error {
	body, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		x.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	// TODO: attach the fetched media once the post endpoint accepts app-only
	// media uploads; media.MimeType is already resolved for that call.
	_ = media

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("x post: status %d", resp.StatusCode)
	}
	return nil
}

func (x *XChannel) Close() error { return nil }
