package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MimeUnknown is the sentinel used when the media server sends no
// Content-Type header.
const MimeUnknown = "unknown"

// Media holds remote media bytes fetched for attachment to a post.
type Media struct {
	Data     []byte
	MimeType string
}

// FetchMedia downloads arbitrary remote bytes into memory together with the
// MIME type reported by the server. No size cap is applied.
func FetchMedia(ctx context.Context, client *http.Client, url string) (*Media, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch media %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = MimeUnknown
	}
	return &Media{Data: data, MimeType: mimeType}, nil
}
