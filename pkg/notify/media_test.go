package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchMedia(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	defer ts.Close()

	m, err := FetchMedia(context.Background(), ts.Client(), ts.URL)
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), m.Data)
	assert.Equal(t, "image/jpeg", m.MimeType)
}

func TestFetchMedia_NoContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Suppress Go's content sniffing so the header stays empty.
		w.Header()["Content-Type"] = nil
		w.Write([]byte{0x00, 0x01})
	}))
	defer ts.Close()

	m, err := FetchMedia(context.Background(), ts.Client(), ts.URL)
	assert.NoError(t, err)
	assert.Equal(t, MimeUnknown, m.MimeType)
}

func TestFetchMedia_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := FetchMedia(context.Background(), ts.Client(), ts.URL)
	assert.Error(t, err)
}
