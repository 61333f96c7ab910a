package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXChannel_Send(t *testing.T) {
	var tokenAuthed, posted bool
	var postBody map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("/2/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "app-key", user)
		assert.Equal(t, "app-secret", pass)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		tokenAuthed = true
		json.NewEncoder(w).Encode(map[string]string{"access_token": "BEARER123"})
	})
	mux.HandleFunc("/media.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("img"))
	})
	mux.HandleFunc("/2/tweets", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer BEARER123", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&postBody))
		posted = true
		w.WriteHeader(http.StatusCreated)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	ch := NewXChannel("app-key", "app-secret")
	ch.baseURL = ts.URL

	err := ch.Send(context.Background(), Notification{
		Message:  "sold",
		ImageURL: ts.URL + "/media.jpg",
	})
	assert.NoError(t, err)
	assert.True(t, tokenAuthed)
	assert.True(t, posted)
	assert.Equal(t, "sold", postBody["text"])
}

func TestXChannel_TokenFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	ch := NewXChannel("k", "s")
	ch.baseURL = ts.URL

	err := ch.Send(context.Background(), Notification{Message: "m", ImageURL: ts.URL + "/img"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "x token")
}

func TestXChannel_Name(t *testing.T) {
	assert.Equal(t, "x", NewXChannel("", "").Name())
}
