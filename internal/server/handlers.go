package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/GalacticGeckoSpaceGarage/gecko-sales-bot/pkg/event"
)

// requireAuth gates a handler behind the shared secret: the Authorization
// header must equal the configured token exactly. No scheme parsing; the
// provider echoes the header back verbatim.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != s.authToken {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		next(w, r)
	}
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Solana Action Bot is running!"))
}

// origin returns the externally visible base URL of this deployment,
// preferring the configured public URL over what the request reports.
func (s *Server) origin(r *http.Request) string {
	if s.publicURL != "" {
		return s.publicURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

type createWebhookResponse struct {
	Success    bool            `json:"success"`
	Webhook    json.RawMessage `json:"webhook"`
	WebhookURL string          `json:"webhookURL"`
}

func (s *Server) handleCreateWebhook(w http.ResponseWriter, r *http.Request) {
	webhookURL := s.origin(r) + "/webhook"
	s.log.Info("setting up webhook", "url", webhookURL, "addresses", s.lookup.Len())

	raw, err := s.registrar.CreateWebhook(r.Context(), webhookURL, s.lookup.Mints())
	if err != nil {
		s.log.Error("webhook registration failed", "err", err)
		http.Error(w, "Failed to create webhook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createWebhookResponse{
		Success:    true,
		Webhook:    raw,
		WebhookURL: webhookURL,
	})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Error processing webhook", http.StatusBadRequest)
		return
	}

	var txs []event.Transaction
	if err := json.Unmarshal(body, &txs); err != nil {
		if !json.Valid(body) {
			s.log.Error("error parsing webhook data", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Error processing webhook"))
			return
		}
		// Valid JSON that is not a transaction array is a benign no-op.
		txs = nil
	}

	if len(txs) == 0 {
		s.log.Info("no transactions in webhook data")
		w.Write([]byte("No transactions to process"))
		return
	}

	s.proc.ProcessBatch(r.Context(), txs)
	w.Write([]byte("Webhook processed"))
}
