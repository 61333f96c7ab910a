package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramChannel delivers notifications through the Bot API sendMessage
// method. The link preview is pointed at the NFT image and forced above the
// text so the chat renders the sale picture first.
type TelegramChannel struct {
	baseURL    string
	botToken   string
	chatID     string
	httpClient *http.Client
}

type telegramMessage struct {
	ChatID             string              `json:"chat_id"`
	Text               string              `json:"text"`
	ParseMode          string              `json:"parse_mode"`
	LinkPreviewOptions telegramLinkPreview `json:"link_preview_options"`
}

type telegramLinkPreview struct {
	URL           string `json:"url"`
	ShowAboveText bool   `json:"show_above_text"`
}

// NewTelegramChannel creates a channel for the given bot token and target chat.
func NewTelegramChannel(botToken, chatID string) *TelegramChannel {
	return &TelegramChannel{
		baseURL:  telegramAPIBase,
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (t *TelegramChannel) Name() string { return "telegram" }

func (t *TelegramChannel) Send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(telegramMessage{
		ChatID:    t.chatID,
		Text:      n.Message,
		ParseMode: "Markdown",
		LinkPreviewOptions: telegramLinkPreview{
			URL:           n.ImageURL,
			ShowAboveText: true,
		},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram sendMessage: status %d", resp.StatusCode)
	}
	return nil
}

func (t *TelegramChannel) Close() error { return nil }
