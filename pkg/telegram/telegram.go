// Package telegram is a minimal Telegram Bot API client used to push
// order notifications to a staff chat.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the bot credentials and destination chat.
type Config struct {
	// BaseURL of the Bot API, normally https://api.telegram.org.
	// Overridable so tests can point at a local stub.
	BaseURL string
	Token   string
	ChatID  string
}

// Client sends messages through the Telegram Bot API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Telegram client. The HTTP timeout bounds a single
// sendMessage call; there is no retry.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send pushes a single HTML-formatted message to the configured chat.
// A non-2xx response is an error; the response body is included so the
// caller can log the Bot API's reason.
func (c *Client) Send(ctx context.Context, text string) error {
	payload := sendMessageRequest{
		ChatID:    c.cfg.ChatID,
		Text:      text,
		ParseMode: "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.cfg.BaseURL, c.cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
