// Package messenger pushes answers into an external messaging channel.
// Pushes are best-effort: failures are logged by the dispatcher and never
// reach the request path.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when credential or channel are missing.
var ErrNotConfigured = errors.New("messaging channel not configured")

// Client posts messages to a channel over the provider's HTTP API.
type Client struct {
	apiKey     string
	baseURL    string
	channelID  string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL, channelID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		channelID:  channelID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether pushes can be attempted at all.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.baseURL != "" && c.channelID != ""
}

type pushRequest struct {
	Text string `json:"text"`
}

// Push sends text to the default channel.
func (c *Client) Push(ctx context.Context, text string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(pushRequest{Text: text})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/conversations/%s/message", c.baseURL, c.channelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push rejected with status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
