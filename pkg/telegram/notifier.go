// Package telegram delivers run summaries through the Telegram Bot API.
// Delivery is best-effort: callers log a failed Send and move on, since
// there is no secondary channel to escalate to.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production Bot API.
	DefaultBaseURL = "https://api.telegram.org"

	// DefaultTimeout bounds a single sendMessage request.
	DefaultTimeout = 30 * time.Second
)

// ErrNotConfigured is returned by Send when the bot token or chat id is
// missing. Callers normally guard with Configured instead.
var ErrNotConfigured = errors.New("telegram: bot token or chat id not configured")

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout time.Duration
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := &http.Client{Timeout: c.Timeout}
	return client.Do(req)
}

// Notifier sends messages to one chat through one bot.
type Notifier struct {
	BotToken string
	ChatID   string
	BaseURL  string        // Bot API base URL (default: DefaultBaseURL)
	Timeout  time.Duration // request timeout (default: DefaultTimeout)
	Client   HTTPClient    // injected for testing
}

// Configured returns true when both the bot token and the chat id are set.
func (n *Notifier) Configured() bool {
	return n.BotToken != "" && n.ChatID != ""
}

// Send delivers one Markdown-formatted message.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if !n.Configured() {
		return ErrNotConfigured
	}

	baseURL := n.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := n.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := n.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout}
	}

	form := url.Values{
		"chat_id":    {n.ChatID},
		"text":       {text},
		"parse_mode": {"Markdown"},
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := baseURL + "/bot" + n.BotToken + "/sendMessage"
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("telegram: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: request failed: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram: API returned %s", resp.Status)
	}
	return nil
}
