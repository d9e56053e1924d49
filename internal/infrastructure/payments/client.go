// Package payments talks to the external payment reconciliation function.
package payments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/antoniolaudieri/rimborsami/internal/logger"
)

var (
	// ErrUnexpectedStatus is returned when the function answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status from payment sync")
	// ErrNotConfigured is returned when no sync endpoint is set.
	ErrNotConfigured = errors.New("payment sync endpoint not configured")
)

const maxLoggedBody = 4096

// Client invokes the reconciliation function on behalf of a signed-in user.
// The function mutates the user's subscriptions row as a side effect; its
// response body is logged and otherwise ignored.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Sync asks the payment provider to reconcile the caller's subscription.
func (c *Client) Sync(ctx context.Context, token string) error {
	if c == nil || c.endpoint == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader("{}"))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call payment sync: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	logger.DebugContext(ctx, "payment sync response",
		slog.Int("status", resp.StatusCode),
		slog.String("body", strings.TrimSpace(string(body))),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return nil
}
