// Package koyebcheck validates Koyeb API tokens. A token is considered
// alive when the list-apps endpoint accepts it; the listing itself is
// discarded. This is the lightest authenticated call the API offers.
package koyebcheck

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fnosnas/koyeb-keepalive/pkg/check"
)

const (
	// DefaultBaseURL is the production Koyeb API.
	DefaultBaseURL = "https://app.koyeb.com"

	// DefaultTimeout bounds a single validation request.
	DefaultTimeout = 30 * time.Second

	appsPath        = "/v1/apps"
	userAgentPrefix = "koyeb-keepalive/"

	// DefaultVersion is reported when no build version was threaded in.
	DefaultVersion = "dev"
)

// Check validates one account's API token.
type Check struct {
	AccountName string        // display label for the result
	Token       string        // bearer token; empty yields a SKIP result
	BaseURL     string        // API base URL (default: DefaultBaseURL)
	Timeout     time.Duration // request timeout (default: DefaultTimeout)
	Client      HTTPClient    // injected for testing
	Version     string        // User-Agent version (default: DefaultVersion)
}

// Run executes the token validation. Exactly one request is issued; there
// is no retry, so transient failures surface as FAIL results.
func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name: "account: " + c.AccountName,
	}

	if strings.TrimSpace(c.Token) == "" {
		return result.Skip("token not configured")
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := c.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout}
	}
	version := c.Version
	if version == "" {
		version = DefaultVersion
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, baseURL+appsPath, http.NoBody)
	if err != nil {
		return result.Failf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgentPrefix+version)

	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return result.Fail("request timed out", err)
		}
		return result.Failf("request failed: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result.Status = check.StatusOK
		result.AddDetailf("token accepted (status %d)", resp.StatusCode)
		return result
	}

	// The raw status line is kept verbatim so the operator can tell an
	// expired token (401) from a server-side fault (5xx).
	return result.Failf("token rejected: %s", resp.Status)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
