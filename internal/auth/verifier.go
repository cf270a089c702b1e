// Package auth resolves bearer tokens against the hosted auth
// provider. This service designs no authentication of its own; it only
// asks the external provider who the token belongs to and compares the
// email claim against the configured administrator address.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orangeot/backoffice-api/internal/config"
)

// ErrUnauthorized is returned when the provider rejects the token
var ErrUnauthorized = errors.New("unauthorized")

// User is the subset of the provider's user record this service needs
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier resolves a bearer token to a user identity
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

// HTTPVerifier calls the provider's user endpoint with the token
type HTTPVerifier struct {
	url     string
	apiKey  string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPVerifier creates a verifier from the admin configuration
func NewHTTPVerifier(cfg config.AdminConfig, client *http.Client) *HTTPVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPVerifier{
		url:     cfg.AuthURL,
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		client:  client,
	}
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		req.Header.Set("apikey", v.apiKey)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to read auth response: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("malformed auth response: %w", err)
	}
	if user.Email == "" {
		return nil, ErrUnauthorized
	}

	return &user, nil
}
