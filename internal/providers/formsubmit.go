package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/orangeot/backoffice-api/internal/careers"
	"github.com/orangeot/backoffice-api/internal/config"
)

// FormRelay delivers a message to a mail-relay endpoint. Two body
// shapes exist: "multipart" mimics a browser-native form post and
// succeeds on HTTP 2xx; "json" posts an ajax body and additionally
// requires a truthy success field in the response.
type FormRelay struct {
	name    string
	url     string
	format  string
	timeout time.Duration
	client  *http.Client
}

// NewFormRelay creates a relay from its configuration
func NewFormRelay(cfg config.RelayConfig, client *http.Client) *FormRelay {
	if client == nil {
		client = http.DefaultClient
	}
	format := cfg.Format
	if format == "" {
		format = "multipart"
	}
	return &FormRelay{
		name:    cfg.Name,
		url:     cfg.URL,
		format:  format,
		timeout: cfg.Timeout,
		client:  client,
	}
}

func (r *FormRelay) Name() string {
	return r.name
}

func (r *FormRelay) Send(ctx context.Context, msg careers.Message) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	switch r.format {
	case "json":
		return r.sendJSON(ctx, msg)
	default:
		return r.sendMultipart(ctx, msg)
	}
}

// controlFields are the relay instructions sent alongside the form
// fields: subject line, template choice, captcha opt-out, optional cc.
func controlFields(msg careers.Message) map[string]string {
	fields := map[string]string{
		"_subject": msg.Subject,
		"_captcha": "false",
		"message":  msg.Body,
	}
	if msg.Template != "" {
		fields["_template"] = msg.Template
	}
	if msg.CC != "" {
		fields["_cc"] = msg.CC
	}
	return fields
}

func (r *FormRelay) sendMultipart(ctx context.Context, msg careers.Message) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range msg.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %q: %w", key, err)
		}
	}
	for key, value := range controlFields(msg) {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, &buf)
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay rejected with status %d", resp.StatusCode)
	}

	return nil
}

func (r *FormRelay) sendJSON(ctx context.Context, msg careers.Message) error {
	payload := make(map[string]string, len(msg.Fields)+4)
	for key, value := range msg.Fields {
		payload[key] = value
	}
	for key, value := range controlFields(msg) {
		payload[key] = value
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal relay body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay rejected with status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read relay response: %w", err)
	}

	// The ajax endpoint reports success as the string "true"; accept a
	// boolean as well.
	var result struct {
		Success any `json:"success"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("malformed relay response: %w", err)
	}

	switch v := result.Success.(type) {
	case bool:
		if v {
			return nil
		}
	case string:
		if v == "true" {
			return nil
		}
	}

	return fmt.Errorf("relay response reported failure")
}
