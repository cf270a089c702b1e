package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/orangeot/backoffice-api/internal/careers"
	"github.com/orangeot/backoffice-api/internal/config"
)

// maxResponseBytes caps how much of a provider response is read. The
// expected bodies are a short JSON object or a bare link.
const maxResponseBytes = 64 * 1024

// FileHost uploads a resume to an anonymous file-hosting endpoint as a
// multipart body with a single "file" field. Depending on the
// provider, the response is either JSON {success, link} or a plain
// text body containing the link.
type FileHost struct {
	name    string
	url     string
	mode    string
	timeout time.Duration
	client  *http.Client
}

// NewFileHost creates a provider from its configuration
func NewFileHost(cfg config.ProviderConfig, client *http.Client) *FileHost {
	if client == nil {
		client = http.DefaultClient
	}
	mode := cfg.Response
	if mode == "" {
		mode = "json"
	}
	return &FileHost{
		name:    cfg.Name,
		url:     cfg.URL,
		mode:    mode,
		timeout: cfg.Timeout,
		client:  client,
	}
}

func (f *FileHost) Name() string {
	return f.name
}

func (f *FileHost) Upload(ctx context.Context, resume careers.Resume) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", resume.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(resume.Data); err != nil {
		return "", fmt.Errorf("failed to write file part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload rejected with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	switch f.mode {
	case "text":
		return parseTextLink(body)
	default:
		return parseJSONLink(body)
	}
}

func parseJSONLink(body []byte) (string, error) {
	var payload struct {
		Success bool   `json:"success"`
		Link    string `json:"link"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("malformed upload response: %w", err)
	}
	if !payload.Success || payload.Link == "" {
		return "", fmt.Errorf("upload response reported no link")
	}
	return payload.Link, nil
}

func parseTextLink(body []byte) (string, error) {
	link := strings.TrimSpace(string(body))
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return "", fmt.Errorf("upload response is not a link")
	}
	return link, nil
}
