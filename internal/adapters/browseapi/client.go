package browseapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/ports"
)

// BrowsePath is the listing endpoint on the filearr server
const BrowsePath = "/api/browse"

// maxBodyBytes bounds how much of a listing response is read
const maxBodyBytes = 8 << 20

// Client implements ports.DirectoryLister over the filearr HTTP API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
}

// Verify interface compliance at compile time
var _ ports.DirectoryLister = (*Client)(nil)

// browseResponse mirrors the JSON returned by GET /api/browse
type browseResponse struct {
	CurrentPath string   `json:"current_path"`
	Detail      any      `json:"detail"` // FastAPI-style validation failures
	Directories []string `json:"directories"`
	Error       string   `json:"error"`
	Files       []string `json:"files"`
	ParentPath  *string  `json:"parent_path"`
}

// NewClient creates a client for the listing service at baseURL.
// A zero timeout leaves requests unbounded; they still stop when their context is cancelled.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		timeout:    timeout,
	}, nil
}

// BrowseURL builds the request URL for path
func (c *Client) BrowseURL(path string) string {
	u := *c.baseURL
	u.Path = u.Path + BrowsePath
	// Spaces as %20, like encodeURIComponent; a literal '+' is already %2B
	u.RawQuery = strings.ReplaceAll(url.Values{"path": []string{path}}.Encode(), "+", "%20")
	return u.String()
}

// Browse implements ports.DirectoryLister
func (c *Client) Browse(ctx context.Context, path string) (*domain.DirectoryListing, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestURL := c.BrowseURL(path)
	logging.Logger.Debug("Requesting directory listing", "path", path, "url", requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("Listing request failed", "path", path, "error", err)
		return nil, fmt.Errorf("listing request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read listing response: %w", err)
	}

	var decoded browseResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		logging.Logger.Warn("Malformed listing response",
			"path", path,
			"status", resp.StatusCode,
			"error", err)
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return nil, fmt.Errorf("malformed listing response: %w", err)
	}

	listing := &domain.DirectoryListing{
		CurrentPath: decoded.CurrentPath,
		Directories: decoded.Directories,
		Error:       decoded.Error,
		Files:       decoded.Files,
		ParentPath:  decoded.ParentPath,
	}

	if listing.Error != "" {
		logging.Logger.Info("Listing service reported an error",
			"path", path,
			"status", resp.StatusCode,
			"message", listing.Error)
		return listing, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// No "error" field means success, whatever the status, as long as the body is a listing
		if decoded.isListing() {
			logging.Logger.Warn("Listing returned with non-2xx status",
				"path", path,
				"status", resp.StatusCode)
			return listing, nil
		}
		if detail := detailMessage(decoded.Detail); detail != "" {
			return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, detail)
		}
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	logging.Logger.Debug("Directory listing received",
		"path", path,
		"directories", len(listing.Directories),
		"duration", time.Since(start))

	return listing, nil
}

// isListing reports whether the body carries any listing field
func (r browseResponse) isListing() bool {
	return r.Directories != nil || r.ParentPath != nil || r.CurrentPath != ""
}

// detailMessage extracts a readable message from a FastAPI "detail" field,
// which is either a string or a list of validation errors with "msg" fields
func detailMessage(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case []any:
		var msgs []string
		for _, item := range d {
			if m, ok := item.(map[string]any); ok {
				if msg, ok := m["msg"].(string); ok {
					msgs = append(msgs, msg)
				}
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
