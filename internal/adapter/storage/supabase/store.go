// Package supabase writes item images to a Supabase Storage bucket over its
// REST API.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config configures the bucket client.
type Config struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
	Timeout    time.Duration
}

// Store is an objectStore backed by Supabase Storage.
type Store struct {
	storageURL string
	serviceKey string
	bucket     string
	http       *http.Client
}

// New creates a Store. BaseURL is the project URL, e.g.
// https://xyz.supabase.co.
func New(cfg Config) (*Store, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("supabase: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("supabase: invalid base URL: %w", err)
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("supabase: service key is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("supabase: bucket is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Store{
		storageURL: base + "/storage/v1",
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		http:       &http.Client{Timeout: timeout},
	}, nil
}

// Put uploads body under key. Existing objects are not overwritten.
func (s *Store) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	urlStr := fmt.Sprintf("%s/object/%s/%s", s.storageURL, s.bucket, escapeKey(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	if size > 0 {
		req.ContentLength = size
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Cache-Control", "3600")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read upload response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return parseError(respBody, resp.StatusCode)
	}
	return nil
}

// PublicURL returns the public object URL of key.
func (s *Store) PublicURL(key string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", s.storageURL, s.bucket, escapeKey(key))
}

// escapeKey escapes each path segment of key and keeps the separators.
func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Error is a failed Storage API call.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase storage: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase storage: %d: %s", e.StatusCode, e.Message)
}

// parseError parses an error response.
func parseError(body []byte, statusCode int) error {
	var errResp struct {
		StatusCode       string `json:"statusCode"`
		Code             string `json:"code"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}

	if err := json.Unmarshal(body, &errResp); err != nil {
		return &Error{StatusCode: statusCode, Message: string(body)}
	}

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" {
		msg = errResp.ErrorDescription
	}
	code := errResp.Code
	if code == "" {
		code = errResp.Error
	}

	return &Error{StatusCode: statusCode, Code: code, Message: msg}
}
