// Package api is the HTTP transport of the LifeLog CLI. Every call is a
// single request: no retries, no caching, no deduplication.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

// APIError is a non-2xx answer. Message is the server's message field, or
// the status text when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets callers match API errors against the common sentinels.
func (e *APIError) Is(target error) bool {
	switch e.Status {
	case http.StatusUnauthorized:
		return target == common.ErrorUnauthorized
	case http.StatusNotFound:
		return target == common.ErrorNotFound
	case http.StatusConflict:
		return target == common.ErrAlreadyExists
	case http.StatusBadRequest:
		return target == common.ErrValidation
	case http.StatusRequestEntityTooLarge:
		return target == common.ErrPayloadTooLarge
	}
	return false
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}

// Client talks to one server. The access token is injected into every
// request once set.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(serverURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/") + "/api",
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.doRequest(req, out)
}

// FilePart is the file half of a multipart upload.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Body        io.Reader
}

// Upload sends one multipart request holding the file and, under
// metaField, the JSON encoding of meta.
func (c *Client) Upload(ctx context.Context, path string, file FilePart, metaField string, meta, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := mw.WriteField(metaField, string(metaJSON)); err != nil {
		return err
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
	h.Set("Content-Type", file.ContentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file.Body); err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.doRequest(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return req, nil
}

func (c *Client) doRequest(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e models.ErrorResponse
		if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&e); err == nil && e.Message != "" {
			apiErr.Message = e.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
