package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

// HTTPClient is the Client implementation over the gym service REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for the service at baseURL. tokens may be
// nil for an unauthenticated client; requests then carry no Authorization
// header.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host are required", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.doJSON(ctx, http.MethodPost, "/sessions", body, &session); err != nil {
		return nil, err
	}
	if session.User.ID == "" || session.Token == "" {
		return nil, fmt.Errorf("sign in: incomplete session in response")
	}
	return &session, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/users", body, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/users", upd, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) UploadAvatar(ctx context.Context, ref device.FileRef) (string, error) {
	file, err := os.Open(ref.Path)
	if err != nil {
		return "", fmt.Errorf("open avatar file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="avatar"; filename=%q`, ref.Name))
	header.Set("Content-Type", ref.MIME)

	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy avatar content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, "/users/avatar", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp struct {
		Avatar string `json:"avatar"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Avatar, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request and decodes a success body into out (skipped when
// out is nil or the body is empty). Error responses whose JSON body carries
// a "message" field become *DomainError; everything else is a plain error.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode >= 400 {
		if derr := decodeDomainError(resp.StatusCode, data); derr != nil {
			c.log.Debug(req.Context(), "service rejected request",
				"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
			return derr
		}
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// decodeDomainError returns a *DomainError when body matches the service's
// error contract ({"message": "..."}), nil otherwise.
func decodeDomainError(status int, body []byte) *DomainError {
	var shape struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &shape); err != nil || shape.Message == "" {
		return nil
	}
	return &DomainError{Status: status, Message: shape.Message}
}
