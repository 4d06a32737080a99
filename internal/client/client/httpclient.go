package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/client/models"
	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
}

// envelope mirrors the server's response body.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type tokenData struct {
	Token string `json:"token"`
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server address %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/healthz", nil, nil)
	return err
}

func (c *HTTPClient) SignUp(ctx context.Context, req models.SignUp) (string, error) {
	var out tokenData
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (string, error) {
	req := map[string]string{"email": email, "password": password}
	var out tokenData
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/signin", req, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
	return err
}

// ListGadgets returns the server's display lines and, for an empty result,
// its explanatory message.
func (c *HTTPClient) ListGadgets(ctx context.Context, status string) ([]string, string, error) {
	path := "/api/gadgets"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []string
	msg, err := c.do(ctx, http.MethodGet, path, nil, &out)
	if err != nil {
		return nil, "", err
	}
	return out, msg, nil
}

func (c *HTTPClient) GetGadget(ctx context.Context, id string) (*models.Gadget, error) {
	var out models.Gadget
	if _, err := c.do(ctx, http.MethodGet, "/api/gadgets/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateGadget(ctx context.Context, name string) (*models.Gadget, error) {
	var body any
	if name != "" {
		body = map[string]string{"name": name}
	}
	var out models.Gadget
	if _, err := c.do(ctx, http.MethodPost, "/api/gadgets", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateGadget(ctx context.Context, id, name, status string) (*models.Gadget, error) {
	req := map[string]string{"id": id}
	if name != "" {
		req["name"] = name
	}
	if status != "" {
		req["status"] = status
	}
	var out models.Gadget
	if _, err := c.do(ctx, http.MethodPatch, "/api/gadgets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DecommissionGadget(ctx context.Context, id string) (*models.Gadget, error) {
	var out models.Gadget
	if _, err := c.do(ctx, http.MethodDelete, "/api/gadgets", map[string]string{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SelfDestructGadget(ctx context.Context, id string) (*models.SelfDestructResult, error) {
	var out models.SelfDestructResult
	if _, err := c.do(ctx, http.MethodPost, "/api/gadgets/"+url.PathEscape(id)+"/self-destruct", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends body as JSON, decodes the envelope and, on success, its data into
// out. It returns the envelope message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) (string, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", mapTransportError(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", &APIError{StatusCode: resp.StatusCode}
		}
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return "", &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decoding response data: %w", err)
		}
	}
	return env.Message, nil
}

func mapTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
