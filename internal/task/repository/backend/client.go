package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"life-admin/internal/model"
	"life-admin/internal/task"
)

// Client is the HTTP wrapper for the record store REST API.
// It holds a single session token; a 401 response clears it.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a new record store HTTP client. accessToken may be empty
// when the session is started later with Login.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      accessToken,
	}
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ListRecords fetches every record of the session's user via GET /tasks.
func (c *Client) ListRecords(ctx context.Context) ([]model.Record, error) {
	var records []model.Record
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &records); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return records, nil
}

// CreateRecord creates a record via POST /tasks.
func (c *Client) CreateRecord(ctx context.Context, input model.RecordInput) (model.Record, error) {
	var record model.Record
	if err := c.do(ctx, http.MethodPost, "/tasks", input, &record); err != nil {
		return model.Record{}, fmt.Errorf("create: %w", err)
	}
	return record, nil
}

// UpdateRecord replaces a record via PUT /tasks/{id}.
func (c *Client) UpdateRecord(ctx context.Context, id string, input model.RecordInput) (model.Record, error) {
	var record model.Record
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, input, &record); err != nil {
		return model.Record{}, fmt.Errorf("update %s: %w", id, err)
	}
	return record, nil
}

// DeleteRecord deletes a record via DELETE /tasks/{id}.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}

// Login exchanges credentials for a bearer token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, req CredentialsRequest) error {
	var resp TokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("login: empty access token in response")
	}
	c.setToken(resp.AccessToken)
	return nil
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, req CredentialsRequest) error {
	if err := c.do(ctx, http.MethodPost, "/signup", req, nil); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call record store: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.setToken("")
		return task.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return task.ErrTaskNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("record store error %d: %s", resp.StatusCode, errorDetail(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorDetail extracts {"detail": "..."} from an error body, falling back to the raw text.
func errorDetail(raw []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return strings.TrimSpace(string(raw))
}

// ---- Request/Response types scoped to this package ----

// CredentialsRequest is the body for POST /signup and POST /login.
type CredentialsRequest struct {
	UserEmail string `json:"useremail"`
	Password  string `json:"password"`
}

// TokenResponse is returned by POST /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the error body of the record store.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
