package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/errors"
	"taskboard/internal/logging"
)

const defaultTimeout = 30 * time.Second

// Client implements the Repository interface over HTTP
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

// New creates a new API client. tokens may be nil for a client that only
// performs unauthenticated calls.
func New(baseURL string, tokens TokenSource) *Client {
	return NewWithTimeout(baseURL, tokens, defaultTimeout)
}

// NewWithTimeout creates a new API client with an explicit request timeout
func NewWithTimeout(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a token and user profile
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, false, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{Username: username, Email: email, Password: password}, false, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile fetches the authenticated user's profile
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodGet, "/users/profile", nil, true, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user's profile
func (c *Client) UpdateProfile(ctx context.Context, payload ProfilePayload) (*User, error) {
	var user User
	err := c.do(ctx, http.MethodPut, "/users/profile", payload, true, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches all users, for assignment selection
func (c *Client) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := c.do(ctx, http.MethodGet, "/users", nil, true, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListTasks fetches all tasks visible to the authenticated user.
// Order is server-determined; callers may only rely on
// most-recently-returned-first for recency-based slicing.
func (c *Client) ListTasks(ctx context.Context) ([]*Task, error) {
	var tasks []*Task
	err := c.do(ctx, http.MethodGet, "/tasks", nil, true, &tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches a single task by id
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, "/tasks/"+id, nil, true, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task
func (c *Client) CreateTask(ctx context.Context, payload TaskPayload) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/tasks", payload, true, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates an existing task
func (c *Client) UpdateTask(ctx context.Context, id string, payload TaskPayload) (*Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+id, payload, true, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task by id. The server returns an acknowledgment
// only; callers must drop the task from any collection they hold.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, true, nil)
}

// GetStats fetches the server-computed dashboard aggregate
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := c.do(ctx, http.MethodGet, "/tasks/stats", nil, true, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// do builds, sends and decodes a single API request. Authenticated
// requests read the token source at call time, never a stored copy.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, authenticated bool, out interface{}) error {
	operation := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.NewNetworkError(operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated {
		token, ok := c.token()
		if !ok {
			return errors.NewUnauthorizedError(operation)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logging.Debugf("rest: %s\n", operation)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapStatusError(operation, path, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewNetworkError(operation, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// token reads the current bearer token from the token source
func (c *Client) token() (string, bool) {
	if c.tokens == nil {
		return "", false
	}
	return c.tokens.Token()
}

// mapStatusError converts a non-2xx response into a structured app error
func (c *Client) mapStatusError(operation, path string, resp *http.Response) error {
	message := serverMessage(resp)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errors.NewUnauthorizedError(operation)
	case http.StatusNotFound:
		return errors.NewNotFoundError("resource", path)
	case http.StatusBadRequest:
		return errors.NewValidationError(message, nil)
	default:
		return errors.NewServerError(operation, resp.StatusCode, message)
	}
}

// serverMessage extracts the API's error message from a failure response
func serverMessage(resp *http.Response) string {
	var payload errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return resp.Status
}
