// Package client is a thin REST client for the matchboard API. It attaches
// the session's bearer token when present, treats 204 as an empty success,
// and surfaces non-2xx response bodies as error messages. It never retries
// or de-duplicates requests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	authModel "github.com/ashevelyov/matchboard/internal/auth/model"
	"github.com/ashevelyov/matchboard/internal/match/model"
)

// Session is where the client reads its bearer token and stores login
// results. Satisfied by the session store.
type Session interface {
	Token() string
	SetSession(token string, user authModel.PublicUser) error
}

// APIError carries a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client speaks the matchboard REST API.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
}

// New creates a client for the API at baseURL. session may be nil for
// anonymous use.
func New(baseURL string, session Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
}

// do issues one request and decodes a 2xx JSON body into out (skipped when
// out is nil or the response is 204).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListMatches returns all matches.
func (c *Client) ListMatches(ctx context.Context) ([]model.Match, error) {
	var matches []model.Match
	if err := c.do(ctx, http.MethodGet, "/matches", nil, &matches); err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []model.Match{}
	}
	return matches, nil
}

// GetMatch returns one match by id.
func (c *Client) GetMatch(ctx context.Context, id string) (*model.Match, error) {
	var match model.Match
	if err := c.do(ctx, http.MethodGet, "/matches/"+id, nil, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// CreateMatch creates a match and returns the stored record.
func (c *Client) CreateMatch(ctx context.Context, req *model.UpsertMatchRequest) (*model.Match, error) {
	var match model.Match
	if err := c.do(ctx, http.MethodPost, "/matches", req, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// UpdateMatch replaces a match and returns the stored record.
func (c *Client) UpdateMatch(ctx context.Context, id string, req *model.UpsertMatchRequest) (*model.Match, error) {
	var match model.Match
	if err := c.do(ctx, http.MethodPut, "/matches/"+id, req, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// DeleteMatch removes a match.
func (c *Client) DeleteMatch(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/matches/"+id, nil, nil)
}

// SetLive flags a match live.
func (c *Client) SetLive(ctx context.Context, id string) (*model.Match, error) {
	var match model.Match
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/matches/%s/live", id), nil, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// Schedule returns the selected day bucket with resolved display state.
func (c *Client) Schedule(ctx context.Context, day int) (*model.ScheduleResponse, error) {
	var resp model.ScheduleResponse
	path := fmt.Sprintf("/schedule?day=%d", day)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and stores the token and user into the session.
func (c *Client) Login(ctx context.Context, email, password string) (*authModel.LoginResponse, error) {
	body := authModel.LoginRequest{Email: email, Password: password}
	var resp authModel.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}

	if c.session != nil {
		if err := c.session.SetSession(resp.Token, resp.User); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) (*authModel.PublicUser, error) {
	body := authModel.RegisterRequest{Email: email, Password: password}
	var user authModel.PublicUser
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me returns the fresh account record behind the session's token.
func (c *Client) Me(ctx context.Context) (*authModel.PublicUser, error) {
	var user authModel.PublicUser
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
