// Package client is a typed consumer of the Kashf REST API. It plays the
// role of the web client's api layer: it attaches the stored bearer token to
// every request and turns error bodies into Go errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kashf-health/kashf/internal/models"
	"github.com/kashf-health/kashf/internal/services"
	"github.com/kashf-health/kashf/pkg/session"
)

// ErrDemoAccount is returned when a booking targets a seeded demo account.
// It is distinct from APIError so callers can explain the rejection.
var ErrDemoAccount = errors.New("cannot book a dummy/test account")

// APIError is a non-2xx response decoded from the {"error": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

type Client struct {
	base    string
	http    *http.Client
	session session.Store
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSession replaces the token store. The default is in-memory.
func WithSession(s session.Store) Option {
	return func(c *Client) { c.session = s }
}

func New(base string, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: session.NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterResult is the user summary from a successful registration.
type RegisterResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) Register(ctx context.Context, email, password, role string) (*RegisterResult, error) {
	var out RegisterResult
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email": email, "password": password, "role": role,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and stores the received token in the session store.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return err
	}
	return c.session.SetToken(out.Token)
}

// Logout forgets the stored session token.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// ProfileInput mirrors the upsert body; nil fields are omitted.
type ProfileInput struct {
	UserID          string   `json:"userId"`
	Name            *string  `json:"name,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	Specialization  *string  `json:"specialization,omitempty"`
	Location        *string  `json:"location,omitempty"`
	PricePerSession *float64 `json:"pricePerSession,omitempty"`
	AvatarURL       *string  `json:"avatarUrl,omitempty"`
}

func (c *Client) UpsertProfile(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodPost, "/api/profiles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context, id string) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchQuery holds directory search parameters; zero values are omitted.
type SearchQuery struct {
	Query          string
	Specialization string
	Location       string
	Role           string
	Page           int
	Limit          int
}

func (c *Client) Search(ctx context.Context, q SearchQuery) (*services.SearchResult, error) {
	vals := url.Values{}
	if q.Query != "" {
		vals.Set("q", q.Query)
	}
	if q.Specialization != "" {
		vals.Set("specialization", q.Specialization)
	}
	if q.Location != "" {
		vals.Set("location", q.Location)
	}
	if q.Role != "" {
		vals.Set("role", q.Role)
	}
	if q.Page > 0 {
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	path := "/api/profiles"
	if len(vals) > 0 {
		path += "?" + vals.Encode()
	}
	var out services.SearchResult
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendMessage(ctx context.Context, fromID, toID, content string) (*models.Message, error) {
	var out models.Message
	err := c.do(ctx, http.MethodPost, "/api/messages", map[string]string{
		"fromId": fromID, "toId": toID, "content": content,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Conversation(ctx context.Context, a, b string) ([]models.Message, error) {
	var out []models.Message
	path := "/api/messages/conversation/" + url.PathEscape(a) + "/" + url.PathEscape(b)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BookAppointment(ctx context.Context, patientID, professionalID string, scheduledAt time.Time) (*models.Appointment, error) {
	var out models.Appointment
	err := c.do(ctx, http.MethodPost, "/api/appointments", map[string]string{
		"patientId":      patientID,
		"professionalId": professionalID,
		"scheduledAt":    scheduledAt.Format(time.RFC3339),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var dummy struct {
			Dummy   bool   `json:"dummy"`
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &dummy) == nil && dummy.Dummy {
			return ErrDemoAccount
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
