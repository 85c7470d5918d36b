package console

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

	"go.uber.org/zap"

	"viciolinks/internal/config/configs"
	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
)

// Client is a typed client of the backend REST API. Every call except
// Login carries the stored bearer token. A 401 clears the token store and
// yields ErrUnauthorized; other non-2xx answers yield *APIError and
// network failures *TransportError. Requests are never retried.
type Client struct {
	base   url.URL
	http   *http.Client
	tokens TokenStore
	logger *zap.Logger
}

// NewClient returns a client for cfg.APIURL.
func NewClient(cfg configs.Client, tokens TokenStore, logger *zap.Logger) *Client {
	return &Client{
		base:   cfg.APIURL,
		http:   &http.Client{Timeout: cfg.Timeout},
		tokens: tokens,
		logger: logger,
	}
}

type request struct {
	method string
	path   []string
	query  url.Values
	body   io.Reader
	ctype  string
	// anonymous requests carry no token and do not clear it on 401
	anonymous bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	u := c.base.JoinPath(req.path...)
	u.RawQuery = req.query.Encode()
	op := req.method + " /" + strings.Join(req.path, "/")

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), req.body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.ctype != "" {
		httpReq.Header.Set("Content-Type", req.ctype)
	}
	if !req.anonymous {
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	c.logger.Debug("backend call",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized && !req.anonymous {
		if err = c.tokens.Clear(); err != nil {
			c.logger.Warn("failed to clear token", zap.Error(err))
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Detail any `json:"detail"`
		}
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Detail != nil {
			apiErr.Detail = detailString(body.Detail)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// detailString flattens a detail that is not a plain string, e.g. a list
// of validation errors.
func detailString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func (c *Client) get(ctx context.Context, out any, path ...string) error {
	return c.do(ctx, request{method: http.MethodGet, path: path}, out)
}

func (c *Client) send(ctx context.Context, method string, in, out any, path ...string) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: method, path: path, body: bytes.NewReader(b), ctype: "application/json"}, out)
}

func (c *Client) remove(ctx context.Context, path ...string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}

// Login exchanges credentials for a token and stores it.
func (c *Client) Login(ctx context.Context, username, password string) (*port.Token, error) {
	form := url.Values{"username": {username}, "password": {password}}
	var token port.Token
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      []string{"token"},
		body:      strings.NewReader(form.Encode()),
		ctype:     "application/x-www-form-urlencoded",
		anonymous: true,
	}, &token)
	if err != nil {
		return nil, err
	}
	if err = c.tokens.SetToken(token.AccessToken); err != nil {
		return nil, err
	}
	return &token, nil
}

// Logout forgets the stored token.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, &u, "users", "me"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, &users, "users"); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	var u domain.User
	if err := c.send(ctx, http.MethodPost, in, &u, "users"); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, username string, in domain.UserInput) (*domain.User, error) {
	var u domain.User
	if err := c.send(ctx, http.MethodPut, in, &u, "users", username); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, username string) error {
	return c.remove(ctx, "users", username)
}

func (c *Client) ListItems(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyItem, error) {
	var items []domain.TaxonomyItem
	if err := c.get(ctx, &items, kind.String()); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) SaveItem(ctx context.Context, kind domain.TaxonomyKind, item domain.TaxonomyItem) error {
	return c.send(ctx, http.MethodPost, item, nil, kind.String())
}

func (c *Client) DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error {
	return c.remove(ctx, kind.String(), slug)
}

func (c *Client) ListSourceConfigs(ctx context.Context) ([]domain.SourceConfig, error) {
	var sources []domain.SourceConfig
	if err := c.get(ctx, &sources, "source-configs"); err != nil {
		return nil, err
	}
	return sources, nil
}

// SaveSourceConfig posts the whole document, replacing the stored one.
func (c *Client) SaveSourceConfig(ctx context.Context, src domain.SourceConfig) error {
	return c.send(ctx, http.MethodPost, src, nil, "source-configs")
}

func (c *Client) DeleteSourceConfig(ctx context.Context, slug string) error {
	return c.remove(ctx, "source-configs", slug)
}

func (c *Client) ListLaunches(ctx context.Context) ([]domain.Launch, error) {
	var launches []domain.Launch
	if err := c.get(ctx, &launches, "launches"); err != nil {
		return nil, err
	}
	return launches, nil
}

func (c *Client) SaveLaunch(ctx context.Context, launch domain.Launch) (*domain.Launch, error) {
	var saved domain.Launch
	if err := c.send(ctx, http.MethodPost, launch, &saved, "launches"); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) DeleteLaunch(ctx context.Context, slug string) error {
	return c.remove(ctx, "launches", slug)
}

// ListLinks fetches links newest first, narrowed by the server-side
// filters of q.
func (c *Client) ListLinks(ctx context.Context, q port.LinkQuery) ([]domain.Link, error) {
	query := url.Values{}
	set := func(k, v string) {
		if v != "" {
			query.Set(k, v)
		}
	}
	set("launch_id", q.Campaign)
	set("utm_source", q.Source)
	set("utm_medium", q.Medium)
	set("link_type", string(q.LinkType))
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var links []domain.Link
	if err := c.do(ctx, request{method: http.MethodGet, path: []string{"links"}, query: query}, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *Client) GenerateLink(ctx context.Context, req domain.LinkRequest) (*domain.Link, error) {
	var link domain.Link
	if err := c.send(ctx, http.MethodPost, req, &link, "links", "generate"); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *Client) DeleteLink(ctx context.Context, id string) error {
	return c.remove(ctx, "links", id)
}

// IsUnauthorized reports whether err means the user has to log in again.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
