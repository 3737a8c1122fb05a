// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package client is a typed HTTP client for the Noctoon API.

It decodes error bodies back into [apperr.AppError] values, so callers can use
[apperr.IsNotFound] on a 404 exactly as they would against a local service.
*Client satisfies [reader.Source] and [reader.ProgressRecorder].
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/internal/library/favorite"
	"github.com/taibuivan/noctoon/internal/library/progress"
	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/respond"
	"github.com/taibuivan/noctoon/internal/reader"
	"github.com/taibuivan/noctoon/internal/users/auth"
	"github.com/taibuivan/noctoon/pkg/pointer"
)

// DefaultTimeout bounds every request made with the default HTTP client.
const DefaultTimeout = 15 * time.Second

// Client calls the Noctoon API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option customizes a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithToken sends token as a bearer credential.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New returns a client for the API rooted at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// # Catalog

// ListSeries returns the catalog. A non-zero filter is applied server-side.
func (c *Client) ListSeries(ctx context.Context, filter series.Filter) ([]*series.Series, error) {
	params := url.Values{}
	if filter.Query != "" {
		params.Set("q", filter.Query)
	}
	if len(filter.Genres) > 0 {
		params.Set("genre", strings.Join(filter.Genres, ","))
	}
	if filter.Status != "" && filter.Status != series.StatusAll {
		params.Set("status", string(filter.Status))
	}
	if filter.Featured {
		params.Set("featured", "true")
	}
	if filter.Trending {
		params.Set("trending", "true")
	}

	var list []*series.Series
	err := c.do(ctx, http.MethodGet, "/api/series", params, nil, &list)
	return list, err
}

// Series fetches one series.
func (c *Client) Series(ctx context.Context, id string) (*series.Series, error) {
	var s series.Series
	if err := c.do(ctx, http.MethodGet, "/api/series/"+url.PathEscape(id), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Chapters lists the chapters of a series.
func (c *Client) Chapters(ctx context.Context, seriesID string) ([]*chapter.Chapter, error) {
	var list []*chapter.Chapter
	err := c.do(ctx, http.MethodGet, "/api/series/"+url.PathEscape(seriesID)+"/chapters", nil, nil, &list)
	return list, err
}

// Chapter fetches one chapter with its pages.
func (c *Client) Chapter(ctx context.Context, id string) (*chapter.Chapter, error) {
	var ch chapter.Chapter
	if err := c.do(ctx, http.MethodGet, "/api/chapters/"+url.PathEscape(id), nil, nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// # Library

// Favorites lists the user's favorites.
func (c *Client) Favorites(ctx context.Context, userID string) ([]*favorite.Favorite, error) {
	var list []*favorite.Favorite
	err := c.do(ctx, http.MethodGet, "/api/favorites", url.Values{"userId": {userID}}, nil, &list)
	return list, err
}

// Progress lists the user's reading progress, narrowed to seriesID when set.
func (c *Client) Progress(ctx context.Context, userID, seriesID string) ([]*progress.ReadingProgress, error) {
	params := url.Values{"userId": {userID}}
	if seriesID != "" {
		params.Set("seriesId", seriesID)
	}

	var list []*progress.ReadingProgress
	err := c.do(ctx, http.MethodGet, "/api/reading-progress", params, nil, &list)
	return list, err
}

// SaveProgress upserts the user's position in a series.
func (c *Client) SaveProgress(ctx context.Context, userID string, position reader.Position) error {
	body := progress.UpsertInput{
		UserID:      userID,
		SeriesID:    position.SeriesID,
		ChapterID:   position.ChapterID,
		CurrentPage: pointer.To(position.Page),
	}
	return c.do(ctx, http.MethodPost, "/api/reading-progress", nil, body, nil)
}

// # Accounts

// Login exchanges credentials for the account and, when enabled, a token.
func (c *Client) Login(ctx context.Context, username, password string) (*auth.LoginResult, error) {
	var result auth.LoginResult
	body := auth.LoginInput{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// # Transport

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, target any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return decodeError(response)
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("client: decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError rebuilds the server's error from its envelope.
func decodeError(response *http.Response) error {
	var envelope respond.ErrorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(response.Body, 64<<10))
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Code == "" {
		envelope.Code = codeForStatus(response.StatusCode)
		envelope.Error = strings.TrimSpace(string(raw))
		if envelope.Error == "" {
			envelope.Error = http.StatusText(response.StatusCode)
		}
	}

	return &apperr.AppError{
		Code:       envelope.Code,
		Message:    envelope.Error,
		HTTPStatus: response.StatusCode,
		Details:    envelope.Details,
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return apperr.CodeNotFound
	case http.StatusUnauthorized:
		return apperr.CodeUnauthorized
	case http.StatusForbidden:
		return apperr.CodeForbidden
	case http.StatusConflict:
		return apperr.CodeConflict
	case http.StatusBadRequest:
		return apperr.CodeValidation
	default:
		return apperr.CodeInternal
	}
}
