// Package adapter provides the HTTP implementation of the remote library
// interface for installations that talk to a hosted library server instead
// of connecting to the SQL store directly.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. The fallback orchestrator does not distinguish between
// them — any error means "remote unavailable" — but the mapping keeps logs
// meaningful.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/transparent-media/library/internal/config"
	"github.com/transparent-media/library/internal/logger"
	"github.com/transparent-media/library/internal/store"
	"github.com/transparent-media/library/models"
)

type httpRemoteLibrary struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPRemoteLibrary constructs an HTTP/REST implementation of
// [store.RemoteLibrary]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteLibrary(cfg config.Remote, log *logger.Logger) (store.RemoteLibrary, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid remote http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpRemoteLibrary{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FindOrCreateUser implements [store.RemoteLibrary]. It POSTs the username
// to POST /api/users and returns the server-side user record.
func (h *httpRemoteLibrary) FindOrCreateUser(ctx context.Context, username string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username}).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("find or create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListContent implements [store.RemoteLibrary] via GET /api/contents.
func (h *httpRemoteLibrary) ListContent(ctx context.Context) ([]models.Content, error) {
	var items []models.Content

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get("/api/contents")
	if err != nil {
		return nil, fmt.Errorf("list content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// SearchContent implements [store.RemoteLibrary] via
// GET /api/contents?keyword=...
func (h *httpRemoteLibrary) SearchContent(ctx context.Context, keyword string) ([]models.Content, error) {
	var items []models.Content

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("keyword", keyword).
		SetResult(&items).
		Get("/api/contents")
	if err != nil {
		return nil, fmt.Errorf("search content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// InsertContent implements [store.RemoteLibrary] via POST /api/contents.
// The returned record carries the server-assigned identifier.
func (h *httpRemoteLibrary) InsertContent(ctx context.Context, content models.Content) (models.Content, error) {
	var created models.Content

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(content).
		SetResult(&created).
		Post("/api/contents")
	if err != nil {
		return models.Content{}, fmt.Errorf("insert content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Content{}, err
	}

	return created, nil
}

// ToggleFavourite implements [store.RemoteLibrary] via
// POST /api/users/{id}/favourites/{contentID}/toggle.
func (h *httpRemoteLibrary) ToggleFavourite(ctx context.Context, userID, contentID int64) (bool, error) {
	var result struct {
		Favourite bool `json:"favourite"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Post(fmt.Sprintf("/api/users/%d/favourites/%d/toggle", userID, contentID))
	if err != nil {
		return false, fmt.Errorf("toggle favourite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Favourite, nil
}

// ListFavourites implements [store.RemoteLibrary] via
// GET /api/users/{id}/favourites.
func (h *httpRemoteLibrary) ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error) {
	var items []models.Favourite

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get("/api/users/" + strconv.FormatInt(userID, 10) + "/favourites")
	if err != nil {
		return nil, fmt.Errorf("list favourites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// UpsertHistory implements [store.RemoteLibrary] via
// PUT /api/users/{id}/history.
func (h *httpRemoteLibrary) UpsertHistory(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error) {
	var stored models.HistoryRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&stored).
		Put("/api/users/" + strconv.FormatInt(record.UserID, 10) + "/history")
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("upsert history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HistoryRecord{}, err
	}

	return stored, nil
}

// ListHistory implements [store.RemoteLibrary] via
// GET /api/users/{id}/history.
func (h *httpRemoteLibrary) ListHistory(ctx context.Context, userID int64) ([]models.HistoryRecord, error) {
	var items []models.HistoryRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get("/api/users/" + strconv.FormatInt(userID, 10) + "/history")
	if err != nil {
		return nil, fmt.Errorf("list history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// Ping implements [store.RemoteLibrary] via GET /api/ping.
func (h *httpRemoteLibrary) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	return mapHTTPError(resp)
}
