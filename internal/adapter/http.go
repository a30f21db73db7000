package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/utils"
	"github.com/MKhiriev/help-me-shop/models"
	"github.com/go-resty/resty/v2"
)

const retryWait = 200 * time.Millisecond

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] for the server at
// cfg.ServerAddress. A bare host:port is treated as http. cfg.Token, when
// set, is used for authenticated requests.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient().WithRetries(cfg.Retries, retryWait)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	logger.Debug().Str("base_url", baseURL).Int("retries", cfg.Retries).Msg("http adapter created")
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register calls POST /api/auth/api-key.
func (h *httpServerAdapter) Register(ctx context.Context) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&auth).
		Post("/api/auth/api-key")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = h.storeToken(resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	return auth, nil
}

// Login calls POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, secretKey string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.APIKeyLoginRequest{SecretKey: secretKey}).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = h.storeToken(resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	return auth, nil
}

// Version calls GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// MyLists calls GET /api/lists.
func (h *httpServerAdapter) MyLists(ctx context.Context) (models.ListsResponse, error) {
	var lists models.ListsResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return lists, err
	}
	resp, err := req.SetResult(&lists).Get("/api/lists")
	if err != nil {
		return lists, fmt.Errorf("my lists request: %w", err)
	}

	return lists, mapHTTPError(resp)
}

// CreateList calls POST /api/lists.
func (h *httpServerAdapter) CreateList(ctx context.Context, title string) (models.ListView, error) {
	var view models.ListView

	req, err := h.authedRequest(ctx)
	if err != nil {
		return view, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateListRequest{Title: title}).
		SetResult(&view).
		Post("/api/lists")
	if err != nil {
		return view, fmt.Errorf("create list request: %w", err)
	}

	return view, mapHTTPError(resp)
}

// GetList calls GET /api/lists/{listID}. Lists are public, the token is sent
// only when present.
func (h *httpServerAdapter) GetList(ctx context.Context, listID string) (models.ListView, error) {
	var view models.ListView

	resp, err := h.optionalAuthRequest(ctx).
		SetPathParam("listID", listID).
		SetResult(&view).
		Get("/api/lists/{listID}")
	if err != nil {
		return view, fmt.Errorf("get list request: %w", err)
	}

	return view, mapHTTPError(resp)
}

// History calls GET /api/lists/{listID}/revisions.
func (h *httpServerAdapter) History(ctx context.Context, listID string) (models.RevisionsResponse, error) {
	var history models.RevisionsResponse

	resp, err := h.optionalAuthRequest(ctx).
		SetPathParam("listID", listID).
		SetResult(&history).
		Get("/api/lists/{listID}/revisions")
	if err != nil {
		return history, fmt.Errorf("history request: %w", err)
	}

	return history, mapHTTPError(resp)
}

// ReplaceList calls PUT /api/lists/{listID}.
func (h *httpServerAdapter) ReplaceList(ctx context.Context, listID string, body models.ReplaceListRequest) (models.ListView, error) {
	var view models.ListView

	req, err := h.authedRequest(ctx)
	if err != nil {
		return view, err
	}
	resp, err := req.
		SetPathParam("listID", listID).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&view).
		Put("/api/lists/{listID}")
	if err != nil {
		return view, fmt.Errorf("replace list request: %w", err)
	}

	return view, mapHTTPError(resp)
}

// DeleteList calls DELETE /api/lists/{listID}.
func (h *httpServerAdapter) DeleteList(ctx context.Context, listID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParam("listID", listID).
		Delete("/api/lists/{listID}")
	if err != nil {
		return fmt.Errorf("delete list request: %w", err)
	}

	return mapHTTPError(resp)
}

// AddItem calls POST /api/lists/{listID}/items.
func (h *httpServerAdapter) AddItem(ctx context.Context, listID string, body models.AddItemRequest) (models.ItemResponse, error) {
	var item models.ItemResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return item, err
	}
	resp, err := req.
		SetPathParam("listID", listID).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&item).
		Post("/api/lists/{listID}/items")
	if err != nil {
		return item, fmt.Errorf("add item request: %w", err)
	}

	return item, mapHTTPError(resp)
}

// UpdateItem calls PUT /api/lists/{listID}/items/{ident}.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, listID, ident string, body models.UpdateItemRequest) (models.ItemResponse, error) {
	var item models.ItemResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return item, err
	}
	resp, err := req.
		SetPathParams(map[string]string{"listID": listID, "ident": ident}).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&item).
		Put("/api/lists/{listID}/items/{ident}")
	if err != nil {
		return item, fmt.Errorf("update item request: %w", err)
	}

	return item, mapHTTPError(resp)
}

// RemoveItem calls DELETE /api/lists/{listID}/items/{ident}.
func (h *httpServerAdapter) RemoveItem(ctx context.Context, listID, ident string) (models.ListView, error) {
	var view models.ListView

	req, err := h.authedRequest(ctx)
	if err != nil {
		return view, err
	}
	resp, err := req.
		SetPathParams(map[string]string{"listID": listID, "ident": ident}).
		SetResult(&view).
		Delete("/api/lists/{listID}/items/{ident}")
	if err != nil {
		return view, fmt.Errorf("remove item request: %w", err)
	}

	return view, mapHTTPError(resp)
}

// storeToken maps the response status and keeps the bearer token from the
// Authorization header.
func (h *httpServerAdapter) storeToken(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func (h *httpServerAdapter) optionalAuthRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
