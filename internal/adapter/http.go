package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the session token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/register and decodes the public account record from the
// response body.
func (h *httpServerAdapter) Register(ctx context.Context, username, password string) (models.UserInfo, error) {
	var info models.UserInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Username: username, Password: password}).
		SetResult(&info).
		Post("/auth/register")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	return info, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login, stores the returned session token via SetToken, and
// returns the decoded login response.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Username: username, Password: password}).
		SetResult(&login).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.SessionToken)
	return login, nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /auth/logout with the
// stored session token and clears the token on success.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// CreateTodo implements [ServerAdapter]. It POSTs the description to
// POST /api/todos and decodes the created item.
func (h *httpServerAdapter) CreateTodo(ctx context.Context, description string) (models.TodoItem, error) {
	var item models.TodoItem

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateTodoRequest{Description: description}).
		SetResult(&item).
		Post("/api/todos")
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return item, nil
}

// GetTodo implements [ServerAdapter]. It GETs /api/todos/{id}.
func (h *httpServerAdapter) GetTodo(ctx context.Context, id uuid.UUID) (models.TodoItem, error) {
	var item models.TodoItem

	resp, err := h.authedRequest(ctx).
		SetResult(&item).
		Get("/api/todos/" + id.String())
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("get todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return item, nil
}

// CompleteTodo implements [ServerAdapter]. It PUTs /api/todos/{id}/complete.
func (h *httpServerAdapter) CompleteTodo(ctx context.Context, id uuid.UUID) (models.TodoItem, error) {
	var item models.TodoItem

	resp, err := h.authedRequest(ctx).
		SetResult(&item).
		Put("/api/todos/" + id.String() + "/complete")
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("complete todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return item, nil
}

// DeleteTodo implements [ServerAdapter]. It DELETEs /api/todos/{id}.
func (h *httpServerAdapter) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	resp, err := h.authedRequest(ctx).Delete("/api/todos/" + id.String())
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTodos implements [ServerAdapter]. It GETs /api/todos with the filter
// encoded as query parameters and decodes the item slice from the body.
func (h *httpServerAdapter) ListTodos(ctx context.Context, filter models.TodoFilter) ([]models.TodoItem, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(filterQueryParams(filter)).
		Get("/api/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.TodoItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list todos response: %w", err)
	}

	return items, nil
}

// CountTodos implements [ServerAdapter]. It GETs /api/todos/count with the
// filter encoded as query parameters. The server responds with a bare JSON
// integer.
func (h *httpServerAdapter) CountTodos(ctx context.Context, filter models.TodoFilter) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(filterQueryParams(filter)).
		Get("/api/todos/count")
	if err != nil {
		return 0, fmt.Errorf("count todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	count, err := strconv.ParseInt(strings.TrimSpace(string(resp.Body())), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode count todos response: %w", err)
	}

	return count, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func filterQueryParams(filter models.TodoFilter) url.Values {
	params := url.Values{}
	if filter.Description != nil {
		params.Set("description", *filter.Description)
	}
	if filter.Completed != nil {
		params.Set("completed", strconv.FormatBool(*filter.Completed))
	}
	return params
}
