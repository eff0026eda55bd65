package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// mockTodoService implements service.TodoService for unit tests.
type mockTodoService struct {
	addTodoFn      func(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error)
	getTodoFn      func(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error)
	completeTodoFn func(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error)
	deleteTodoFn   func(ctx context.Context, userID, id uuid.UUID) error
	listTodosFn    func(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error)
	countTodosFn   func(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error)
}

func (m *mockTodoService) AddTodo(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error) {
	return m.addTodoFn(ctx, userID, description)
}

func (m *mockTodoService) GetTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	return m.getTodoFn(ctx, userID, id)
}

func (m *mockTodoService) CompleteTodo(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
	return m.completeTodoFn(ctx, userID, id)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, userID, id uuid.UUID) error {
	return m.deleteTodoFn(ctx, userID, id)
}

func (m *mockTodoService) ListTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error) {
	return m.listTodosFn(ctx, userID, filter)
}

func (m *mockTodoService) CountTodos(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error) {
	return m.countTodosFn(ctx, userID, filter)
}

func newHandlerWithTodoService(todoSvc service.TodoService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			TodoService: todoSvc,
		},
	}
}

// executeTodoRequest runs a handler func with an authenticated context and a
// chi route context carrying the {id} path parameter.
func executeTodoRequest(h *Handler, handlerFn http.HandlerFunc, method, target, body string, userID uuid.UUID, pathID string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, bodyReader)
	req = injectNopLogger(req)

	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	if pathID != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", pathID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	handlerFn(rr, req)
	return rr
}

// ---- addTodo ----

func TestAddTodo_Success(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	h := newHandlerWithTodoService(&mockTodoService{
		addTodoFn: func(ctx context.Context, gotUserID uuid.UUID, description string) (models.TodoItem, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, "buy milk", description)
			return models.TodoItem{
				ID:          itemID,
				UserID:      userID,
				Description: description,
				CreatedAt:   time.Now(),
			}, nil
		},
	})

	rr := executeTodoRequest(h, h.addTodo, http.MethodPost, "/api/todos", `{"description":"buy milk"}`, userID, "")

	require.Equal(t, http.StatusOK, rr.Code)

	var item models.TodoItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
	assert.Equal(t, itemID, item.ID)
	assert.False(t, item.Completed)
}

func TestAddTodo_EmptyDescription(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		addTodoFn: func(ctx context.Context, userID uuid.UUID, description string) (models.TodoItem, error) {
			return models.TodoItem{}, service.ErrInvalidDataProvided
		},
	})

	rr := executeTodoRequest(h, h.addTodo, http.MethodPost, "/api/todos", `{"description":""}`, uuid.New(), "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, codeInvalidData, decodeErrorBody(t, rr))
}

func TestAddTodo_NoUserInContext(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{})

	req := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(`{"description":"x"}`))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.addTodo(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- getTodo ----

func TestGetTodo_Success(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	h := newHandlerWithTodoService(&mockTodoService{
		getTodoFn: func(ctx context.Context, gotUserID, gotID uuid.UUID) (models.TodoItem, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, itemID, gotID)
			return models.TodoItem{ID: gotID, UserID: gotUserID, Description: "buy milk"}, nil
		},
	})

	rr := executeTodoRequest(h, h.getTodo, http.MethodGet, "/api/todos/"+itemID.String(), "", userID, itemID.String())

	require.Equal(t, http.StatusOK, rr.Code)

	var item models.TodoItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
	assert.Equal(t, itemID, item.ID)
}

func TestGetTodo_NotFound(t *testing.T) {
	itemID := uuid.New()
	h := newHandlerWithTodoService(&mockTodoService{
		getTodoFn: func(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
			return models.TodoItem{}, store.ErrTodoNotFound
		},
	})

	rr := executeTodoRequest(h, h.getTodo, http.MethodGet, "/api/todos/"+itemID.String(), "", uuid.New(), itemID.String())

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, codeNotFound, decodeErrorBody(t, rr))
}

func TestGetTodo_InvalidID(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{})

	rr := executeTodoRequest(h, h.getTodo, http.MethodGet, "/api/todos/not-a-uuid", "", uuid.New(), "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, codeInvalidID, decodeErrorBody(t, rr))
}

// ---- completeTodo ----

func TestCompleteTodo_Success(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	h := newHandlerWithTodoService(&mockTodoService{
		completeTodoFn: func(ctx context.Context, gotUserID, gotID uuid.UUID) (models.TodoItem, error) {
			return models.TodoItem{ID: gotID, UserID: gotUserID, Completed: true}, nil
		},
	})

	rr := executeTodoRequest(h, h.completeTodo, http.MethodPut, "/api/todos/"+itemID.String()+"/complete", "", userID, itemID.String())

	require.Equal(t, http.StatusOK, rr.Code)

	var item models.TodoItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
	assert.True(t, item.Completed)
}

func TestCompleteTodo_NotFound(t *testing.T) {
	itemID := uuid.New()
	h := newHandlerWithTodoService(&mockTodoService{
		completeTodoFn: func(ctx context.Context, userID, id uuid.UUID) (models.TodoItem, error) {
			return models.TodoItem{}, store.ErrTodoNotFound
		},
	})

	rr := executeTodoRequest(h, h.completeTodo, http.MethodPut, "/api/todos/"+itemID.String()+"/complete", "", uuid.New(), itemID.String())

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- deleteTodo ----

func TestDeleteTodo_Success(t *testing.T) {
	itemID := uuid.New()
	h := newHandlerWithTodoService(&mockTodoService{
		deleteTodoFn: func(ctx context.Context, userID, id uuid.UUID) error {
			return nil
		},
	})

	rr := executeTodoRequest(h, h.deleteTodo, http.MethodDelete, "/api/todos/"+itemID.String(), "", uuid.New(), itemID.String())

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteTodo_NotFound(t *testing.T) {
	itemID := uuid.New()
	h := newHandlerWithTodoService(&mockTodoService{
		deleteTodoFn: func(ctx context.Context, userID, id uuid.UUID) error {
			return store.ErrTodoNotFound
		},
	})

	rr := executeTodoRequest(h, h.deleteTodo, http.MethodDelete, "/api/todos/"+itemID.String(), "", uuid.New(), itemID.String())

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- listTodos / countTodos ----

func TestListTodos_ForwardsFilter(t *testing.T) {
	userID := uuid.New()

	h := newHandlerWithTodoService(&mockTodoService{
		listTodosFn: func(ctx context.Context, gotUserID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error) {
			require.NotNil(t, filter.Description)
			assert.Equal(t, "milk", *filter.Description)
			require.NotNil(t, filter.Completed)
			assert.False(t, *filter.Completed)
			return []models.TodoItem{{ID: uuid.New(), UserID: gotUserID, Description: "buy milk"}}, nil
		},
	})

	rr := executeTodoRequest(h, h.listTodos, http.MethodGet, "/api/todos?description=milk&completed=false", "", userID, "")

	require.Equal(t, http.StatusOK, rr.Code)

	var items []models.TodoItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestListTodos_EmptyListIsJSONArray(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		listTodosFn: func(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) ([]models.TodoItem, error) {
			return []models.TodoItem{}, nil
		},
	})

	rr := executeTodoRequest(h, h.listTodos, http.MethodGet, "/api/todos", "", uuid.New(), "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestListTodos_InvalidCompletedParam(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{})

	rr := executeTodoRequest(h, h.listTodos, http.MethodGet, "/api/todos?completed=банан", "", uuid.New(), "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, codeInvalidQuery, decodeErrorBody(t, rr))
}

func TestCountTodos_ReturnsBareInteger(t *testing.T) {
	h := newHandlerWithTodoService(&mockTodoService{
		countTodosFn: func(ctx context.Context, userID uuid.UUID, filter models.TodoFilter) (int64, error) {
			return 7, nil
		},
	})

	rr := executeTodoRequest(h, h.countTodos, http.MethodGet, "/api/todos/count", "", uuid.New(), "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "7", rr.Body.String())
}
