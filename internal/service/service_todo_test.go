package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newTestTodoSvc(t *testing.T, ctrl *gomock.Controller) (TodoService, *mock.MockTodoRepository) {
	t.Helper()
	mockTodos := mock.NewMockTodoRepository(ctrl)
	svc := NewTodoService(mockTodos, logger.Nop())
	return svc, mockTodos
}

func TestTodoService_AddTodo_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTodos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	want := models.TodoItem{
		ID:          uuid.New(),
		UserID:      userID,
		Description: "buy milk",
		CreatedAt:   time.Now(),
	}

	mockTodos.EXPECT().CreateTodo(ctx, userID, "buy milk").Return(want, nil)

	got, err := svc.AddTodo(ctx, userID, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTodoService_AddTodo_EmptyDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTodoSvc(t, ctrl)

	_, err := svc.AddTodo(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTodoService_GetTodo_NotFoundPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTodos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	itemID := uuid.New()
	mockTodos.EXPECT().GetTodo(ctx, userID, itemID).
		Return(models.TodoItem{}, store.ErrTodoNotFound)

	_, err := svc.GetTodo(ctx, userID, itemID)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestTodoService_CompleteAndDelete_Delegate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTodos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	itemID := uuid.New()

	mockTodos.EXPECT().CompleteTodo(ctx, userID, itemID).
		Return(models.TodoItem{ID: itemID, UserID: userID, Completed: true}, nil)
	mockTodos.EXPECT().DeleteTodo(ctx, userID, itemID).Return(nil)

	item, err := svc.CompleteTodo(ctx, userID, itemID)
	require.NoError(t, err)
	assert.True(t, item.Completed)

	require.NoError(t, svc.DeleteTodo(ctx, userID, itemID))
}

func TestTodoService_ListAndCount_ForwardFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTodos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	desc := "milk"
	filter := models.TodoFilter{Description: &desc}

	items := []models.TodoItem{{ID: uuid.New(), UserID: userID, Description: "buy milk"}}
	mockTodos.EXPECT().ListTodos(ctx, userID, filter).Return(items, nil)
	mockTodos.EXPECT().CountTodos(ctx, userID, filter).Return(int64(1), nil)

	got, err := svc.ListTodos(ctx, userID, filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	count, err := svc.CountTodos(ctx, userID, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
