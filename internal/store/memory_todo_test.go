package store

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestTodoRepo(t *testing.T) TodoRepository {
	t.Helper()
	return NewMemoryTodoRepository(logger.Nop())
}

func TestMemoryTodoRepository_CreateAndGet(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	created, err := repo.CreateTodo(ctx, owner, "buy milk")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, "buy milk", created.Description)
	assert.False(t, created.Completed)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetTodo(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

// TestMemoryTodoRepository_OwnerIsolation: for users A ≠ B, an item created
// by A behaves exactly as if it did not exist when B touches it — through
// every operation.
func TestMemoryTodoRepository_OwnerIsolation(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	item, err := repo.CreateTodo(ctx, alice, "alice's secret task")
	require.NoError(t, err)

	_, err = repo.GetTodo(ctx, bob, item.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound, "get must not reveal a foreign item")

	_, err = repo.CompleteTodo(ctx, bob, item.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound, "complete must not touch a foreign item")

	err = repo.DeleteTodo(ctx, bob, item.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound, "delete must not touch a foreign item")

	list, err := repo.ListTodos(ctx, bob, models.TodoFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	count, err := repo.CountTodos(ctx, bob, models.TodoFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)

	// и после всех попыток Боба запись Алисы не изменилась
	got, err := repo.GetTodo(ctx, alice, item.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestMemoryTodoRepository_CompleteIsIdempotent(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	item, err := repo.CreateTodo(ctx, owner, "write tests")
	require.NoError(t, err)

	first, err := repo.CompleteTodo(ctx, owner, item.ID)
	require.NoError(t, err)
	assert.True(t, first.Completed)

	second, err := repo.CompleteTodo(ctx, owner, item.ID)
	require.NoError(t, err)
	assert.True(t, second.Completed, "second completion is a no-op success")
}

func TestMemoryTodoRepository_FilterCorrectness(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	for _, description := range []string{"Learn Rust", "Learn Rocket", "Build an API"} {
		_, err := repo.CreateTodo(ctx, owner, description)
		require.NoError(t, err)
	}

	descriptions := func(items []models.TodoItem) []string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.Description)
		}
		return out
	}

	learn, err := repo.ListTodos(ctx, owner, models.TodoFilter{Description: strPtr("learn")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Learn Rust", "Learn Rocket"}, descriptions(learn))

	rock, err := repo.ListTodos(ctx, owner, models.TodoFilter{Description: strPtr("rock")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Learn Rocket"}, descriptions(rock))

	all, err := repo.ListTodos(ctx, owner, models.TodoFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryTodoRepository_CompletedFilter(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	done, err := repo.CreateTodo(ctx, owner, "done task")
	require.NoError(t, err)
	_, err = repo.CreateTodo(ctx, owner, "pending task")
	require.NoError(t, err)

	_, err = repo.CompleteTodo(ctx, owner, done.ID)
	require.NoError(t, err)

	completed, err := repo.ListTodos(ctx, owner, models.TodoFilter{Completed: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)

	pending, err := repo.ListTodos(ctx, owner, models.TodoFilter{Completed: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "pending task", pending[0].Description)
}

// TestMemoryTodoRepository_CountMatchesList: count(filter) always equals
// len(list(filter)) for the same caller and filter.
func TestMemoryTodoRepository_CountMatchesList(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	fixtures := []string{"Learn Rust", "Learn Rocket", "Build an API", "learn go"}
	for _, description := range fixtures {
		_, err := repo.CreateTodo(ctx, owner, description)
		require.NoError(t, err)
	}

	filters := []models.TodoFilter{
		{},
		{Description: strPtr("learn")},
		{Description: strPtr("rock")},
		{Completed: boolPtr(false)},
		{Description: strPtr("learn"), Completed: boolPtr(true)},
	}

	for _, filter := range filters {
		list, err := repo.ListTodos(ctx, owner, filter)
		require.NoError(t, err)

		count, err := repo.CountTodos(ctx, owner, filter)
		require.NoError(t, err)

		assert.Equal(t, int64(len(list)), count)
	}
}

func TestMemoryTodoRepository_ListNewestFirst(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	for _, description := range []string{"first", "second", "third"} {
		_, err := repo.CreateTodo(ctx, owner, description)
		require.NoError(t, err)
	}

	list, err := repo.ListTodos(ctx, owner, models.TodoFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)

	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].CreatedAt.Before(list[i].CreatedAt),
			"items must be ordered newest first")
	}
}

func TestMemoryTodoRepository_DeleteThenGet(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	item, err := repo.CreateTodo(ctx, owner, "temporary")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTodo(ctx, owner, item.ID))

	_, err = repo.GetTodo(ctx, owner, item.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	err = repo.DeleteTodo(ctx, owner, item.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound, "deleting twice reports not found")
}

// TestMemoryTodoRepository_ConcurrentMixedOperations hammers the store with
// parallel inserts, completions and reads. Run with -race; the assertions
// check that no write is lost.
func TestMemoryTodoRepository_ConcurrentMixedOperations(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()

	const owners = 4
	const itemsPerOwner = 50

	ownerIDs := make([]uuid.UUID, owners)
	for i := range ownerIDs {
		ownerIDs[i] = uuid.New()
	}

	var wg sync.WaitGroup
	created := make([][]models.TodoItem, owners)

	for i, owner := range ownerIDs {
		wg.Add(1)
		go func(i int, owner uuid.UUID) {
			defer wg.Done()
			created[i] = make([]models.TodoItem, 0, itemsPerOwner)
			for j := 0; j < itemsPerOwner; j++ {
				item, err := repo.CreateTodo(ctx, owner, "task")
				assert.NoError(t, err)
				created[i] = append(created[i], item)

				// interleave reads with writes
				_, err = repo.CountTodos(ctx, owner, models.TodoFilter{})
				assert.NoError(t, err)
			}
		}(i, owner)
	}
	wg.Wait()

	// every insert survived, scoped to its owner
	for i, owner := range ownerIDs {
		count, err := repo.CountTodos(ctx, owner, models.TodoFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(itemsPerOwner), count)

		for _, item := range created[i] {
			_, err := repo.GetTodo(ctx, owner, item.ID)
			assert.NoError(t, err)
		}
	}
}

// TestMemoryTodoRepository_ConcurrentCompleteSameItem: two concurrent
// completions of one item must both succeed and leave Completed=true.
func TestMemoryTodoRepository_ConcurrentCompleteSameItem(t *testing.T) {
	repo := newTestTodoRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	item, err := repo.CreateTodo(ctx, owner, "contested")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CompleteTodo(ctx, owner, item.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetTodo(ctx, owner, item.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}
