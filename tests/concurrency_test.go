package tests

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow-api/internal/model"
	"github.com/taskflow/taskflow-api/internal/repo"
	"github.com/taskflow/taskflow-api/internal/service"
)

func TestConcurrent_CreateUniqueIDs(t *testing.T) {
	pool, cleanup := SetupTestDB(t)
	defer cleanup()

	TruncateTables(t, pool)

	taskRepo := repo.NewTaskRepo(pool)
	taskService := service.NewTaskService(taskRepo)
	ctx := context.Background()

	const goroutines = 20

	var wg sync.WaitGroup
	results := make([]model.Task, goroutines)
	errors := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errors[idx] = taskService.Create(ctx, model.TaskCreate{
				Title: fmt.Sprintf("Concurrent Task %d", idx),
			})
		}(i)
	}

	wg.Wait()

	// All should succeed with distinct ids
	seen := make(map[string]bool)
	for i, err := range errors {
		require.NoError(t, err, "request %d should not error", i)
		assert.False(t, seen[results[i].ID], "request %d reused an id", i)
		seen[results[i].ID] = true
	}

	var count int
	pool.QueryRow(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count)
	assert.Equal(t, goroutines, count)
}

func TestConcurrent_MultipleReads(t *testing.T) {
	pool, cleanup := SetupTestDB(t)
	defer cleanup()

	TruncateTables(t, pool)
	ids := SeedTasks(t, pool, 10)

	taskRepo := repo.NewTaskRepo(pool)
	ctx := context.Background()

	const goroutines = 50
	var wg sync.WaitGroup

	// Concurrent reads should not cause issues
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			taskID := ids[idx%len(ids)]
			task, err := taskRepo.Get(ctx, taskID)
			assert.NoError(t, err)
			assert.Equal(t, taskID, task.ID)
		}(i)
	}

	wg.Wait()
}

func TestConcurrent_CreateAndList(t *testing.T) {
	pool, cleanup := SetupTestDB(t)
	defer cleanup()

	TruncateTables(t, pool)

	taskRepo := repo.NewTaskRepo(pool)
	taskService := service.NewTaskService(taskRepo)
	ctx := context.Background()

	var wg sync.WaitGroup
	const creators = 5
	const readers = 5

	// Concurrent creates
	for i := 0; i < creators; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				taskService.Create(ctx, model.TaskCreate{
					Title: fmt.Sprintf("Task %d-%d", idx, j),
				})
			}
		}(i)
	}

	// Concurrent reads
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				taskRepo.List(ctx)
			}
		}()
	}

	wg.Wait()

	// Verify final count
	tasks, err := taskRepo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, creators*5, len(tasks))
}
