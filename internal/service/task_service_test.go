package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

func newTaskFixture(t *testing.T) (TaskService, repository.TaskRepo) {
	t.Helper()
	repo := repository.NewMemoryTaskRepo(repository.SeedTasks())
	return NewTaskService(repo), repo
}

func findTask(t *testing.T, repo repository.TaskRepo, id string) domain.Task {
	t.Helper()
	task, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return task
}

func TestTaskCreate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTaskFixture(t)

	task, err := svc.Create(ctx, "Book demo with Verity AI")
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.Equal(t, "Tomorrow", task.DueDate)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.False(t, task.Completed)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, task.ID, all[len(all)-1].ID)
}

func TestTaskCreateRejectsBlankTitle(t *testing.T) {
	svc, _ := newTaskFixture(t)

	task, err := svc.Create(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Nil(t, task)
}

func TestTaskToggleFlipsBothWays(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTaskFixture(t)

	require.False(t, findTask(t, repo, "t1").Completed)

	require.NoError(t, svc.Toggle(ctx, "t1"))
	assert.True(t, findTask(t, repo, "t1").Completed)

	require.NoError(t, svc.Toggle(ctx, "t1"))
	assert.False(t, findTask(t, repo, "t1").Completed)
}

func TestTaskToggleUnknownIDIsNoop(t *testing.T) {
	svc, repo := newTaskFixture(t)
	before := repo.Version()

	require.NoError(t, svc.Toggle(context.Background(), "ghost"))
	assert.Equal(t, before, repo.Version())
}
