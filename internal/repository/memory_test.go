package repository

import (
	"context"
	"testing"
	"time"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealRepoPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDealRepo(SeedDeals(time.Now()))

	require.NoError(t, repo.Append(ctx, domain.Deal{ID: "dX", Title: "Appended", Stage: domain.StageDiscovery}))

	deals, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dX", deals[len(deals)-1].ID)
	assert.Equal(t, "d1", deals[0].ID)
}

func TestDealRepoSetStage(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDealRepo(SeedDeals(time.Now()))

	before, _ := repo.List(ctx)
	v := repo.Version()

	require.NoError(t, repo.SetStage(ctx, "d4", domain.StageProposal))

	d, err := repo.GetByID(ctx, "d4")
	require.NoError(t, err)
	assert.Equal(t, domain.StageProposal, d.Stage)
	assert.Greater(t, repo.Version(), v)

	// Earlier snapshots are untouched.
	for _, old := range before {
		if old.ID == "d4" {
			assert.Equal(t, domain.StageDiscovery, old.Stage)
		}
	}
}

func TestDealRepoSetStageUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDealRepo(nil)

	err := repo.SetStage(ctx, "nope", domain.StageProposal)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, uint64(1), repo.Version())
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDealRepo(SeedDeals(time.Now()))

	deals, _ := repo.List(ctx)
	deals[0].Title = "mutated"

	fresh, _ := repo.List(ctx)
	assert.NotEqual(t, "mutated", fresh[0].Title)
}

func TestTaskRepoSetCompleted(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepo(SeedTasks())

	require.NoError(t, repo.SetCompleted(ctx, "t1", true))
	task, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, task.Completed)

	assert.ErrorIs(t, repo.SetCompleted(ctx, "missing", true), ErrNotFound)
}

func TestLeadRepoCopiesTags(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLeadRepo(SeedLeads(time.Now()))

	leads, _ := repo.List(ctx)
	require.NotEmpty(t, leads[0].Tags)
	leads[0].Tags[0] = "mutated"

	fresh, _ := repo.List(ctx)
	assert.NotEqual(t, "mutated", fresh[0].Tags[0])
}

func TestProfileRepoSetField(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepo(SeedProfile())

	require.NoError(t, repo.SetField(ctx, domain.FieldFirstName, "Dana"))
	require.NoError(t, repo.SetField(ctx, domain.ProfileField("nickname"), "ignored"))

	p, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dana", p.FirstName)
	assert.Equal(t, "Parker", p.LastName)
}

func TestContactRepoGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryContactRepo(SeedContacts())

	c, err := repo.GetByID(ctx, DefaultContactID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", c.Name)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
