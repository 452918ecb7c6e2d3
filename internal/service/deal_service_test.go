package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

func newDealFixture(t *testing.T) (DealService, repository.DealRepo) {
	t.Helper()
	repo := repository.NewMemoryDealRepo(repository.SeedDeals(time.Now()))
	return NewDealService(repo), repo
}

func TestDealCreate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newDealFixture(t)

	d, err := svc.Create(ctx, "Acme Expansion", "30000")
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Acme Expansion", d.Title)
	assert.Equal(t, 30000, d.Value)
	assert.Equal(t, domain.StageDiscovery, d.Stage)
	assert.Equal(t, 20, d.Probability)
	assert.Equal(t, repository.DefaultContactID, d.ContactID)

	deals, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.ID, deals[len(deals)-1].ID, "new deal appends at the end")
}

func TestDealCreateRejectsBlankTitle(t *testing.T) {
	ctx := context.Background()
	svc, repo := newDealFixture(t)
	before := repo.Version()

	for _, title := range []string{"", "   ", "\t\n"} {
		d, err := svc.Create(ctx, title, "500")
		assert.ErrorIs(t, err, ErrEmptyTitle)
		assert.Nil(t, d)
	}
	assert.Equal(t, before, repo.Version(), "rejected creates must not mutate")
}

func TestDealCreateValueParsing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDealFixture(t)

	cases := []struct {
		in   string
		want int
	}{
		{"12000", 12000},
		{"  750 ", 750},
		{"not-a-number", 0},
		{"", 0},
		{"-400", 0},
	}
	for _, tc := range cases {
		d, err := svc.Create(ctx, "Parse check", tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.Value, "value %q", tc.in)
	}
}

func TestDealChangeStage(t *testing.T) {
	ctx := context.Background()
	svc, repo := newDealFixture(t)

	require.NoError(t, svc.ChangeStage(ctx, "d4", domain.StageProposal))

	deals, err := repo.List(ctx)
	require.NoError(t, err)
	for _, d := range deals {
		if d.ID == "d4" {
			assert.Equal(t, domain.StageProposal, d.Stage)
			return
		}
	}
	t.Fatal("deal d4 missing after stage change")
}

func TestDealChangeStageUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, repo := newDealFixture(t)
	before := repo.Version()

	require.NoError(t, svc.ChangeStage(ctx, "no-such-deal", domain.StageClosedWon))
	assert.Equal(t, before, repo.Version())
}
