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

func newLeadFixture(t *testing.T) (LeadService, repository.LeadRepo) {
	t.Helper()
	leads := repository.NewMemoryLeadRepo(repository.SeedLeads(time.Now()))
	contacts := repository.NewMemoryContactRepo(repository.SeedContacts())
	return NewLeadService(leads, contacts), leads
}

func TestLeadCreateClonesPlaceholderContact(t *testing.T) {
	ctx := context.Background()
	svc, repo := newLeadFixture(t)

	l, err := svc.Create(ctx, "Dana Ruiz")
	require.NoError(t, err)
	require.NotNil(t, l)

	placeholder := repository.SeedContacts()[0]
	assert.Equal(t, "Dana Ruiz", l.Contact.Name)
	assert.Equal(t, placeholder.Email, l.Contact.Email, "snapshot keeps the placeholder's other fields")
	assert.Equal(t, placeholder.Company, l.Contact.Company)

	assert.Equal(t, domain.LeadNew, l.Status)
	assert.Equal(t, "Manual", l.Source)
	assert.Equal(t, []string{"New"}, l.Tags)
	assert.WithinDuration(t, time.Now().UTC(), l.CreatedAt, 5*time.Second)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, l.ID, all[len(all)-1].ID)
}

func TestLeadCreateRejectsBlankName(t *testing.T) {
	ctx := context.Background()
	svc, repo := newLeadFixture(t)
	before := repo.Version()

	l, err := svc.Create(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Nil(t, l)
	assert.Equal(t, before, repo.Version())
}
