package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

type leadService struct {
	leads    repository.LeadRepo
	contacts repository.ContactRepo
}

func NewLeadService(leads repository.LeadRepo, contacts repository.ContactRepo) LeadService {
	return &leadService{leads: leads, contacts: contacts}
}

func (s *leadService) List(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}

func (s *leadService) Create(ctx context.Context, name string) (*domain.Lead, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTitle
	}

	// Clone the placeholder contact and overwrite its name. A missing
	// placeholder just means a bare snapshot; creation still succeeds.
	snapshot, err := s.contacts.GetByID(ctx, repository.DefaultContactID)
	if err != nil {
		snapshot = domain.Contact{}
	}
	snapshot.Name = name

	l := domain.Lead{
		ID:        uuid.New().String(),
		Contact:   snapshot,
		Status:    domain.LeadNew,
		Source:    "Manual",
		CreatedAt: time.Now().UTC(),
		Tags:      []string{"New"},
	}
	if err := s.leads.Append(ctx, l); err != nil {
		return nil, err
	}
	return &l, nil
}
