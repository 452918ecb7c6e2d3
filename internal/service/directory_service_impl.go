package service

import (
	"context"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

type directoryService struct {
	contacts   repository.ContactRepo
	companies  repository.CompanyRepo
	activities repository.ActivityRepo
	documents  repository.DocumentRepo
}

func NewDirectoryService(
	contacts repository.ContactRepo,
	companies repository.CompanyRepo,
	activities repository.ActivityRepo,
	documents repository.DocumentRepo,
) DirectoryService {
	return &directoryService{
		contacts:   contacts,
		companies:  companies,
		activities: activities,
		documents:  documents,
	}
}

func (s *directoryService) Contacts(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *directoryService) ContactByID(ctx context.Context, id string) (domain.Contact, bool) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return domain.Contact{}, false
	}
	return c, true
}

func (s *directoryService) Companies(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *directoryService) Activities(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *directoryService) Documents(ctx context.Context) ([]domain.Document, error) {
	return s.documents.List(ctx)
}
