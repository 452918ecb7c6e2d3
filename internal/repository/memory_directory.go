package repository

import (
	"context"
	"sync"

	"github.com/nexuscrm/nexus/internal/domain"
)

// The directory repos (contacts, companies, activities, documents) are
// read-only after seeding, so they share a plain slice with no version
// counter.

type memoryContactRepo struct {
	contacts []domain.Contact
}

// NewMemoryContactRepo creates a ContactRepo over a fixed contact directory.
func NewMemoryContactRepo(seed []domain.Contact) ContactRepo {
	return &memoryContactRepo{contacts: append([]domain.Contact(nil), seed...)}
}

func (r *memoryContactRepo) List(_ context.Context) ([]domain.Contact, error) {
	out := make([]domain.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

func (r *memoryContactRepo) GetByID(_ context.Context, id string) (domain.Contact, error) {
	for _, c := range r.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Contact{}, ErrNotFound
}

type memoryCompanyRepo struct {
	companies []domain.Company
}

// NewMemoryCompanyRepo creates a CompanyRepo over a fixed company list.
func NewMemoryCompanyRepo(seed []domain.Company) CompanyRepo {
	return &memoryCompanyRepo{companies: append([]domain.Company(nil), seed...)}
}

func (r *memoryCompanyRepo) List(_ context.Context) ([]domain.Company, error) {
	out := make([]domain.Company, len(r.companies))
	copy(out, r.companies)
	return out, nil
}

type memoryActivityRepo struct {
	activities []domain.Activity
}

// NewMemoryActivityRepo creates an ActivityRepo over a fixed feed.
func NewMemoryActivityRepo(seed []domain.Activity) ActivityRepo {
	return &memoryActivityRepo{activities: append([]domain.Activity(nil), seed...)}
}

func (r *memoryActivityRepo) List(_ context.Context) ([]domain.Activity, error) {
	out := make([]domain.Activity, len(r.activities))
	copy(out, r.activities)
	return out, nil
}

type memoryDocumentRepo struct {
	documents []domain.Document
}

// NewMemoryDocumentRepo creates a DocumentRepo over a fixed file list.
func NewMemoryDocumentRepo(seed []domain.Document) DocumentRepo {
	return &memoryDocumentRepo{documents: append([]domain.Document(nil), seed...)}
}

func (r *memoryDocumentRepo) List(_ context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, len(r.documents))
	copy(out, r.documents)
	return out, nil
}

// memoryProfileRepo holds the singleton profile.
type memoryProfileRepo struct {
	mu      sync.RWMutex
	profile domain.UserProfile
}

// NewMemoryProfileRepo creates a ProfileRepo with the given initial profile.
func NewMemoryProfileRepo(initial domain.UserProfile) ProfileRepo {
	return &memoryProfileRepo{profile: initial}
}

func (r *memoryProfileRepo) Get(_ context.Context) (domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *memoryProfileRepo) SetField(_ context.Context, field domain.ProfileField, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch field {
	case domain.FieldFirstName:
		r.profile.FirstName = value
	case domain.FieldLastName:
		r.profile.LastName = value
	case domain.FieldEmail:
		r.profile.Email = value
	default:
		// Unknown fields are ignored rather than rejected; the settings
		// form only ever submits the three known fields.
	}
	return nil
}
