package service

import (
	"context"
	"errors"

	"github.com/nexuscrm/nexus/internal/contract"
	"github.com/nexuscrm/nexus/internal/domain"
)

// ErrEmptyTitle rejects create operations with a blank title. The quick-add
// form surfaces this instead of silently dropping the input.
var ErrEmptyTitle = errors.New("title must not be empty")

type DealService interface {
	List(ctx context.Context) ([]domain.Deal, error)
	// Create appends a new deal in the Discovery stage. Returns
	// ErrEmptyTitle when title is blank; an unparseable value is treated
	// as zero, matching the quick-add form's loose numeric field.
	Create(ctx context.Context, title, value string) (*domain.Deal, error)
	// ChangeStage moves a deal to any stage; no transition rules apply.
	// Unknown deal IDs are a silent no-op.
	ChangeStage(ctx context.Context, dealID string, stage domain.DealStage) error
}

type LeadService interface {
	List(ctx context.Context) ([]domain.Lead, error)
	// Create appends a lead whose contact snapshot clones the placeholder
	// contact with its name replaced by name. Returns ErrEmptyTitle when
	// name is blank.
	Create(ctx context.Context, name string) (*domain.Lead, error)
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, title string) (*domain.Task, error)
	// Toggle flips the completed flag. Unknown IDs are a silent no-op.
	Toggle(ctx context.Context, taskID string) error
}

// DirectoryService serves the read-only collections.
type DirectoryService interface {
	Contacts(ctx context.Context) ([]domain.Contact, error)
	// ContactByID resolves a contact reference. A dangling ID yields
	// ok=false and a zero contact; callers render a placeholder.
	ContactByID(ctx context.Context, id string) (domain.Contact, bool)
	Companies(ctx context.Context) ([]domain.Company, error)
	Activities(ctx context.Context) ([]domain.Activity, error)
	Documents(ctx context.Context) ([]domain.Document, error)
}

type ProfileService interface {
	Get(ctx context.Context) (domain.UserProfile, error)
	Update(ctx context.Context, field domain.ProfileField, value string) error
}

// MetricsService derives chart and stat-card figures from the live
// collections. Snapshot is memoized on the collection versions: calling it
// twice without an intervening mutation returns the identical pointer.
type MetricsService interface {
	Snapshot(ctx context.Context) (*contract.Snapshot, error)
}
