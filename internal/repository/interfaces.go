package repository

import (
	"context"
	"errors"

	"github.com/nexuscrm/nexus/internal/domain"
)

// ErrNotFound is returned when a lookup by ID matches no record.
var ErrNotFound = errors.New("record not found")

// Versioned exposes a monotonically increasing collection version.
// The version changes on every mutation and is the memoization key for
// derived metrics: equal versions guarantee an identical collection.
type Versioned interface {
	Version() uint64
}

// DealRepo stores the deal collection in insertion order.
type DealRepo interface {
	Versioned
	List(ctx context.Context) ([]domain.Deal, error)
	GetByID(ctx context.Context, id string) (domain.Deal, error)
	Append(ctx context.Context, d domain.Deal) error
	SetStage(ctx context.Context, id string, stage domain.DealStage) error
}

// LeadRepo stores the lead collection in insertion order.
type LeadRepo interface {
	Versioned
	List(ctx context.Context) ([]domain.Lead, error)
	Append(ctx context.Context, l domain.Lead) error
}

// TaskRepo stores the task collection in insertion order.
type TaskRepo interface {
	Versioned
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Append(ctx context.Context, t domain.Task) error
	SetCompleted(ctx context.Context, id string, completed bool) error
}

// ContactRepo is a read-mostly directory keyed by contact ID.
type ContactRepo interface {
	List(ctx context.Context) ([]domain.Contact, error)
	GetByID(ctx context.Context, id string) (domain.Contact, error)
}

// CompanyRepo is a read-only company directory.
type CompanyRepo interface {
	List(ctx context.Context) ([]domain.Company, error)
}

// ActivityRepo is a read-only activity feed.
type ActivityRepo interface {
	List(ctx context.Context) ([]domain.Activity, error)
}

// DocumentRepo is a read-only document listing.
type DocumentRepo interface {
	List(ctx context.Context) ([]domain.Document, error)
}

// ProfileRepo holds the singleton user profile.
type ProfileRepo interface {
	Get(ctx context.Context) (domain.UserProfile, error)
	SetField(ctx context.Context, field domain.ProfileField, value string) error
}
