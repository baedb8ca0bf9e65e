// Package store provides a generic repository over the document collections.
// One implementation is backed by GORM/Postgres, another by process memory
// for tests. Store-level failures are normalized to ErrNotFound and
// ErrDuplicate so handlers can map them to HTTP statuses in one place.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/portfolio-dev/portfolio/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("already exists")
)

// Repository is the uniform contract shared by every collection.
type Repository[M any] interface {
	Create(ctx context.Context, m *M) error
	List(ctx context.Context) ([]M, error)
	Get(ctx context.Context, id uint) (*M, error)
	// First returns the oldest record of the collection, used by the
	// singleton PortfolioInfo reads.
	First(ctx context.Context) (*M, error)
	Save(ctx context.Context, m *M) error
	Delete(ctx context.Context, m *M) error
	// DeleteAll removes every record and reports how many were deleted.
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// Users extends the generic repository with the lookup the auth layer needs.
type Users interface {
	Repository[models.User]
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Stores bundles one repository per collection for injection into the router.
type Stores struct {
	Users      Users
	Contacts   Repository[models.Contact]
	Projects   Repository[models.Project]
	Educations Repository[models.Education]
	Services   Repository[models.Service]
	Infos      Repository[models.PortfolioInfo]
}

// record is satisfied by any model embedding models.BaseModel.
type record interface {
	GetID() uint
	SetID(uint)
	Stamp(time.Time)
}
