package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/portfolio-dev/portfolio/internal/models"
	"gorm.io/gorm"
)

// GormStore implements Repository on top of a GORM connection.
type GormStore[M any] struct {
	db *gorm.DB
}

func NewGormStore[M any](db *gorm.DB) *GormStore[M] {
	return &GormStore[M]{db: db}
}

func (s *GormStore[M]) Create(ctx context.Context, m *M) error {
	return translate(s.db.WithContext(ctx).Create(m).Error)
}

func (s *GormStore[M]) List(ctx context.Context) ([]M, error) {
	var out []M

	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, translate(err)
	}

	return out, nil
}

func (s *GormStore[M]) Get(ctx context.Context, id uint) (*M, error) {
	var m M

	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}

	return &m, nil
}

func (s *GormStore[M]) First(ctx context.Context) (*M, error) {
	var m M

	if err := s.db.WithContext(ctx).First(&m).Error; err != nil {
		return nil, translate(err)
	}

	return &m, nil
}

func (s *GormStore[M]) Save(ctx context.Context, m *M) error {
	return translate(s.db.WithContext(ctx).Save(m).Error)
}

func (s *GormStore[M]) Delete(ctx context.Context, m *M) error {
	return translate(s.db.WithContext(ctx).Delete(m).Error)
}

func (s *GormStore[M]) DeleteAll(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("1 = 1").Delete(new(M))

	return res.RowsAffected, translate(res.Error)
}

func (s *GormStore[M]) Count(ctx context.Context) (int64, error) {
	var n int64

	if err := s.db.WithContext(ctx).Model(new(M)).Count(&n).Error; err != nil {
		return 0, translate(err)
	}

	return n, nil
}

// GormUsers adds the email lookup used by signin and signup.
type GormUsers struct {
	*GormStore[models.User]
}

func (s *GormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// NewStores builds the GORM-backed repository set.
func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:      &GormUsers{NewGormStore[models.User](db)},
		Contacts:   NewGormStore[models.Contact](db),
		Projects:   NewGormStore[models.Project](db),
		Educations: NewGormStore[models.Education](db),
		Services:   NewGormStore[models.Service](db),
		Infos:      NewGormStore[models.PortfolioInfo](db),
	}
}

// translate maps driver and ORM errors onto the store sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicate
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	return err
}
