package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/portfolio-dev/portfolio/internal/models"
)

// Memory implements Repository entirely in process memory. It backs the
// handler and client tests, which exercise the full request lifecycle
// without a database.
type Memory[M any] struct {
	mu    sync.Mutex
	next  uint
	items map[uint]*M
	order []uint
}

func NewMemory[M any]() *Memory[M] {
	return &Memory[M]{items: make(map[uint]*M)}
}

func (s *Memory[M]) Create(ctx context.Context, m *M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := any(m).(record)

	s.next++
	rec.SetID(s.next)
	rec.Stamp(time.Now())

	copied := *m
	s.items[s.next] = &copied
	s.order = append(s.order, s.next)

	return nil
}

func (s *Memory[M]) List(ctx context.Context) ([]M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]M, 0, len(s.order))

	for _, id := range s.order {
		out = append(out, *s.items[id])
	}

	return out, nil
}

func (s *Memory[M]) Get(ctx context.Context, id uint) (*M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[id]

	if !ok {
		return nil, ErrNotFound
	}

	copied := *m

	return &copied, nil
}

func (s *Memory[M]) First(ctx context.Context) (*M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == 0 {
		return nil, ErrNotFound
	}

	copied := *s.items[s.order[0]]

	return &copied, nil
}

func (s *Memory[M]) Save(ctx context.Context, m *M) error {
	rec := any(m).(record)

	if rec.GetID() == 0 {
		return s.Create(ctx, m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.Stamp(time.Now())

	copied := *m

	if _, ok := s.items[rec.GetID()]; !ok {
		s.items[rec.GetID()] = &copied
		s.order = append(s.order, rec.GetID())
		return nil
	}

	s.items[rec.GetID()] = &copied

	return nil
}

func (s *Memory[M]) Delete(ctx context.Context, m *M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := any(m).(record).GetID()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}

	delete(s.items, id)

	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *Memory[M]) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.order))
	s.items = make(map[uint]*M)
	s.order = nil

	return n, nil
}

func (s *Memory[M]) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.order)), nil
}

// MemoryUsers enforces the unique email index the database would.
type MemoryUsers struct {
	*Memory[models.User]
}

func (s *MemoryUsers) Create(ctx context.Context, u *models.User) error {
	if existing, err := s.FindByEmail(ctx, u.Email); err == nil && existing != nil {
		return ErrDuplicate
	}

	return s.Memory.Create(ctx, u)
}

func (s *MemoryUsers) Save(ctx context.Context, u *models.User) error {
	if existing, err := s.FindByEmail(ctx, u.Email); err == nil && existing.ID != u.ID {
		return ErrDuplicate
	}

	return s.Memory.Save(ctx, u)
}

func (s *MemoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := s.List(ctx)

	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}

	return nil, ErrNotFound
}

// NewMemoryStores builds the in-memory repository set.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:      &MemoryUsers{NewMemory[models.User]()},
		Contacts:   NewMemory[models.Contact](),
		Projects:   NewMemory[models.Project](),
		Educations: NewMemory[models.Education](),
		Services:   NewMemory[models.Service](),
		Infos:      NewMemory[models.PortfolioInfo](),
	}
}
