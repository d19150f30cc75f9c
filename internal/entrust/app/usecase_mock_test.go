package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"entrust_service/internal/entrust/domain"
	errprocess "entrust_service/pkg/err"

	"github.com/stretchr/testify/mock"
)

// MockEntrustRepository Mock EntrustRepository
type MockEntrustRepository struct {
	mock.Mock
}

// AutoMigrate mock migrate
func (m *MockEntrustRepository) AutoMigrate() error {
	return m.Called().Error(0)
}

// List mock list
func (m *MockEntrustRepository) List(ctx context.Context, limit, offset int) ([]domain.Entrust, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Entrust), args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID mock get
func (m *MockEntrustRepository) GetByID(ctx context.Context, eid int64) (*domain.Entrust, error) {
	args := m.Called(ctx, eid)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Entrust), args.Error(1)
	}
	return nil, args.Error(1)
}

// Create mock create
func (m *MockEntrustRepository) Create(ctx context.Context, e *domain.Entrust) error {
	return m.Called(ctx, e).Error(0)
}

// Update mock update
func (m *MockEntrustRepository) Update(ctx context.Context, e *domain.Entrust) error {
	return m.Called(ctx, e).Error(0)
}

// Delete mock delete
func (m *MockEntrustRepository) Delete(ctx context.Context, eid int64) error {
	return m.Called(ctx, eid).Error(0)
}

// ListEntrustablePets mock pets
func (m *MockEntrustRepository) ListEntrustablePets(ctx context.Context, limit, offset int) ([]domain.Pet, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Pet), args.Error(1)
	}
	return nil, args.Error(1)
}

// Info mock info
func (m *MockEntrustRepository) Info(ctx context.Context, today string) (domain.Info, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(domain.Info), args.Error(1)
}

// MockInfoCache Mock RedisRepository[domain.Info]
type MockInfoCache struct {
	mock.Mock
}

// Set mock set
func (m *MockInfoCache) Set(ctx context.Context, key string, value domain.Info, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

// Get mock get
func (m *MockInfoCache) Get(ctx context.Context, key string) (domain.Info, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.Info), args.Error(1)
}

// Del mock del
func (m *MockInfoCache) Del(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// memoryEntrustRepository in-memory EntrustRepository for handler tests
type memoryEntrustRepository struct {
	mu       sync.Mutex
	nextID   int64
	entrusts map[int64]domain.Entrust
	pets     []domain.Pet
}

func newMemoryEntrustRepository(pets ...domain.Pet) *memoryEntrustRepository {
	return &memoryEntrustRepository{entrusts: map[int64]domain.Entrust{}, pets: pets}
}

func (r *memoryEntrustRepository) AutoMigrate() error { return nil }

func (r *memoryEntrustRepository) List(_ context.Context, limit, offset int) ([]domain.Entrust, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Entrust, 0, len(r.entrusts))
	for _, e := range r.entrusts {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EID > out[j].EID })
	return page(out, limit, offset), nil
}

func (r *memoryEntrustRepository) GetByID(_ context.Context, eid int64) (*domain.Entrust, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entrusts[eid]
	if !ok {
		return nil, errprocess.New(errprocess.KindNotFound, "entrust not found")
	}
	return &e, nil
}

func (r *memoryEntrustRepository) Create(_ context.Context, e *domain.Entrust) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	e.EID = r.nextID
	r.entrusts[e.EID] = *e
	return nil
}

func (r *memoryEntrustRepository) Update(_ context.Context, e *domain.Entrust) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entrusts[e.EID] = *e
	return nil
}

func (r *memoryEntrustRepository) Delete(_ context.Context, eid int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entrusts, eid)
	return nil
}

func (r *memoryEntrustRepository) ListEntrustablePets(_ context.Context, limit, offset int) ([]domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		if p.Entrustable {
			out = append(out, p)
		}
	}
	return page(out, limit, offset), nil
}

func (r *memoryEntrustRepository) Info(_ context.Context, today string) (domain.Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info := domain.Info{TotalEntrusts: int64(len(r.entrusts))}
	for _, e := range r.entrusts {
		if e.EndDate >= today {
			info.OpenEntrusts++
		}
	}
	for _, p := range r.pets {
		if p.Entrustable {
			info.EntrustablePets++
		}
	}
	return info, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
