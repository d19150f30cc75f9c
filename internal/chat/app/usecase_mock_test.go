package app

import (
	"context"
	"sync"

	"entrust_service/internal/chat/domain"
	"entrust_service/internal/chat/repository"

	"github.com/stretchr/testify/mock"
)

// MockRoomRepository Mock RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

// AutoMigrate mock migrate
func (m *MockRoomRepository) AutoMigrate() error {
	return m.Called().Error(0)
}

// Register mock register pairing
func (m *MockRoomRepository) Register(ctx context.Context, cw *domain.ChatWith) error {
	return m.Called(ctx, cw).Error(0)
}

// FindByUser mock find rooms of uid
func (m *MockRoomRepository) FindByUser(ctx context.Context, uid int64) ([]domain.ChatWith, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChatWith), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMessageRepository Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

// Append mock append
func (m *MockMessageRepository) Append(ctx context.Context, roomID, writer, date, message string) error {
	return m.Called(ctx, roomID, writer, date, message).Error(0)
}

// List mock list
func (m *MockMessageRepository) List(ctx context.Context, roomID string, limit, offset int64) ([]domain.MessageRecord, error) {
	args := m.Called(ctx, roomID, limit, offset)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.MessageRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

// Lengths mock lengths
func (m *MockMessageRepository) Lengths(ctx context.Context, roomID string) (repository.Lengths, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(repository.Lengths), args.Error(1)
}

// MockPublisher Mock Publisher
type MockPublisher struct {
	mock.Mock
}

// Publish mock publisher
func (m *MockPublisher) Publish(ctx context.Context, channel string, n domain.Notification) error {
	return m.Called(ctx, channel, n).Error(0)
}

// memoryMessageRepository in-memory MessageRepository with redis LRANGE index rules
type memoryMessageRepository struct {
	mu    sync.Mutex
	lists map[string][]string
}

func newMemoryMessageRepository() *memoryMessageRepository {
	return &memoryMessageRepository{lists: map[string][]string{}}
}

func (r *memoryMessageRepository) Append(_ context.Context, roomID, writer, date, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.push(domain.SequenceKey(roomID, domain.PropertyWriters), writer)
	r.push(domain.SequenceKey(roomID, domain.PropertyDates), date)
	r.push(domain.SequenceKey(roomID, domain.PropertyMessages), message)
	return nil
}

func (r *memoryMessageRepository) push(key, v string) {
	r.lists[key] = append(r.lists[key], v)
}

func (r *memoryMessageRepository) List(_ context.Context, roomID string, limit, offset int64) ([]domain.MessageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws := lrange(r.lists[domain.SequenceKey(roomID, domain.PropertyWriters)], offset, limit)
	ms := lrange(r.lists[domain.SequenceKey(roomID, domain.PropertyMessages)], offset, limit)
	ds := lrange(r.lists[domain.SequenceKey(roomID, domain.PropertyDates)], offset, limit)
	if len(ws) != len(ms) || len(ms) != len(ds) {
		return nil, repository.ErrMisaligned
	}
	records := make([]domain.MessageRecord, 0, len(ws))
	for i := range ws {
		records = append(records, domain.MessageRecord{Writer: ws[i], Message: ms[i], Date: ds[i]})
	}
	return records, nil
}

func (r *memoryMessageRepository) Lengths(_ context.Context, roomID string) (repository.Lengths, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return repository.Lengths{
		Writers:  int64(len(r.lists[domain.SequenceKey(roomID, domain.PropertyWriters)])),
		Messages: int64(len(r.lists[domain.SequenceKey(roomID, domain.PropertyMessages)])),
		Dates:    int64(len(r.lists[domain.SequenceKey(roomID, domain.PropertyDates)])),
	}, nil
}

func lrange(list []string, start, stop int64) []string {
	n := int64(len(list))
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return []string{}
	}
	return append([]string{}, list[start:stop+1]...)
}

// memoryRoomRepository in-memory RoomRepository
type memoryRoomRepository struct {
	mu    sync.Mutex
	rooms map[string]domain.ChatWith
}

func newMemoryRoomRepository() *memoryRoomRepository {
	return &memoryRoomRepository{rooms: map[string]domain.ChatWith{}}
}

func (r *memoryRoomRepository) AutoMigrate() error { return nil }

func (r *memoryRoomRepository) Register(_ context.Context, cw *domain.ChatWith) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.rooms[cw.RoomID]; ok {
		*cw = existing
		return nil
	}
	cw.ID = uint(len(r.rooms) + 1)
	r.rooms[cw.RoomID] = *cw
	return nil
}

func (r *memoryRoomRepository) FindByUser(_ context.Context, uid int64) ([]domain.ChatWith, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ChatWith, 0)
	for _, cw := range r.rooms {
		if cw.LowUID == uid || cw.HighUID == uid {
			out = append(out, cw)
		}
	}
	return out, nil
}
