package repository

import (
	"context"
	"testing"
	"time"

	"entrust_service/internal/chat/domain"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomRepo(t *testing.T) RoomRepository {
	t.Helper()
	if testDB == nil {
		t.Skip("mysql container disabled")
	}
	require.NoError(t, testDB.Exec("DELETE FROM chat_withs").Error)
	return NewRoomRepository(testDB)
}

func chatWithAt(uid1, uid2 int64, createdAt time.Time) *domain.ChatWith {
	cw := domain.NewChatWith(uid1, uid2)
	cw.CreatedAt = createdAt
	return cw
}

func TestRoomRepository_RegisterIsIdempotent(t *testing.T) {
	repo := newRoomRepo(t)
	ctx := context.Background()

	first := domain.NewChatWith(5, 2)
	require.NoError(t, repo.Register(ctx, first))
	require.NotZero(t, first.ID)

	// same pair from the other side
	second := domain.NewChatWith(2, 5)
	require.NoError(t, repo.Register(ctx, second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "2-5", second.RoomID)

	var count int64
	require.NoError(t, testDB.Model(&domain.ChatWith{}).Where("room_id = ?", "2-5").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRoomRepository_FindByUser(t *testing.T) {
	repo := newRoomRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

	require.NoError(t, repo.Register(ctx, chatWithAt(2, 5, base)))
	require.NoError(t, repo.Register(ctx, chatWithAt(5, 9, base.Add(2*time.Hour))))
	require.NoError(t, repo.Register(ctx, chatWithAt(1, 5, base.Add(time.Hour))))
	require.NoError(t, repo.Register(ctx, chatWithAt(2, 9, base.Add(3*time.Hour))))

	rooms, err := repo.FindByUser(ctx, 5)
	require.NoError(t, err)
	// 5 is high_uid in 2-5 and 1-5, low_uid in 5-9
	assert.Equal(t, []string{"5-9", "1-5", "2-5"}, lo.Map(rooms, func(cw domain.ChatWith, _ int) string {
		return cw.RoomID
	}))

	rooms, err = repo.FindByUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2-9", "2-5"}, lo.Map(rooms, func(cw domain.ChatWith, _ int) string {
		return cw.RoomID
	}))

	rooms, err = repo.FindByUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}
