package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomID_Symmetric(t *testing.T) {
	pairs := [][2]int64{{5, 2}, {2, 5}, {0, 0}, {-3, 7}, {100, 99}, {1, 1000000}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, RoomID(a, b), RoomID(b, a))
	}
	assert.Equal(t, "2-5", RoomID(5, 2))
	assert.Equal(t, "7-7", RoomID(7, 7))
}

func TestParseRoomID_RoundTrip(t *testing.T) {
	for _, p := range [][2]int64{{5, 2}, {1, 1000000}, {100, 99}} {
		low, high, err := ParseRoomID(RoomID(p[0], p[1]))
		require.NoError(t, err)
		assert.Equal(t, RoomID(p[0], p[1]), RoomID(low, high))
	}

	// only distinct positive uids have a room
	for _, p := range [][2]int64{{7, 7}, {0, 3}, {-3, 7}} {
		_, _, err := ParseRoomID(RoomID(p[0], p[1]))
		assert.ErrorIs(t, err, ErrInvalidRoomID, RoomID(p[0], p[1]))
	}
}

func TestParseRoomID(t *testing.T) {
	low, high, err := ParseRoomID("2-5")
	require.NoError(t, err)
	assert.Equal(t, int64(2), low)
	assert.Equal(t, int64(5), high)

	badIDs := []string{
		"", "25", "a-5", "2-b", "5-2",
		"02-5", "+2-5", "2-05", "2-+5", " 2-5", "2-5 ",
		"2-2", "0-5", "-3-7", "2-5-7",
	}
	for _, bad := range badIDs {
		_, _, err := ParseRoomID(bad)
		assert.ErrorIs(t, err, ErrInvalidRoomID, bad)
	}
}

func TestIsParticipantAndPeer(t *testing.T) {
	assert.True(t, IsParticipant("2-5", 2))
	assert.True(t, IsParticipant("2-5", 5))
	assert.False(t, IsParticipant("2-5", 3))
	assert.False(t, IsParticipant("garbage", 2))

	peer, err := Peer("2-5", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), peer)

	_, err = Peer("2-5", 9)
	assert.Error(t, err)
}

func TestNewChatWith(t *testing.T) {
	cw := NewChatWith(9, 3)
	assert.Equal(t, "3-9", cw.RoomID)
	assert.Equal(t, int64(3), cw.LowUID)
	assert.Equal(t, int64(9), cw.HighUID)
}

func TestSequenceKey(t *testing.T) {
	assert.Equal(t, "2-5:writers", SequenceKey("2-5", PropertyWriters))
	assert.Equal(t, "2-5:messages", SequenceKey("2-5", PropertyMessages))
	assert.Equal(t, "2-5:dates", SequenceKey("2-5", PropertyDates))
	assert.Equal(t, "chat:user:5", UserChannel(5))
}
