package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRoomID room id is not the canonical "{low}-{high}" of two distinct positive uids
var ErrInvalidRoomID = errors.New("invalid room id")

// RoomID canonical id of the conversation between uid1 and uid2,
// RoomID(a, b) == RoomID(b, a). uids are positive, ParseRoomID rejects anything else.
func RoomID(uid1, uid2 int64) string {
	if uid1 > uid2 {
		uid1, uid2 = uid2, uid1
	}
	return fmt.Sprintf("%d-%d", uid1, uid2)
}

// ParseRoomID split a room id back into its two uids, low first
func ParseRoomID(roomID string) (int64, int64, error) {
	lowStr, highStr, ok := strings.Cut(roomID, "-")
	if !ok {
		return 0, 0, ErrInvalidRoomID
	}
	low, err := strconv.ParseInt(lowStr, 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidRoomID
	}
	high, err := strconv.ParseInt(highStr, 10, 64)
	if err != nil || low <= 0 || low >= high {
		return 0, 0, ErrInvalidRoomID
	}
	// "02-5", "+2-5" parse fine but would address another set of keys
	if RoomID(low, high) != roomID {
		return 0, 0, ErrInvalidRoomID
	}
	return low, high, nil
}

// IsParticipant uid is one side of roomID
func IsParticipant(roomID string, uid int64) bool {
	low, high, err := ParseRoomID(roomID)
	if err != nil {
		return false
	}
	return uid == low || uid == high
}

// Peer the other side of roomID
func Peer(roomID string, uid int64) (int64, error) {
	low, high, err := ParseRoomID(roomID)
	if err != nil {
		return 0, err
	}
	switch uid {
	case low:
		return high, nil
	case high:
		return low, nil
	}
	return 0, ErrInvalidRoomID
}

// ChatWith 兩人聊天室的配對紀錄
type ChatWith struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    string    `gorm:"size:64;uniqueIndex" json:"room_id"`
	LowUID    int64     `gorm:"index" json:"low_uid"`
	HighUID   int64     `gorm:"index" json:"high_uid"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChatWith pairing record of uid1 and uid2
func NewChatWith(uid1, uid2 int64) *ChatWith {
	if uid1 > uid2 {
		uid1, uid2 = uid2, uid1
	}
	return &ChatWith{
		RoomID:  RoomID(uid1, uid2),
		LowUID:  uid1,
		HighUID: uid2,
	}
}
