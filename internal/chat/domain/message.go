package domain

import "fmt"

// Property one of the parallel per room sequences
type Property string

const (
	// PropertyWriters writer uid of each message
	PropertyWriters Property = "writers"
	// PropertyMessages message text
	PropertyMessages Property = "messages"
	// PropertyDates timestamp of each message
	PropertyDates Property = "dates"
)

// SequenceKey redis key "{roomId}:{property}"
func SequenceKey(roomID string, p Property) string {
	return fmt.Sprintf("%s:%s", roomID, p)
}

// MessageRecord one slot i across writers[i], messages[i], dates[i]
type MessageRecord struct {
	Writer  string `json:"writer"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Notification pushed to the peer after an append
type Notification struct {
	RoomID string        `json:"room_id"`
	Record MessageRecord `json:"record"`
}

// UserChannel pub/sub channel of uid
func UserChannel(uid int64) string {
	return fmt.Sprintf("chat:user:%d", uid)
}

// Action websocket response action
type Action string

const (
	// NotifyMessage a new message arrived in one of the user's rooms
	NotifyMessage Action = "notify_message"
	// Pong reply to a client "ping" text frame
	Pong Action = "pong"
)

// WSResponse websocket Response
type WSResponse struct {
	Action  Action      `json:"action"`
	Success bool        `json:"success"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}
