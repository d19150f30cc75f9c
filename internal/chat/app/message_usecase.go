package app

import (
	"context"
	"strconv"
	"time"

	"entrust_service/internal/chat/domain"
	"entrust_service/internal/chat/repository"
	"entrust_service/pkg"
	errprocess "entrust_service/pkg/err"
	"entrust_service/pkg/logger"

	"go.uber.org/zap"
)

// Publisher push a notification to a channel
type Publisher interface {
	Publish(ctx context.Context, channel string, n domain.Notification) error
}

// Subscriber receive notifications of a channel until ctx ends
type Subscriber interface {
	Subscribe(ctx context.Context, channel string, handler func(n domain.Notification)) error
}

// MessageUseCase 負責處理聊天訊息
type MessageUseCase struct {
	roomRepo repository.RoomRepository
	msgRepo  repository.MessageRepository
	pub      Publisher
	now      func() time.Time
}

// NewMessageUseCase init message use case, pub may be nil
func NewMessageUseCase(
	roomRepo repository.RoomRepository,
	msgRepo repository.MessageRepository,
	pub Publisher,
) *MessageUseCase {
	return &MessageUseCase{
		roomRepo: roomRepo,
		msgRepo:  msgRepo,
		pub:      pub,
		now:      time.Now,
	}
}

// Send append a message written by writer to roomID and notify the peer
func (uc *MessageUseCase) Send(ctx context.Context, roomID string, writer int64, message string) (domain.MessageRecord, error) {
	if message == "" {
		return domain.MessageRecord{}, errprocess.New(errprocess.KindValidation, "Parameter Error: message")
	}
	peer, err := peerOf(roomID, writer)
	if err != nil {
		return domain.MessageRecord{}, err
	}

	// 第一次發話時登記聊天配對
	if err := uc.roomRepo.Register(ctx, domain.NewChatWith(writer, peer)); err != nil {
		return domain.MessageRecord{}, err
	}

	record := domain.MessageRecord{
		Writer:  strconv.FormatInt(writer, 10),
		Message: message,
		Date:    pkg.FormatTime(uc.now()),
	}
	if err := uc.msgRepo.Append(ctx, roomID, record.Writer, record.Date, record.Message); err != nil {
		return domain.MessageRecord{}, err
	}

	if uc.pub != nil {
		n := domain.Notification{RoomID: roomID, Record: record}
		if err := uc.pub.Publish(ctx, domain.UserChannel(peer), n); err != nil {
			logger.Log.Warn("publish message", zap.String("room_id", roomID), zap.Error(err))
		}
	}

	logger.Log.Debug("message sent", zap.String("room_id", roomID), zap.Int64("writer", writer))
	return record, nil
}

// List records offset..limit of roomID, requester must be a participant
func (uc *MessageUseCase) List(ctx context.Context, roomID string, requester, limit, offset int64) ([]domain.MessageRecord, error) {
	if _, err := peerOf(roomID, requester); err != nil {
		return nil, err
	}
	return uc.msgRepo.List(ctx, roomID, limit, offset)
}

// Summary sequence lengths of roomID, ErrMisaligned when they differ
func (uc *MessageUseCase) Summary(ctx context.Context, roomID string, requester int64) (repository.Lengths, error) {
	if _, err := peerOf(roomID, requester); err != nil {
		return repository.Lengths{}, err
	}
	return repository.CheckAlignment(ctx, uc.msgRepo, roomID)
}

func peerOf(roomID string, uid int64) (int64, error) {
	if _, _, err := domain.ParseRoomID(roomID); err != nil {
		return 0, errprocess.Wrap(errprocess.KindValidation, err, "Parameter Error: roomId")
	}
	peer, err := domain.Peer(roomID, uid)
	if err != nil {
		return 0, errprocess.New(errprocess.KindForbidden, "Authentication Error!")
	}
	return peer, nil
}
