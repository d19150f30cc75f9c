package app

import (
	"context"

	"entrust_service/internal/chat/domain"
	"entrust_service/internal/chat/repository"
	errprocess "entrust_service/pkg/err"
)

// RoomUseCase 兩人聊天室
type RoomUseCase struct {
	roomRepo repository.RoomRepository
}

// NewRoomUseCase create RoomUseCase
func NewRoomUseCase(roomRepo repository.RoomRepository) *RoomUseCase {
	return &RoomUseCase{roomRepo: roomRepo}
}

// Open derive the room of uid and peer and register the pairing
func (uc *RoomUseCase) Open(ctx context.Context, uid, peer int64) (*domain.ChatWith, error) {
	if peer <= 0 {
		return nil, errprocess.New(errprocess.KindValidation, "Parameter Error: peer_id")
	}
	if uid == peer {
		return nil, errprocess.New(errprocess.KindValidation, "can't chat with yourself")
	}
	cw := domain.NewChatWith(uid, peer)
	if err := uc.roomRepo.Register(ctx, cw); err != nil {
		return nil, err
	}
	return cw, nil
}

// Rooms every room of uid
func (uc *RoomUseCase) Rooms(ctx context.Context, uid int64) ([]domain.ChatWith, error) {
	return uc.roomRepo.FindByUser(ctx, uid)
}
