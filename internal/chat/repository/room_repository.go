package repository

import (
	"context"

	"entrust_service/internal/chat/domain"
	errprocess "entrust_service/pkg/err"

	"gorm.io/gorm"
)

// RoomRepository definition chat pairing records
type RoomRepository interface {
	AutoMigrate() error
	Register(ctx context.Context, cw *domain.ChatWith) error
	FindByUser(ctx context.Context, uid int64) ([]domain.ChatWith, error)
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository create RoomRepository on mysql
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ChatWith{})
}

// Register insert the pairing once, later calls load the existing row into cw
func (r *roomRepository) Register(ctx context.Context, cw *domain.ChatWith) error {
	err := r.db.WithContext(ctx).
		Where(domain.ChatWith{RoomID: cw.RoomID}).
		Attrs(domain.ChatWith{LowUID: cw.LowUID, HighUID: cw.HighUID}).
		FirstOrCreate(cw).Error
	return errprocess.Wrap(errprocess.KindStore, err, "register chat pairing")
}

// FindByUser rooms where uid is either side, newest first
func (r *roomRepository) FindByUser(ctx context.Context, uid int64) ([]domain.ChatWith, error) {
	rooms := make([]domain.ChatWith, 0)
	err := r.db.WithContext(ctx).
		Where("low_uid = ? OR high_uid = ?", uid, uid).
		Order("created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, errprocess.Wrap(errprocess.KindStore, err, "find rooms")
	}
	return rooms, nil
}
