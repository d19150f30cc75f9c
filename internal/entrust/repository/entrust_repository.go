package repository

import (
	"context"
	"errors"

	"entrust_service/internal/entrust/domain"
	errprocess "entrust_service/pkg/err"

	"gorm.io/gorm"
)

// EntrustRepository definition entrust and pet storage
type EntrustRepository interface {
	AutoMigrate() error
	List(ctx context.Context, limit, offset int) ([]domain.Entrust, error)
	GetByID(ctx context.Context, eid int64) (*domain.Entrust, error)
	Create(ctx context.Context, e *domain.Entrust) error
	Update(ctx context.Context, e *domain.Entrust) error
	Delete(ctx context.Context, eid int64) error
	ListEntrustablePets(ctx context.Context, limit, offset int) ([]domain.Pet, error)
	// Info counts, an entrust is open while end_date >= today (YYYY-MM-DD)
	Info(ctx context.Context, today string) (domain.Info, error)
}

type entrustRepository struct {
	db *gorm.DB
}

// NewEntrustRepository create EntrustRepository
func NewEntrustRepository(db *gorm.DB) EntrustRepository {
	return &entrustRepository{db: db}
}

func (r *entrustRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Entrust{}, &domain.Pet{})
}

// List newest first
func (r *entrustRepository) List(ctx context.Context, limit, offset int) ([]domain.Entrust, error) {
	entrusts := make([]domain.Entrust, 0)
	err := r.db.WithContext(ctx).Order("eid DESC").Limit(limit).Offset(offset).Find(&entrusts).Error
	if err != nil {
		return nil, errprocess.Wrap(errprocess.KindStore, err, "list entrusts")
	}
	return entrusts, nil
}

func (r *entrustRepository) GetByID(ctx context.Context, eid int64) (*domain.Entrust, error) {
	var e domain.Entrust
	err := r.db.WithContext(ctx).First(&e, "eid = ?", eid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errprocess.Wrap(errprocess.KindNotFound, err, "entrust not found")
	}
	if err != nil {
		return nil, errprocess.Wrap(errprocess.KindStore, err, "get entrust")
	}
	return &e, nil
}

func (r *entrustRepository) Create(ctx context.Context, e *domain.Entrust) error {
	return errprocess.Wrap(errprocess.KindStore, r.db.WithContext(ctx).Create(e).Error, "create entrust")
}

// Update write the client editable columns of e
func (r *entrustRepository) Update(ctx context.Context, e *domain.Entrust) error {
	err := r.db.WithContext(ctx).Model(&domain.Entrust{}).Where("eid = ?", e.EID).Updates(map[string]interface{}{
		"text":       e.Text,
		"start_date": e.StartDate,
		"end_date":   e.EndDate,
		"toypayment": e.ToyPayment,
		"city_id":    e.CityID,
	}).Error
	return errprocess.Wrap(errprocess.KindStore, err, "update entrust")
}

func (r *entrustRepository) Delete(ctx context.Context, eid int64) error {
	return errprocess.Wrap(errprocess.KindStore, r.db.WithContext(ctx).Delete(&domain.Entrust{}, "eid = ?", eid).Error, "delete entrust")
}

func (r *entrustRepository) ListEntrustablePets(ctx context.Context, limit, offset int) ([]domain.Pet, error) {
	pets := make([]domain.Pet, 0)
	err := r.db.WithContext(ctx).Where("entrustable = ?", true).Order("pid ASC").Limit(limit).Offset(offset).Find(&pets).Error
	if err != nil {
		return nil, errprocess.Wrap(errprocess.KindStore, err, "list pets")
	}
	return pets, nil
}

func (r *entrustRepository) Info(ctx context.Context, today string) (domain.Info, error) {
	var info domain.Info
	db := r.db.WithContext(ctx)

	if err := db.Model(&domain.Entrust{}).Count(&info.TotalEntrusts).Error; err != nil {
		return info, errprocess.Wrap(errprocess.KindStore, err, "count entrusts")
	}
	if err := db.Model(&domain.Entrust{}).Where("end_date >= ?", today).Count(&info.OpenEntrusts).Error; err != nil {
		return info, errprocess.Wrap(errprocess.KindStore, err, "count open entrusts")
	}
	if err := db.Model(&domain.Pet{}).Where("entrustable = ?", true).Count(&info.EntrustablePets).Error; err != nil {
		return info, errprocess.Wrap(errprocess.KindStore, err, "count pets")
	}
	return info, nil
}
