package app

import (
	"context"
	"errors"
	"time"

	"entrust_service/internal/entrust/domain"
	"entrust_service/internal/entrust/repository"
	"entrust_service/pkg"
	"entrust_service/pkg/database"
	errprocess "entrust_service/pkg/err"
	"entrust_service/pkg/logger"

	"go.uber.org/zap"
)

const infoCacheKey = "entrust:info"

// EntrustUseCase 託付相關的應用服務
type EntrustUseCase interface {
	ListEntrustablePets(ctx context.Context, limit, offset int) ([]domain.Pet, error)
	GetInfo(ctx context.Context) (domain.Info, error)
	List(ctx context.Context, limit, offset int) ([]domain.Entrust, error)
	Get(ctx context.Context, eid int64) (*domain.Entrust, error)
	Create(ctx context.Context, uid int64, in domain.EntrustInput) (*domain.Entrust, error)
	Update(ctx context.Context, uid, eid int64, in domain.EntrustInput) (*domain.Entrust, error)
	Delete(ctx context.Context, uid, eid int64) error
}

type entrustUseCase struct {
	repo      repository.EntrustRepository
	infoCache database.RedisRepository[domain.Info]
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewEntrustUseCase create EntrustUseCase, infoCache may be nil
func NewEntrustUseCase(
	repo repository.EntrustRepository,
	infoCache database.RedisRepository[domain.Info],
	cacheTTL time.Duration,
) EntrustUseCase {
	return &entrustUseCase{
		repo:      repo,
		infoCache: infoCache,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

func (uc *entrustUseCase) ListEntrustablePets(ctx context.Context, limit, offset int) ([]domain.Pet, error) {
	return uc.repo.ListEntrustablePets(ctx, limit, offset)
}

// GetInfo served from redis when cached, cache errors fall back to mysql
func (uc *entrustUseCase) GetInfo(ctx context.Context) (domain.Info, error) {
	if uc.infoCache != nil {
		info, err := uc.infoCache.Get(ctx, infoCacheKey)
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, database.ErrCacheMiss) {
			logger.Log.Warn("info cache get", zap.Error(err))
		}
	}

	info, err := uc.repo.Info(ctx, uc.now().Format(pkg.DateLayout))
	if err != nil {
		return info, err
	}

	if uc.infoCache != nil && uc.cacheTTL > 0 {
		if err := uc.infoCache.Set(ctx, infoCacheKey, info, uc.cacheTTL); err != nil {
			logger.Log.Warn("info cache set", zap.Error(err))
		}
	}
	return info, nil
}

func (uc *entrustUseCase) List(ctx context.Context, limit, offset int) ([]domain.Entrust, error) {
	return uc.repo.List(ctx, limit, offset)
}

func (uc *entrustUseCase) Get(ctx context.Context, eid int64) (*domain.Entrust, error) {
	return uc.repo.GetByID(ctx, eid)
}

func (uc *entrustUseCase) Create(ctx context.Context, uid int64, in domain.EntrustInput) (*domain.Entrust, error) {
	if err := checkPeriod(in); err != nil {
		return nil, err
	}

	e := &domain.Entrust{
		UID:         uid,
		CreatedDate: pkg.FormatTime(uc.now()),
	}
	e.Apply(in)

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.invalidateInfo(ctx)

	logger.Log.Info("entrust created", zap.Int64("eid", e.EID), zap.Int64("uid", uid))
	return e, nil
}

func (uc *entrustUseCase) Update(ctx context.Context, uid, eid int64, in domain.EntrustInput) (*domain.Entrust, error) {
	if err := checkPeriod(in); err != nil {
		return nil, err
	}
	e, err := uc.owned(ctx, uid, eid)
	if err != nil {
		return nil, err
	}

	e.Apply(in)
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.invalidateInfo(ctx)
	return e, nil
}

func (uc *entrustUseCase) Delete(ctx context.Context, uid, eid int64) error {
	if _, err := uc.owned(ctx, uid, eid); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, eid); err != nil {
		return err
	}
	uc.invalidateInfo(ctx)

	logger.Log.Info("entrust deleted", zap.Int64("eid", eid), zap.Int64("uid", uid))
	return nil
}

// owned load eid and check uid created it
func (uc *entrustUseCase) owned(ctx context.Context, uid, eid int64) (*domain.Entrust, error) {
	e, err := uc.repo.GetByID(ctx, eid)
	if err != nil {
		return nil, err
	}
	if !e.IsOwner(uid) {
		return nil, errprocess.Set(errprocess.KindForbidden, "Authentication Error!")
	}
	return e, nil
}

func (uc *entrustUseCase) invalidateInfo(ctx context.Context) {
	if uc.infoCache == nil {
		return
	}
	if err := uc.infoCache.Del(ctx, infoCacheKey); err != nil {
		logger.Log.Warn("info cache del", zap.Error(err))
	}
}

func checkPeriod(in domain.EntrustInput) error {
	start, err := pkg.ParseDate(in.StartDate)
	if err != nil {
		return errprocess.Wrap(errprocess.KindValidation, err, "Parameter Error: startDate")
	}
	end, err := pkg.ParseDate(in.EndDate)
	if err != nil {
		return errprocess.Wrap(errprocess.KindValidation, err, "Parameter Error: endDate")
	}
	if end.Before(start) {
		return errprocess.New(errprocess.KindValidation, "Parameter Error: endDate before startDate")
	}
	return nil
}
