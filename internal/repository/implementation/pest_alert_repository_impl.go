package implementation

import (
	"context"
	"errors"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/mapper"
	"kisaan-academy-be/internal/model"
	"kisaan-academy-be/internal/repository/contract"
	"kisaan-academy-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PestAlertRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PestAlertMapper
}

func NewPestAlertRepository(db *gorm.DB) contract.PestAlertRepository {
	return &PestAlertRepositoryImpl{
		db:     db,
		mapper: mapper.NewPestAlertMapper(),
	}
}

func (r *PestAlertRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PestAlertRepositoryImpl) Create(ctx context.Context, pest *entity.PestAlert) error {
	m := r.mapper.ToModel(pest)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pest = *r.mapper.ToEntity(m)
	return nil
}

func (r *PestAlertRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PestAlert, error) {
	var m model.PestAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PestAlertRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PestAlert, error) {
	var models []*model.PestAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
