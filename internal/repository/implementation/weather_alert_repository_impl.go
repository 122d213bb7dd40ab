package implementation

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/mapper"
	"kisaan-academy-be/internal/model"
	"kisaan-academy-be/internal/repository/contract"
	"kisaan-academy-be/internal/repository/specification"

	"gorm.io/gorm"
)

type WeatherAlertRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WeatherAlertMapper
}

func NewWeatherAlertRepository(db *gorm.DB) contract.WeatherAlertRepository {
	return &WeatherAlertRepositoryImpl{
		db:     db,
		mapper: mapper.NewWeatherAlertMapper(),
	}
}

func (r *WeatherAlertRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WeatherAlertRepositoryImpl) Create(ctx context.Context, alert *entity.WeatherAlert) error {
	m := r.mapper.ToModel(alert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.ToEntity(m)
	return nil
}

func (r *WeatherAlertRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WeatherAlert, error) {
	var models []*model.WeatherAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WeatherAlertRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WeatherAlert{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
