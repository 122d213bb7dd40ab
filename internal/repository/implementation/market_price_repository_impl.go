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

type MarketPriceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MarketPriceMapper
}

func NewMarketPriceRepository(db *gorm.DB) contract.MarketPriceRepository {
	return &MarketPriceRepositoryImpl{
		db:     db,
		mapper: mapper.NewMarketPriceMapper(),
	}
}

func (r *MarketPriceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MarketPriceRepositoryImpl) Create(ctx context.Context, price *entity.MarketPrice) error {
	m := r.mapper.ToModel(price)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*price = *r.mapper.ToEntity(m)
	return nil
}

func (r *MarketPriceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MarketPrice, error) {
	var m model.MarketPrice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MarketPriceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MarketPrice, error) {
	var models []*model.MarketPrice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MarketPriceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MarketPrice{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
