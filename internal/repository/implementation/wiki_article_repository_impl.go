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

type WikiArticleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WikiArticleMapper
}

func NewWikiArticleRepository(db *gorm.DB) contract.WikiArticleRepository {
	return &WikiArticleRepositoryImpl{
		db:     db,
		mapper: mapper.NewWikiArticleMapper(),
	}
}

func (r *WikiArticleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WikiArticleRepositoryImpl) Create(ctx context.Context, article *entity.WikiArticle) error {
	m := r.mapper.ToModel(article)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.ToEntity(m)
	return nil
}

func (r *WikiArticleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WikiArticle, error) {
	var m model.WikiArticle
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WikiArticleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WikiArticle, error) {
	var models []*model.WikiArticle
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
