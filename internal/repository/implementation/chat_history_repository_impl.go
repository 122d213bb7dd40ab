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

type ChatHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatHistoryMapper
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatHistoryMapper(),
	}
}

func (r *ChatHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatHistoryRepositoryImpl) Create(ctx context.Context, row *entity.ChatHistory) error {
	m := r.mapper.ToModel(row)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*row = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatHistory, error) {
	var models []*model.ChatHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
