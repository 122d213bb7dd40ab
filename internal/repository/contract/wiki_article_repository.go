package contract

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
)

type WikiArticleRepository interface {
	Create(ctx context.Context, article *entity.WikiArticle) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WikiArticle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WikiArticle, error)
}
