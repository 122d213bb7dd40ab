package contract

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
)

type PestAlertRepository interface {
	Create(ctx context.Context, pest *entity.PestAlert) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PestAlert, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PestAlert, error)
}
