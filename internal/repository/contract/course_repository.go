package contract

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
)

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error)
}
