package contract

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
)

type WeatherAlertRepository interface {
	Create(ctx context.Context, alert *entity.WeatherAlert) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WeatherAlert, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
