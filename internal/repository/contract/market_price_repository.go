package contract

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
)

type MarketPriceRepository interface {
	Create(ctx context.Context, price *entity.MarketPrice) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MarketPrice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MarketPrice, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
