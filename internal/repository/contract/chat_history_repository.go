package contract

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, row *entity.ChatHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatHistory, error)
}
