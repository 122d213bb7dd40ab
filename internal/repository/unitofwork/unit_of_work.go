package unitofwork

import (
	"context"

	"kisaan-academy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CourseRepository() contract.CourseRepository
	MarketPriceRepository() contract.MarketPriceRepository
	WeatherAlertRepository() contract.WeatherAlertRepository
	PestAlertRepository() contract.PestAlertRepository
	WikiArticleRepository() contract.WikiArticleRepository
	ChatHistoryRepository() contract.ChatHistoryRepository
}
