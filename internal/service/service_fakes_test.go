package service

import (
	"context"

	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/contract"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"
)

// In-memory repository fakes. Specifications are ignored; each fake
// returns whatever rows the test seeded it with.

type fakeMarketPriceRepo struct {
	rows    []*entity.MarketPrice
	oneRow  *entity.MarketPrice
	count   int64
	countFn func(specs []specification.Specification) int64
	created []*entity.MarketPrice
}

func (f *fakeMarketPriceRepo) Create(_ context.Context, price *entity.MarketPrice) error {
	f.created = append(f.created, price)
	return nil
}

func (f *fakeMarketPriceRepo) FindOne(context.Context, ...specification.Specification) (*entity.MarketPrice, error) {
	return f.oneRow, nil
}

func (f *fakeMarketPriceRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.MarketPrice, error) {
	return f.rows, nil
}

func (f *fakeMarketPriceRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	if f.countFn != nil {
		return f.countFn(specs), nil
	}
	return f.count, nil
}

type fakeWeatherAlertRepo struct {
	rows    []*entity.WeatherAlert
	count   int64
	countFn func(specs []specification.Specification) int64
	created []*entity.WeatherAlert
}

func (f *fakeWeatherAlertRepo) Create(_ context.Context, alert *entity.WeatherAlert) error {
	f.created = append(f.created, alert)
	return nil
}

func (f *fakeWeatherAlertRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.WeatherAlert, error) {
	return f.rows, nil
}

func (f *fakeWeatherAlertRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	if f.countFn != nil {
		return f.countFn(specs), nil
	}
	return f.count, nil
}

type fakePestAlertRepo struct {
	rows   []*entity.PestAlert
	oneRow *entity.PestAlert
}

func (f *fakePestAlertRepo) Create(context.Context, *entity.PestAlert) error {
	return nil
}

func (f *fakePestAlertRepo) FindOne(context.Context, ...specification.Specification) (*entity.PestAlert, error) {
	return f.oneRow, nil
}

func (f *fakePestAlertRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.PestAlert, error) {
	return f.rows, nil
}

type fakeChatHistoryRepo struct {
	created []*entity.ChatHistory
}

func (f *fakeChatHistoryRepo) Create(_ context.Context, row *entity.ChatHistory) error {
	f.created = append(f.created, row)
	return nil
}

func (f *fakeChatHistoryRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ChatHistory, error) {
	return f.created, nil
}

type fakeUserRepo struct {
	oneRow  *entity.User
	created []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindOne(context.Context, ...specification.Specification) (*entity.User, error) {
	return f.oneRow, nil
}

func (f *fakeUserRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	marketPrices  *fakeMarketPriceRepo
	weatherAlerts *fakeWeatherAlertRepo
	pestAlerts    *fakePestAlertRepo
	chatHistory   *fakeChatHistoryRepo
	users         *fakeUserRepo
}

func (f *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error               { return nil }
func (f *fakeUnitOfWork) Rollback() error             { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return f.users
}

func (f *fakeUnitOfWork) CourseRepository() contract.CourseRepository {
	return nil
}

func (f *fakeUnitOfWork) MarketPriceRepository() contract.MarketPriceRepository {
	return f.marketPrices
}

func (f *fakeUnitOfWork) WeatherAlertRepository() contract.WeatherAlertRepository {
	return f.weatherAlerts
}

func (f *fakeUnitOfWork) PestAlertRepository() contract.PestAlertRepository {
	return f.pestAlerts
}

func (f *fakeUnitOfWork) WikiArticleRepository() contract.WikiArticleRepository {
	return nil
}

func (f *fakeUnitOfWork) ChatHistoryRepository() contract.ChatHistoryRepository {
	return f.chatHistory
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory() (*fakeRepositoryFactory, *fakeUnitOfWork) {
	uow := &fakeUnitOfWork{
		marketPrices:  &fakeMarketPriceRepo{},
		weatherAlerts: &fakeWeatherAlertRepo{},
		pestAlerts:    &fakePestAlertRepo{},
		chatHistory:   &fakeChatHistoryRepo{},
		users:         &fakeUserRepo{},
	}
	return &fakeRepositoryFactory{uow: uow}, uow
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
