package service

import (
	"context"
	"fmt"
	"time"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"
	"kisaan-academy-be/pkg/commodity"

	"github.com/google/uuid"
)

type IMarketService interface {
	List(ctx context.Context, cropName, region string, update bool) ([]*dto.MarketPriceResponse, error)
	UpdatePrices(ctx context.Context) (*dto.UpdatePricesResponse, error)
	Forecast(ctx context.Context, cropName, region string) (*dto.PriceForecastResponse, error)
}

// QuoteFetcher is the live commodity source. *commodity.Client satisfies it.
type QuoteFetcher interface {
	FetchAll(ctx context.Context) ([]*commodity.Quote, error)
}

type marketService struct {
	uowFactory unitofwork.RepositoryFactory
	client     QuoteFetcher
	log        logger.ILogger
}

func NewMarketService(uowFactory unitofwork.RepositoryFactory, client QuoteFetcher, log logger.ILogger) IMarketService {
	return &marketService{
		uowFactory: uowFactory,
		client:     client,
		log:        log,
	}
}

func (s *marketService) List(ctx context.Context, cropName, region string, update bool) ([]*dto.MarketPriceResponse, error) {
	if update {
		if _, err := s.refreshPrices(ctx); err != nil {
			s.log.Warn("MarketService", "price refresh before listing failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "recorded_at", Desc: true},
		specification.Pagination{Limit: 100},
	}
	if cropName != "" {
		specs = append(specs, specification.CropNameLike{Name: cropName})
	}
	if region != "" {
		specs = append(specs, specification.Filter("region", region))
	}

	rows, err := uow.MarketPriceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.MarketPriceResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, &dto.MarketPriceResponse{
			Id:         row.Id,
			CropName:   row.CropName,
			Region:     row.Region,
			PricePerKg: row.PricePerKg,
			MandiName:  row.MandiName,
			RecordedAt: row.RecordedAt,
		})
	}
	return response, nil
}

// refreshPrices pulls every tracked commodity and stores quotes that have
// no row for the same crop and region within the freshness window.
func (s *marketService) refreshPrices(ctx context.Context) (int, error) {
	quotes, err := s.client.FetchAll(ctx)
	if err != nil {
		return 0, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.MarketPriceRepository()
	cutoff := time.Now().Add(-time.Duration(constant.PriceFreshnessHours) * time.Hour)

	stored := 0
	for _, quote := range quotes {
		cropName := commodity.LocalCropName(quote.Slug)

		count, err := repo.Count(ctx,
			specification.Filter("crop_name", cropName),
			specification.Filter("region", "Pakistan"),
			specification.RecordedSince{Cutoff: cutoff},
		)
		if err != nil {
			return stored, err
		}
		if count > 0 {
			continue
		}

		row := entity.MarketPrice{
			Id:         uuid.New(),
			CropName:   cropName,
			Region:     "Pakistan",
			PricePerKg: quote.Price,
			MandiName:  "RapidAPI",
			RecordedAt: time.Now(),
		}
		if err := repo.Create(ctx, &row); err != nil {
			return stored, err
		}
		stored++
	}

	s.log.Info("MarketService", "commodity prices refreshed", map[string]interface{}{
		"fetched": len(quotes),
		"stored":  stored,
	})
	return len(quotes), nil
}

func (s *marketService) UpdatePrices(ctx context.Context) (*dto.UpdatePricesResponse, error) {
	count, err := s.refreshPrices(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.UpdatePricesResponse{
		Status:  "success",
		Message: fmt.Sprintf("Updated %d commodity prices", count),
		Count:   count,
	}, nil
}

// Forecast compares the averages of two equal non-overlapping halves of
// the recent history and projects the next price from the trend.
func (s *marketService) Forecast(ctx context.Context, cropName, region string) (*dto.PriceForecastResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.Filter("crop_name", cropName),
		specification.OrderBy{Field: "recorded_at", Desc: true},
		specification.Pagination{Limit: 30},
	}
	if region != "" {
		specs = append(specs, specification.Filter("region", region))
	}

	rows, err := uow.MarketPriceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return &dto.PriceForecastResponse{
			Forecast: "Insufficient data",
			Trend:    "neutral",
		}, nil
	}

	half := len(rows) / 2
	recentAvg := averagePrice(rows[:half])
	olderAvg := averagePrice(rows[half:])

	trend := "stable"
	forecast := recentAvg
	switch {
	case recentAvg > olderAvg:
		trend = "increasing"
		forecast = recentAvg * 1.05
	case recentAvg < olderAvg:
		trend = "decreasing"
		forecast = recentAvg * 0.95
	}

	responseRegion := region
	if responseRegion == "" {
		responseRegion = "All"
	}
	currentPrice := rows[0].PricePerKg

	return &dto.PriceForecastResponse{
		CropName:     cropName,
		Region:       responseRegion,
		CurrentPrice: &currentPrice,
		Forecast:     forecast,
		Trend:        trend,
		Confidence:   "medium",
	}, nil
}

func averagePrice(rows []*entity.MarketPrice) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, row := range rows {
		sum += row.PricePerKg
	}
	return sum / float64(len(rows))
}
