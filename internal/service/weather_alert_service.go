package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"
	"kisaan-academy-be/pkg/events"
	"kisaan-academy-be/pkg/weatherapi"

	"github.com/google/uuid"
)

type IWeatherAlertService interface {
	List(ctx context.Context, region, language string, update bool) ([]*dto.WeatherAlertResponse, error)
	Refresh(ctx context.Context, region string) (*dto.UpdateAlertsResponse, error)
}

// AlertFetcher is the live-alert source. *weatherapi.Client satisfies it.
type AlertFetcher interface {
	FetchAlerts(ctx context.Context, region string) ([]weatherapi.Alert, error)
}

type weatherAlertService struct {
	uowFactory       unitofwork.RepositoryFactory
	client           AlertFetcher
	publisherService IPublisherService
	log              logger.ILogger
}

func NewWeatherAlertService(
	uowFactory unitofwork.RepositoryFactory,
	client AlertFetcher,
	publisherService IPublisherService,
	log logger.ILogger,
) IWeatherAlertService {
	return &weatherAlertService{
		uowFactory:       uowFactory,
		client:           client,
		publisherService: publisherService,
		log:              log,
	}
}

func alertToResponse(alert *entity.WeatherAlert, language string) *dto.WeatherAlertResponse {
	message := alert.MessageUr
	if language == constant.LanguageEnglish {
		message = alert.MessageEn
	}
	return &dto.WeatherAlertResponse{
		Id:        alert.Id,
		Region:    alert.Region,
		AlertType: alert.AlertType,
		Severity:  alert.Severity,
		Message:   message,
		CreatedAt: alert.CreatedAt,
	}
}

func (s *weatherAlertService) query(ctx context.Context, region, language string) ([]*dto.WeatherAlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 20},
	}
	if region != "" {
		specs = append(specs, specification.Filter("region", region))
	}

	rows, err := uow.WeatherAlertRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.WeatherAlertResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, alertToResponse(row, language))
	}
	return response, nil
}

// List returns recent alerts. It refreshes from the live API first when
// asked to, or when no still-valid alert exists at all.
func (s *weatherAlertService) List(ctx context.Context, region, language string, update bool) ([]*dto.WeatherAlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	validCount, err := uow.WeatherAlertRepository().Count(ctx, specification.ValidNow{Now: time.Now()})
	if err != nil {
		return nil, err
	}

	refreshed := false
	if update || validCount == 0 {
		if _, err := s.refreshAlerts(ctx, region); err != nil {
			s.log.Warn("WeatherAlertService", "alert refresh before listing failed", map[string]interface{}{
				"region": region,
				"error":  err.Error(),
			})
		} else {
			refreshed = true
		}
	}

	response, err := s.query(ctx, region, language)
	if err != nil {
		return nil, err
	}

	// One retry against the live API when the store has nothing to show
	if len(response) == 0 && !refreshed {
		if _, err := s.refreshAlerts(ctx, region); err != nil {
			s.log.Warn("WeatherAlertService", "alert refresh retry failed", map[string]interface{}{
				"region": region,
				"error":  err.Error(),
			})
			return response, nil
		}
		return s.query(ctx, region, language)
	}

	return response, nil
}

// refreshAlerts derives alerts from the live API and stores those with no
// duplicate of the same region and type inside the freshness window.
// Every stored alert is published on the event bus.
func (s *weatherAlertService) refreshAlerts(ctx context.Context, region string) (int, error) {
	alerts, err := s.client.FetchAlerts(ctx, region)
	if err != nil {
		return 0, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.WeatherAlertRepository()
	cutoff := time.Now().Add(-time.Duration(constant.AlertFreshnessHours) * time.Hour)

	stored := 0
	for _, alert := range alerts {
		count, err := repo.Count(ctx,
			specification.Filter("region", alert.Region),
			specification.Filter("alert_type", alert.AlertType),
			specification.CreatedSince{Cutoff: cutoff},
		)
		if err != nil {
			return stored, err
		}
		if count > 0 {
			continue
		}

		validUntil := alert.ValidUntil
		row := entity.WeatherAlert{
			Id:         uuid.New(),
			Region:     alert.Region,
			AlertType:  alert.AlertType,
			Severity:   alert.Severity,
			MessageUr:  alert.MessageUr,
			MessageEn:  alert.MessageEn,
			ValidUntil: &validUntil,
			CreatedAt:  time.Now(),
		}
		if err := repo.Create(ctx, &row); err != nil {
			return stored, err
		}
		stored++

		s.publishIssued(ctx, &row)
	}

	s.log.Info("WeatherAlertService", "weather alerts refreshed", map[string]interface{}{
		"region":  region,
		"derived": len(alerts),
		"stored":  stored,
	})
	return len(alerts), nil
}

// publishIssued notifies subscribers about a newly stored alert. Failures
// are logged only; alert storage must not depend on the bus.
func (s *weatherAlertService) publishIssued(ctx context.Context, alert *entity.WeatherAlert) {
	evt := events.NewWeatherAlertIssued(alert.Region, alert.AlertType, alert.Severity)
	payload, err := json.Marshal(map[string]interface{}{
		"type":        evt.EventType(),
		"data":        evt.Payload(),
		"occurred_at": evt.Timestamp(),
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("WeatherAlertService", "alert event publish failed", map[string]interface{}{
			"region": alert.Region,
			"error":  err.Error(),
		})
	}
}

func (s *weatherAlertService) Refresh(ctx context.Context, region string) (*dto.UpdateAlertsResponse, error) {
	count, err := s.refreshAlerts(ctx, region)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return &dto.UpdateAlertsResponse{
			Status:  "success",
			Message: "No new alerts found",
			Count:   0,
		}, nil
	}

	return &dto.UpdateAlertsResponse{
		Status:  "success",
		Message: fmt.Sprintf("Updated %d weather alerts", count),
		Count:   count,
	}, nil
}
