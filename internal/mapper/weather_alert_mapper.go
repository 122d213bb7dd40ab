package mapper

import (
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/model"
)

type WeatherAlertMapper struct{}

func NewWeatherAlertMapper() *WeatherAlertMapper {
	return &WeatherAlertMapper{}
}

func (m *WeatherAlertMapper) ToEntity(a *model.WeatherAlert) *entity.WeatherAlert {
	if a == nil {
		return nil
	}

	return &entity.WeatherAlert{
		Id:         a.Id,
		Region:     a.Region,
		AlertType:  a.AlertType,
		Severity:   a.Severity,
		MessageUr:  a.MessageUr,
		MessageEn:  a.MessageEn,
		ValidUntil: a.ValidUntil,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *WeatherAlertMapper) ToModel(a *entity.WeatherAlert) *model.WeatherAlert {
	if a == nil {
		return nil
	}

	return &model.WeatherAlert{
		Id:         a.Id,
		Region:     a.Region,
		AlertType:  a.AlertType,
		Severity:   a.Severity,
		MessageUr:  a.MessageUr,
		MessageEn:  a.MessageEn,
		ValidUntil: a.ValidUntil,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *WeatherAlertMapper) ToEntities(alerts []*model.WeatherAlert) []*entity.WeatherAlert {
	entities := make([]*entity.WeatherAlert, len(alerts))
	for i, a := range alerts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
