package model

import (
	"time"

	"github.com/google/uuid"
)

type WeatherAlert struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Region     string    `gorm:"type:varchar(64);not null;index"`
	AlertType  string    `gorm:"type:varchar(32);not null;index"`
	Severity   string    `gorm:"type:varchar(16)"`
	MessageUr  string    `gorm:"type:text"`
	MessageEn  string    `gorm:"type:text"`
	ValidUntil *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
}

func (WeatherAlert) TableName() string {
	return "weather_alerts"
}
