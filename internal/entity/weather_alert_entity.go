package entity

import (
	"time"

	"github.com/google/uuid"
)

type WeatherAlert struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Region     string
	AlertType  string
	Severity   string
	MessageUr  string
	MessageEn  string
	ValidUntil *time.Time
	CreatedAt  time.Time
}
