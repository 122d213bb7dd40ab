package entity

import (
	"time"

	"github.com/google/uuid"
)

type MarketPrice struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CropName   string
	Region     string
	PricePerKg float64
	MandiName  string
	RecordedAt time.Time
}
