package model

import (
	"time"

	"github.com/google/uuid"
)

type MarketPrice struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CropName   string    `gorm:"type:varchar(128);not null;index"`
	Region     string    `gorm:"type:varchar(64);not null;index"`
	PricePerKg float64   `gorm:"not null"`
	MandiName  string    `gorm:"type:varchar(128)"`
	RecordedAt time.Time `gorm:"autoCreateTime;index"`
}

func (MarketPrice) TableName() string {
	return "market_prices"
}
