package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarketPriceResponse struct {
	Id         uuid.UUID `json:"id"`
	CropName   string    `json:"crop_name"`
	Region     string    `json:"region"`
	PricePerKg float64   `json:"price_per_kg"`
	MandiName  string    `json:"mandi_name"`
	RecordedAt time.Time `json:"recorded_at"`
}

type UpdatePricesResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// PriceForecastResponse projects the next price from stored history.
// When there is not enough history only Forecast and Trend are set.
type PriceForecastResponse struct {
	CropName     string   `json:"crop_name,omitempty"`
	Region       string   `json:"region,omitempty"`
	CurrentPrice *float64 `json:"current_price,omitempty"`
	Forecast     any      `json:"forecast"`
	Trend        string   `json:"trend"`
	Confidence   string   `json:"confidence,omitempty"`
}
