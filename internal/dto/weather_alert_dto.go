package dto

import (
	"time"

	"github.com/google/uuid"
)

type WeatherAlertResponse struct {
	Id        uuid.UUID `json:"id"`
	Region    string    `json:"region"`
	AlertType string    `json:"alert_type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateAlertsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
