package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "WEATHER_ALERT_ISSUED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const WeatherAlertIssuedType = "WEATHER_ALERT_ISSUED"

// NewWeatherAlertIssued builds the event emitted when a fresh alert row
// is stored.
func NewWeatherAlertIssued(region, alertType, severity string) Event {
	return BaseEvent{
		Type: WeatherAlertIssuedType,
		Data: map[string]interface{}{
			"region":     region,
			"alert_type": alertType,
			"severity":   severity,
		},
		OccurredAt: time.Now(),
	}
}
