package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"kisaan-academy-be/internal/constant"
)

// Alert is a derived or passed-through weather warning, not yet stored.
type Alert struct {
	Region     string
	AlertType  string
	Severity   string
	MessageEn  string
	MessageUr  string
	ValidUntil time.Time
}

// DeriveAlerts applies the extreme-condition thresholds to an observation
// and appends upstream-issued alerts. Region labels the produced alerts;
// city names the place in the message text.
func DeriveAlerts(region, city string, obs *Observation, apiAlerts []APIAlert, now time.Time) []Alert {
	if obs == nil {
		return nil
	}

	alerts := make([]Alert, 0, 4)
	oneDay := now.Add(24 * time.Hour)
	twoDays := now.Add(48 * time.Hour)

	if obs.TemperatureC > 40 {
		alerts = append(alerts, Alert{
			Region:     region,
			AlertType:  constant.AlertTypeHeatwave,
			Severity:   constant.SeverityHigh,
			MessageEn:  fmt.Sprintf("Extreme heat warning in %s: Temperature is %.1f°C. Take precautions for crops.", city, obs.TemperatureC),
			MessageUr:  fmt.Sprintf("%s میں شدید گرمی کی وارننگ: درجہ حرارت %.1f°C ہے۔ فصلوں کے لیے احتیاطی تدابیر اختیار کریں۔", city, obs.TemperatureC),
			ValidUntil: oneDay,
		})
	} else if obs.TemperatureC < 5 {
		alerts = append(alerts, Alert{
			Region:     region,
			AlertType:  constant.AlertTypeColdWave,
			Severity:   constant.SeverityHigh,
			MessageEn:  fmt.Sprintf("Cold wave warning in %s: Temperature is %.1f°C. Protect sensitive crops.", city, obs.TemperatureC),
			MessageUr:  fmt.Sprintf("%s میں سردی کی لہر کی وارننگ: درجہ حرارت %.1f°C ہے۔ حساس فصلوں کی حفاظت کریں۔", city, obs.TemperatureC),
			ValidUntil: oneDay,
		})
	}

	condition := strings.ToLower(obs.Condition)
	if strings.Contains(condition, "rain") || strings.Contains(condition, "storm") || strings.Contains(condition, "thunder") {
		alerts = append(alerts, Alert{
			Region:     region,
			AlertType:  constant.AlertTypeHeavyRain,
			Severity:   constant.SeverityMedium,
			MessageEn:  fmt.Sprintf("Rain/Storm alert in %s: %s conditions expected.", city, titleCase(condition)),
			MessageUr:  fmt.Sprintf("%s میں بارش/طوفان کی الرٹ: %s حالات متوقع ہیں۔", city, titleCase(condition)),
			ValidUntil: oneDay,
		})
	}

	if obs.WindKph > 30 {
		alerts = append(alerts, Alert{
			Region:     region,
			AlertType:  constant.AlertTypeStrongWind,
			Severity:   constant.SeverityMedium,
			MessageEn:  fmt.Sprintf("Strong wind warning in %s: Wind speed is %.1f km/h.", city, obs.WindKph),
			MessageUr:  fmt.Sprintf("%s میں تیز ہوا کی وارننگ: ہوا کی رفتار %.1f کلومیٹر/گھنٹہ ہے۔", city, obs.WindKph),
			ValidUntil: oneDay,
		})
	}

	if obs.Humidity > 80 {
		alerts = append(alerts, Alert{
			Region:     region,
			AlertType:  constant.AlertTypeHighHumidity,
			Severity:   constant.SeverityMedium,
			MessageEn:  fmt.Sprintf("High humidity in %s: %d%%. May increase disease risk in crops.", city, obs.Humidity),
			MessageUr:  fmt.Sprintf("%s میں زیادہ نمی: %d%%۔ فصلوں میں بیماری کا خطرہ بڑھ سکتا ہے۔", city, obs.Humidity),
			ValidUntil: oneDay,
		})
	}

	if obs.AirQuality != nil && obs.AirQuality.USEPAIndex >= 4 {
		alerts = append(alerts, Alert{
			Region:     region,
			AlertType:  constant.AlertTypeAirQuality,
			Severity:   constant.SeverityMedium,
			MessageEn:  fmt.Sprintf("Poor air quality in %s. May affect crop health.", city),
			MessageUr:  fmt.Sprintf("%s میں ہوا کی ناقص معیار۔ فصلوں کی صحت متاثر ہو سکتی ہے۔", city),
			ValidUntil: oneDay,
		})
	}

	for _, apiAlert := range apiAlerts {
		severity := constant.SeverityMedium
		if apiAlert.Severity == "Extreme" {
			severity = constant.SeverityHigh
		}
		alertType := apiAlert.Event
		if alertType == "" {
			alertType = "weather_alert"
		}
		messageEn := apiAlert.Headline
		if messageEn == "" {
			messageEn = apiAlert.Desc
		}
		if messageEn == "" {
			messageEn = "Weather alert"
		}
		messageUr := apiAlert.Desc
		if messageUr == "" {
			messageUr = "موسم کی الرٹ"
		}
		validUntil := oneDay
		if parsed, err := time.Parse(time.RFC3339, apiAlert.Expires); err == nil {
			validUntil = parsed
		}
		alerts = append(alerts, Alert{
			Region:     region,
			AlertType:  alertType,
			Severity:   severity,
			MessageEn:  messageEn,
			MessageUr:  messageUr,
			ValidUntil: validUntil,
		})
	}

	if obs.Tomorrow != nil {
		if obs.Tomorrow.MaxTempC > 42 {
			alerts = append(alerts, Alert{
				Region:     region,
				AlertType:  constant.AlertTypeHeatwave,
				Severity:   constant.SeverityHigh,
				MessageEn:  fmt.Sprintf("Tomorrow: Extreme heat expected in %s (%.1f°C).", city, obs.Tomorrow.MaxTempC),
				MessageUr:  fmt.Sprintf("کل: %s میں شدید گرمی متوقع (%.1f°C)۔", city, obs.Tomorrow.MaxTempC),
				ValidUntil: twoDays,
			})
		}
		if obs.Tomorrow.MaxWindKph > 40 {
			alerts = append(alerts, Alert{
				Region:     region,
				AlertType:  constant.AlertTypeStrongWind,
				Severity:   constant.SeverityMedium,
				MessageEn:  fmt.Sprintf("Tomorrow: Strong winds expected in %s (%.1f km/h).", city, obs.Tomorrow.MaxWindKph),
				MessageUr:  fmt.Sprintf("کل: %s میں تیز ہواؤں کی توقع (%.1f کلومیٹر/گھنٹہ)۔", city, obs.Tomorrow.MaxWindKph),
				ValidUntil: twoDays,
			})
		}
	}

	return alerts
}

// FetchAlerts scans a region's observation city, or the default city set
// when no region is given, and derives alerts from live conditions.
// Per-city failures are skipped.
func (c *Client) FetchAlerts(ctx context.Context, region string) ([]Alert, error) {
	if !c.Available() {
		return nil, fmt.Errorf("weather api key is not configured")
	}

	var cities []string
	if region != "" {
		cities = []string{MapRegionToCity(region)}
	} else {
		cities = DefaultAlertCities
	}

	now := time.Now()
	alerts := make([]Alert, 0)
	for _, city := range cities {
		obs, err := c.Current(ctx, city)
		if err != nil {
			continue
		}

		apiAlerts := c.fetchAPIAlerts(ctx, city)

		label := region
		if label == "" {
			label = city
		}
		alerts = append(alerts, DeriveAlerts(label, city, obs, apiAlerts, now)...)
	}

	return alerts, nil
}

func (c *Client) fetchAPIAlerts(ctx context.Context, city string) []APIAlert {
	params := url.Values{}
	params.Set("q", city)
	params.Set("days", "3")
	params.Set("alerts", "yes")

	body, err := c.get(ctx, "/forecast.json", params)
	if err != nil {
		return nil
	}

	var payload forecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	apiAlerts := make([]APIAlert, 0, len(payload.Alerts.Alert))
	for _, a := range payload.Alerts.Alert {
		apiAlerts = append(apiAlerts, APIAlert{
			Event:    a.Event,
			Severity: a.Severity,
			Headline: a.Headline,
			Desc:     a.Desc,
			Expires:  a.Expires,
		})
	}
	return apiAlerts
}
