package facts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"
	"kisaan-academy-be/pkg/assistant/intent"
	"kisaan-academy-be/pkg/weatherapi"
)

// WeatherProvider answers weather questions: live observation first, then
// recently stored alerts for the place, then the static unavailable note.
// Questions without a city default to Lahore.
type WeatherProvider struct {
	client *weatherapi.Client
	repos  unitofwork.RepositoryFactory
	log    logger.ILogger
}

func NewWeatherProvider(client *weatherapi.Client, repos unitofwork.RepositoryFactory, log logger.ILogger) *WeatherProvider {
	return &WeatherProvider{
		client: client,
		repos:  repos,
		log:    log,
	}
}

func (p *WeatherProvider) observe(ctx context.Context, city string) *weatherapi.Observation {
	if !p.client.Available() {
		return nil
	}
	obs, err := p.client.Current(ctx, city)
	if err != nil {
		p.log.Warn("WeatherProvider", "live weather fetch failed", map[string]interface{}{
			"city":  city,
			"error": err.Error(),
		})
		return nil
	}
	return obs
}

func renderObservationContext(obs *weatherapi.Observation, language string) string {
	var b strings.Builder
	if language == constant.LanguageUrdu {
		fmt.Fprintf(&b, "[موجودہ موسمی معلومات - %s]\n", obs.City)
		fmt.Fprintf(&b, "درجہ حرارت: %.1f°C (محسوس: %.1f°C)\n", obs.TemperatureC, obs.FeelsLikeC)
		fmt.Fprintf(&b, "حالت: %s\n", obs.Condition)
		fmt.Fprintf(&b, "نمی: %d%%\n", obs.Humidity)
		fmt.Fprintf(&b, "ہوا: %.1f کلومیٹر/گھنٹہ (%s)\n", obs.WindKph, obs.WindDir)
		fmt.Fprintf(&b, "دباؤ: %.1f mb\n", obs.PressureMb)
		fmt.Fprintf(&b, "بارش: %.1f mm\n", obs.PrecipMm)
		if obs.Today != nil {
			fmt.Fprintf(&b, "آج: %.1f°C - %.1f°C, %s\n", obs.Today.MinTempC, obs.Today.MaxTempC, obs.Today.Condition)
		}
		if obs.Tomorrow != nil {
			fmt.Fprintf(&b, "کل: %.1f°C - %.1f°C, %s\n", obs.Tomorrow.MinTempC, obs.Tomorrow.MaxTempC, obs.Tomorrow.Condition)
		}
	} else {
		fmt.Fprintf(&b, "[Current Weather Information - %s]\n", obs.City)
		fmt.Fprintf(&b, "Temperature: %.1f°C (Feels like: %.1f°C)\n", obs.TemperatureC, obs.FeelsLikeC)
		fmt.Fprintf(&b, "Condition: %s\n", obs.Condition)
		fmt.Fprintf(&b, "Humidity: %d%%\n", obs.Humidity)
		fmt.Fprintf(&b, "Wind: %.1f km/h (%s)\n", obs.WindKph, obs.WindDir)
		fmt.Fprintf(&b, "Pressure: %.1f mb\n", obs.PressureMb)
		fmt.Fprintf(&b, "Precipitation: %.1f mm\n", obs.PrecipMm)
		if obs.Today != nil {
			fmt.Fprintf(&b, "Today: %.1f°C - %.1f°C, %s\n", obs.Today.MinTempC, obs.Today.MaxTempC, obs.Today.Condition)
		}
		if obs.Tomorrow != nil {
			fmt.Fprintf(&b, "Tomorrow: %.1f°C - %.1f°C, %s\n", obs.Tomorrow.MinTempC, obs.Tomorrow.MaxTempC, obs.Tomorrow.Condition)
		}
	}
	return b.String()
}

func renderObservationAnswer(obs *weatherapi.Observation, language string) string {
	if language == constant.LanguageUrdu {
		return fmt.Sprintf(
			"%s میں فی الوقت موسم:\nدرجہ حرارت: %.1f°C (محسوس: %.1f°C)\nحالت: %s\nنمی: %d%%\nہوا: %.1f کلومیٹر/گھنٹہ",
			obs.City, obs.TemperatureC, obs.FeelsLikeC, obs.Condition, obs.Humidity, obs.WindKph,
		)
	}
	return fmt.Sprintf(
		"Current weather in %s:\nTemperature: %.1f°C (Feels like: %.1f°C)\nCondition: %s\nHumidity: %d%%\nWind: %.1f km/h",
		obs.City, obs.TemperatureC, obs.FeelsLikeC, obs.Condition, obs.Humidity, obs.WindKph,
	)
}

// storedAlerts renders still-valid stored alerts for the place as a last
// data-backed resort before the static notice.
func (p *WeatherProvider) storedAlerts(ctx context.Context, city, language string) string {
	repo := p.repos.NewUnitOfWork(ctx).WeatherAlertRepository()
	rows, err := repo.FindAll(ctx,
		specification.Filter("region", city),
		specification.ValidNow{Now: time.Now()},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 20},
	)
	if err != nil {
		p.log.Warn("WeatherProvider", "stored alerts lookup failed", map[string]interface{}{
			"city":  city,
			"error": err.Error(),
		})
		return ""
	}
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	if language == constant.LanguageUrdu {
		fmt.Fprintf(&b, "%s کے لیے موسمی انتباہات:\n", city)
		for _, row := range rows {
			fmt.Fprintf(&b, "- %s\n", row.MessageUr)
		}
	} else {
		fmt.Fprintf(&b, "Weather alerts for %s:\n", city)
		for _, row := range rows {
			fmt.Fprintf(&b, "- %s\n", row.MessageEn)
		}
	}
	return b.String()
}

func (p *WeatherProvider) unavailable(language string) string {
	if language == constant.LanguageUrdu {
		return weatherUnavailableUr
	}
	return weatherUnavailableEn
}

func (p *WeatherProvider) city(q Query) string {
	if q.Entity != "" {
		return q.Entity
	}
	return constant.DefaultWeatherCity
}

func (p *WeatherProvider) ContextBlock(ctx context.Context, q Query) Block {
	block := Block{Domain: intent.KindWeather, Language: q.Language}
	city := p.city(q)

	if obs := p.observe(ctx, city); obs != nil {
		block.Text = renderObservationContext(obs, q.Language)
		return block
	}
	if text := p.storedAlerts(ctx, city, q.Language); text != "" {
		block.Text = text
		return block
	}
	block.Text = p.unavailable(q.Language)
	return block
}

func (p *WeatherProvider) FallbackAnswer(ctx context.Context, q Query) Block {
	block := Block{Domain: intent.KindWeather, Language: q.Language}
	city := p.city(q)

	if obs := p.observe(ctx, city); obs != nil {
		block.Text = renderObservationAnswer(obs, q.Language)
		return block
	}
	if text := p.storedAlerts(ctx, city, q.Language); text != "" {
		block.Text = text
		return block
	}
	block.Text = p.unavailable(q.Language)
	return block
}
