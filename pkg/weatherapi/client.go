package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const defaultBaseURL = "http://api.weatherapi.com/v1"

// cityNames normalizes Urdu names and common variations to the canonical
// city name understood by the upstream API.
var cityNames = map[string]string{
	"multan":      "Multan",
	"ملتان":       "Multan",
	"lahore":      "Lahore",
	"لاہور":       "Lahore",
	"karachi":     "Karachi",
	"کراچی":       "Karachi",
	"islamabad":   "Islamabad",
	"اسلام آباد":  "Islamabad",
	"peshawar":    "Peshawar",
	"پشاور":       "Peshawar",
	"quetta":      "Quetta",
	"کوئٹہ":       "Quetta",
	"faisalabad":  "Faisalabad",
	"فیصل آباد":   "Faisalabad",
	"rawalpindi":  "Rawalpindi",
	"راولپنڈی":    "Rawalpindi",
	"gujranwala":  "Gujranwala",
	"گوجرانوالہ":  "Gujranwala",
	"sialkot":     "Sialkot",
	"سیالکوٹ":     "Sialkot",
}

// regionToCity maps provinces to their capital so province-level alert
// requests resolve to a concrete observation point.
var regionToCity = map[string]string{
	"Punjab":      "Lahore",
	"Sindh":       "Karachi",
	"KPK":         "Peshawar",
	"Balochistan": "Quetta",
	"Lahore":      "Lahore",
	"Karachi":     "Karachi",
	"Islamabad":   "Islamabad",
	"Peshawar":    "Peshawar",
	"Quetta":      "Quetta",
	"Multan":      "Multan",
	"Faisalabad":  "Faisalabad",
}

// DefaultAlertCities are scanned when no region is given.
var DefaultAlertCities = []string{"Lahore", "Karachi", "Islamabad", "Peshawar", "Multan", "Faisalabad"}

// MapCity normalizes a user-supplied city name.
func MapCity(city string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	if mapped, ok := cityNames[key]; ok {
		return mapped
	}
	return titleCase(city)
}

// MapRegionToCity resolves a region name to an observation city.
func MapRegionToCity(region string) string {
	if city, ok := regionToCity[region]; ok {
		return city
	}
	return region
}

func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

type AirQuality struct {
	USEPAIndex int     `json:"us_epa_index"`
	PM25       float64 `json:"pm2_5"`
	PM10       float64 `json:"pm10"`
}

type DayForecast struct {
	MaxTempC      float64 `json:"max_temp_c"`
	MinTempC      float64 `json:"min_temp_c"`
	MaxTempF      float64 `json:"max_temp_f"`
	MinTempF      float64 `json:"min_temp_f"`
	Condition     string  `json:"condition"`
	MaxWindKph    float64 `json:"maxwind_kph"`
	TotalPrecipMm float64 `json:"totalprecip_mm"`
}

// Observation is a flattened current-conditions snapshot plus the two-day
// forecast when the forecast sub-call succeeded.
type Observation struct {
	City         string       `json:"city"`
	Region       string       `json:"region"`
	Country      string       `json:"country"`
	TemperatureC float64      `json:"temperature_c"`
	TemperatureF float64      `json:"temperature_f"`
	FeelsLikeC   float64      `json:"feels_like_c"`
	Condition    string       `json:"condition"`
	Humidity     int          `json:"humidity"`
	WindKph      float64      `json:"wind_kph"`
	WindDir      string       `json:"wind_dir"`
	PressureMb   float64      `json:"pressure_mb"`
	PrecipMm     float64      `json:"precip_mm"`
	UVIndex      float64      `json:"uv_index"`
	VisibilityKm float64      `json:"visibility_km"`
	LastUpdated  string       `json:"last_updated"`
	AirQuality   *AirQuality  `json:"air_quality,omitempty"`
	Today        *DayForecast `json:"today,omitempty"`
	Tomorrow     *DayForecast `json:"tomorrow,omitempty"`
}

// APIAlert is an upstream-issued weather alert passed through unchanged.
type APIAlert struct {
	Event    string
	Severity string
	Headline string
	Desc     string
	Expires  string
}

type currentPayload struct {
	Location struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		TempF      float64 `json:"temp_f"`
		FeelsLikeC float64 `json:"feelslike_c"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
		Humidity   int     `json:"humidity"`
		WindKph    float64 `json:"wind_kph"`
		WindDir    string  `json:"wind_dir"`
		PressureMb float64 `json:"pressure_mb"`
		PrecipMm   float64 `json:"precip_mm"`
		UV         float64 `json:"uv"`
		VisKm      float64 `json:"vis_km"`
		LastUpd    string  `json:"last_updated"`
		AirQuality *struct {
			USEPAIndex int     `json:"us-epa-index"`
			PM25       float64 `json:"pm2_5"`
			PM10       float64 `json:"pm10"`
		} `json:"air_quality"`
	} `json:"current"`
}

type forecastDay struct {
	MaxTempC      float64 `json:"maxtemp_c"`
	MinTempC      float64 `json:"mintemp_c"`
	MaxTempF      float64 `json:"maxtemp_f"`
	MinTempF      float64 `json:"mintemp_f"`
	MaxWindKph    float64 `json:"maxwind_kph"`
	TotalPrecipMm float64 `json:"totalprecip_mm"`
	Condition     struct {
		Text string `json:"text"`
	} `json:"condition"`
}

type forecastPayload struct {
	Forecast struct {
		ForecastDay []struct {
			Day forecastDay `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
	Alerts struct {
		Alert []struct {
			Event    string `json:"event"`
			Severity string `json:"severity"`
			Headline string `json:"headline"`
			Desc     string `json:"desc"`
			Expires  string `json:"expires"`
		} `json:"alert"`
	} `json:"alerts"`
}

// Client calls WeatherAPI.com. Observations are cached per city for the
// configured TTL.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewClient(apiKey string, cacheTTL time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (c *Client) Available() bool {
	return c.apiKey != ""
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(body),
		)
	}
	return body, nil
}

// Current fetches current conditions for a city with air quality, then
// tries a two day forecast. The forecast sub-call failing does not fail
// the observation.
func (c *Client) Current(ctx context.Context, city string) (*Observation, error) {
	if !c.Available() {
		return nil, fmt.Errorf("weather api key is not configured")
	}

	mapped := MapCity(city)
	if cached, found := c.cache.Get(mapped); found {
		return cached.(*Observation), nil
	}

	params := url.Values{}
	params.Set("q", mapped)
	params.Set("aqi", "yes")

	body, err := c.get(ctx, "/current.json", params)
	if err != nil {
		return nil, err
	}

	var payload currentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	obs := &Observation{
		City:         payload.Location.Name,
		Region:       payload.Location.Region,
		Country:      payload.Location.Country,
		TemperatureC: payload.Current.TempC,
		TemperatureF: payload.Current.TempF,
		FeelsLikeC:   payload.Current.FeelsLikeC,
		Condition:    payload.Current.Condition.Text,
		Humidity:     payload.Current.Humidity,
		WindKph:      payload.Current.WindKph,
		WindDir:      payload.Current.WindDir,
		PressureMb:   payload.Current.PressureMb,
		PrecipMm:     payload.Current.PrecipMm,
		UVIndex:      payload.Current.UV,
		VisibilityKm: payload.Current.VisKm,
		LastUpdated:  payload.Current.LastUpd,
	}
	if obs.City == "" {
		obs.City = mapped
	}
	if aq := payload.Current.AirQuality; aq != nil {
		obs.AirQuality = &AirQuality{
			USEPAIndex: aq.USEPAIndex,
			PM25:       aq.PM25,
			PM10:       aq.PM10,
		}
	}

	c.attachForecast(ctx, mapped, obs)

	c.cache.Set(mapped, obs, gocache.DefaultExpiration)
	return obs, nil
}

func (c *Client) attachForecast(ctx context.Context, city string, obs *Observation) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("days", "2")

	body, err := c.get(ctx, "/forecast.json", params)
	if err != nil {
		return // forecast is not critical
	}

	var payload forecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return
	}

	days := payload.Forecast.ForecastDay
	if len(days) > 0 {
		obs.Today = dayForecastFrom(days[0].Day)
	}
	if len(days) > 1 {
		obs.Tomorrow = dayForecastFrom(days[1].Day)
	}
}

func dayForecastFrom(day forecastDay) *DayForecast {
	return &DayForecast{
		MaxTempC:      day.MaxTempC,
		MinTempC:      day.MinTempC,
		MaxTempF:      day.MaxTempF,
		MinTempF:      day.MinTempF,
		Condition:     day.Condition.Text,
		MaxWindKph:    day.MaxWindKph,
		TotalPrecipMm: day.TotalPrecipMm,
	}
}
