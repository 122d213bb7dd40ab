package constant

const (
	LanguageUrdu    = "ur"
	LanguageEnglish = "en"
)

// DefaultWeatherCity is used when a weather question names no city.
const DefaultWeatherCity = "Lahore"

// System framing prepended to every generative prompt. The composer picks
// the language line based on the question's language tag.
const (
	AssistantPreambleEnglish = `You are an agricultural assistant (Agri-Bot) for Pakistani farmers.
Answer questions about farming, crops, prices, weather, pests, and agricultural practices.
Language preference: English
Keep responses concise, practical, and helpful. Always respond in the requested language.`

	AssistantPreambleUrdu = `You are an agricultural assistant (Agri-Bot) for Pakistani farmers.
Answer questions about farming, crops, prices, weather, pests, and agricultural practices.
Language preference: Urdu
Keep responses concise, practical, and helpful. Always respond in the requested language.`
)

// Default sentence returned when no tier produced an answer.
const (
	DefaultAnswerUrdu    = "میں آپ کی مدد کرنے کے لیے یہاں ہوں۔ براہ کرم اپنا سوال مزید تفصیل سے پوچھیں۔"
	DefaultAnswerEnglish = "I'm here to help you. Please ask your question in more detail."
)

// Weather alert types derived from live observations.
const (
	AlertTypeHeatwave     = "heatwave"
	AlertTypeColdWave     = "cold_wave"
	AlertTypeHeavyRain    = "heavy_rain"
	AlertTypeStrongWind   = "strong_wind"
	AlertTypeHighHumidity = "high_humidity"
	AlertTypeAirQuality   = "air_quality"
)

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Freshness windows for insert-if-not-recently-present deduplication.
const (
	AlertFreshnessHours = 1
	PriceFreshnessHours = 24
)
