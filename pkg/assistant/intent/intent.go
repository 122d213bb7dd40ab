package intent

import "strings"

type Kind string

const (
	KindPrice   Kind = "price"
	KindPest    Kind = "pest"
	KindWeather Kind = "weather"
)

// Match is a detected question domain. Entity is the canonical key
// ("wheat", "aphid", "Lahore"), never the raw matched text, and may be
// empty when the domain fired without a specific entity.
type Match struct {
	Kind   Kind
	Entity string
}

func containsAny(question string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(question, keyword) {
			return true
		}
	}
	return false
}

func lookupEntity(question string, table []vocabEntry) string {
	for _, entry := range table {
		for _, synonym := range entry.Synonyms {
			if strings.Contains(question, synonym) {
				return entry.Key
			}
		}
	}
	return ""
}

// DetectPrice reports whether the question asks about prices or markets
// and extracts the crop key when one is named.
func DetectPrice(question string) (bool, string) {
	q := strings.ToLower(question)
	if !containsAny(q, priceKeywords) {
		return false, ""
	}
	return true, lookupEntity(q, cropTable)
}

// DetectPest reports whether the question asks about pests or diseases
// and extracts the pest key when one is named.
func DetectPest(question string) (bool, string) {
	q := strings.ToLower(question)
	if !containsAny(q, pestKeywords) {
		return false, ""
	}
	return true, lookupEntity(q, pestTable)
}

// DetectCrop extracts a crop key from a pest question's text. Used as the
// second pass when the question names a crop instead of a pest.
func DetectCrop(question string) string {
	return lookupEntity(strings.ToLower(question), pestCropTable)
}

// DetectWeather reports whether the question asks about weather and
// extracts the city key when one is named. The city synonym must appear
// inside a whitespace token, so multi-word Urdu city names intentionally
// fail the token check just like single-pass splitting would.
func DetectWeather(question string) (bool, string) {
	q := strings.ToLower(question)
	isWeather := containsAny(q, weatherKeywords)

	city := ""
	for _, entry := range cityTable {
		for _, synonym := range entry.Synonyms {
			if !strings.Contains(q, synonym) {
				continue
			}
			for _, word := range strings.Fields(q) {
				if strings.Contains(word, synonym) {
					city = entry.Key
					break
				}
			}
			if city != "" {
				break
			}
		}
		if city != "" {
			break
		}
	}

	return isWeather, city
}

// Classify runs all three domain detectors. Matches are returned in the
// fixed context order weather, price, pest; multi-domain questions yield
// multiple matches.
func Classify(question string) []Match {
	matches := make([]Match, 0, 3)
	if ok, city := DetectWeather(question); ok {
		matches = append(matches, Match{Kind: KindWeather, Entity: city})
	}
	if ok, crop := DetectPrice(question); ok {
		matches = append(matches, Match{Kind: KindPrice, Entity: crop})
	}
	if ok, pest := DetectPest(question); ok {
		matches = append(matches, Match{Kind: KindPest, Entity: pest})
	}
	return matches
}
