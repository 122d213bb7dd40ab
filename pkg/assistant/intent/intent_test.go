package intent

import (
	"testing"
)

func TestDetectPrice(t *testing.T) {
	tests := []struct {
		name       string
		question   string
		wantOk     bool
		wantEntity string
	}{
		{
			name:       "urdu wheat price",
			question:   "گندم کی قیمت کیا ہے؟",
			wantOk:     true,
			wantEntity: "wheat",
		},
		{
			name:       "english rice price",
			question:   "What is the price of rice today?",
			wantOk:     true,
			wantEntity: "rice",
		},
		{
			name:       "market keyword without crop",
			question:   "مارکیٹ کے بارے میں بتائیں",
			wantOk:     true,
			wantEntity: "",
		},
		{
			name:       "uppercase latin keyword",
			question:   "COTTON RATE in Sindh",
			wantOk:     true,
			wantEntity: "cotton",
		},
		{
			name:     "unrelated question",
			question: "مجھے کمپوسٹ بنانا سکھائیں",
			wantOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, entity := DetectPrice(tt.question)
			if ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", ok, tt.wantOk)
			}
			if entity != tt.wantEntity {
				t.Errorf("entity = %q, want %q", entity, tt.wantEntity)
			}
		})
	}
}

func TestDetectPest(t *testing.T) {
	tests := []struct {
		name       string
		question   string
		wantOk     bool
		wantEntity string
	}{
		{
			name:       "urdu whitefly on cotton",
			question:   "کپاس پر سفید مکھی کا حملہ ہے، علاج بتائیں",
			wantOk:     true,
			wantEntity: "whitefly",
		},
		{
			name:       "english aphid",
			question:   "How do I control aphid on wheat?",
			wantOk:     true,
			wantEntity: "aphid",
		},
		{
			name:       "disease keyword without named pest",
			question:   "میری فصل میں بیماری لگ گئی ہے",
			wantOk:     true,
			wantEntity: "",
		},
		{
			name:       "two word english synonym",
			question:   "stem borer treatment for rice",
			wantOk:     true,
			wantEntity: "borer",
		},
		{
			name:     "no pest vocabulary",
			question: "گندم کی قیمت کیا ہے؟",
			wantOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, entity := DetectPest(tt.question)
			if ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", ok, tt.wantOk)
			}
			if entity != tt.wantEntity {
				t.Errorf("entity = %q, want %q", entity, tt.wantEntity)
			}
		})
	}
}

func TestDetectCrop(t *testing.T) {
	if got := DetectCrop("کپاس پر کیڑوں کا حملہ"); got != "cotton" {
		t.Errorf("DetectCrop = %q, want cotton", got)
	}
	if got := DetectCrop("pests on my maize field"); got != "corn" {
		t.Errorf("DetectCrop = %q, want corn", got)
	}
	if got := DetectCrop("کیڑوں سے بچاؤ"); got != "" {
		t.Errorf("DetectCrop = %q, want empty", got)
	}
}

func TestDetectWeather(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantOk   bool
		wantCity string
	}{
		{
			name:     "english city",
			question: "What is the weather in Karachi?",
			wantOk:   true,
			wantCity: "Karachi",
		},
		{
			name:     "urdu single word city",
			question: "لاہور میں موسم کیسا ہے؟",
			wantOk:   true,
			wantCity: "Lahore",
		},
		{
			name:     "weather without city",
			question: "کل بارش ہو گی؟",
			wantOk:   true,
			wantCity: "",
		},
		{
			// "اسلام آباد" spans two whitespace tokens, so the token
			// containment check cannot see it
			name:     "multi word urdu city is not matched",
			question: "اسلام آباد میں موسم کیسا ہے؟",
			wantOk:   true,
			wantCity: "",
		},
		{
			name:     "not a weather question",
			question: "How do I make compost?",
			wantOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, city := DetectWeather(tt.question)
			if ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", ok, tt.wantOk)
			}
			if city != tt.wantCity {
				t.Errorf("city = %q, want %q", city, tt.wantCity)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		question  string
		wantKinds []Kind
	}{
		{
			name:      "price only",
			question:  "گندم کی قیمت بتائیں",
			wantKinds: []Kind{KindPrice},
		},
		{
			name:      "weather before price for mixed question",
			question:  "weather in Lahore and wheat price",
			wantKinds: []Kind{KindWeather, KindPrice},
		},
		{
			name:      "no domain",
			question:  "مجھے ڈرپ اریگیشن کے بارے میں بتائیں",
			wantKinds: []Kind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Classify(tt.question)
			if len(matches) != len(tt.wantKinds) {
				t.Fatalf("got %d matches, want %d", len(matches), len(tt.wantKinds))
			}
			for i, match := range matches {
				if match.Kind != tt.wantKinds[i] {
					t.Errorf("match[%d].Kind = %q, want %q", i, match.Kind, tt.wantKinds[i])
				}
			}
		})
	}
}

func TestUrduCropPriceName(t *testing.T) {
	if got := UrduCropPriceName("wheat"); got != "گندم" {
		t.Errorf("UrduCropPriceName(wheat) = %q", got)
	}
	// corn is tracked live only, so the key passes through unchanged
	if got := UrduCropPriceName("corn"); got != "corn" {
		t.Errorf("UrduCropPriceName(corn) = %q", got)
	}
}
