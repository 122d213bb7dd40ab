package compose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/pkg/assistant/facts"
)

type stubGenerator struct {
	available  bool
	answer     string
	err        error
	lastPrompt string
}

func (g *stubGenerator) Available() bool {
	return g.available
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.answer, g.err
}

type stubProvider struct {
	contextText  string
	fallbackText string
}

func (p *stubProvider) ContextBlock(_ context.Context, q facts.Query) facts.Block {
	return facts.Block{Language: q.Language, Text: p.contextText}
}

func (p *stubProvider) FallbackAnswer(_ context.Context, q facts.Query) facts.Block {
	return facts.Block{Language: q.Language, Text: p.fallbackText}
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestAnswerGenerativeTier(t *testing.T) {
	gen := &stubGenerator{available: true, answer: "گندم کی قیمت 4500 روپے ہے۔"}
	price := &stubProvider{contextText: "price facts"}
	composer := NewComposer(gen, price, &stubProvider{}, &stubProvider{}, nopLogger{})

	answer := composer.Answer(context.Background(), Question{
		Text:     "گندم کی قیمت کیا ہے؟",
		Language: constant.LanguageUrdu,
	})

	if answer.SourceTier != TierGenerative {
		t.Fatalf("SourceTier = %q, want %q", answer.SourceTier, TierGenerative)
	}
	if answer.Text != gen.answer {
		t.Errorf("Text = %q", answer.Text)
	}
	if !strings.Contains(gen.lastPrompt, "price facts") {
		t.Error("prompt should contain the price context block")
	}
	if !strings.Contains(gen.lastPrompt, "Question: گندم کی قیمت کیا ہے؟") {
		t.Error("prompt should end with the question")
	}
	if !strings.HasSuffix(gen.lastPrompt, "Answer:") {
		t.Error("prompt should end with the answer cue")
	}
}

func TestAnswerPromptOrdersWeatherBeforePrice(t *testing.T) {
	gen := &stubGenerator{available: true, answer: "ok"}
	price := &stubProvider{contextText: "PRICE-BLOCK"}
	weather := &stubProvider{contextText: "WEATHER-BLOCK"}
	composer := NewComposer(gen, price, &stubProvider{}, weather, nopLogger{})

	composer.Answer(context.Background(), Question{
		Text:     "weather in Lahore and wheat price",
		Language: constant.LanguageEnglish,
	})

	weatherIdx := strings.Index(gen.lastPrompt, "WEATHER-BLOCK")
	priceIdx := strings.Index(gen.lastPrompt, "PRICE-BLOCK")
	if weatherIdx < 0 || priceIdx < 0 {
		t.Fatal("both context blocks should be present")
	}
	if weatherIdx > priceIdx {
		t.Error("weather block should come before the price block")
	}
}

func TestAnswerFallsBackWhenGeneratorFails(t *testing.T) {
	gen := &stubGenerator{available: true, err: errors.New("upstream down")}
	price := &stubProvider{fallbackText: "گندم کی موجودہ قیمت: 4500.00 روپے فی کلوگرام (PKR/kg) - Punjab"}
	composer := NewComposer(gen, price, &stubProvider{}, &stubProvider{}, nopLogger{})

	answer := composer.Answer(context.Background(), Question{
		Text:     "گندم کی قیمت کیا ہے؟",
		Language: constant.LanguageUrdu,
	})

	if answer.SourceTier != TierLocalFallback {
		t.Fatalf("SourceTier = %q, want %q", answer.SourceTier, TierLocalFallback)
	}
	if answer.Text != price.fallbackText {
		t.Errorf("Text = %q", answer.Text)
	}
}

func TestAnswerFallbackPrefersPestOverPrice(t *testing.T) {
	gen := &stubGenerator{available: false}
	price := &stubProvider{fallbackText: "price answer"}
	pest := &stubProvider{fallbackText: "pest answer"}
	composer := NewComposer(gen, price, pest, &stubProvider{}, nopLogger{})

	// The question names both a pest and a price concern
	answer := composer.Answer(context.Background(), Question{
		Text:     "aphid control and wheat price",
		Language: constant.LanguageEnglish,
	})

	if answer.SourceTier != TierLocalFallback {
		t.Fatalf("SourceTier = %q, want %q", answer.SourceTier, TierLocalFallback)
	}
	if answer.Text != "pest answer" {
		t.Errorf("Text = %q, want the pest answer first", answer.Text)
	}
}

func TestAnswerStaticDefaultCanned(t *testing.T) {
	gen := &stubGenerator{available: false}
	composer := NewComposer(gen, &stubProvider{}, &stubProvider{}, &stubProvider{}, nopLogger{})

	tests := []struct {
		name     string
		question string
		language string
		want     string
	}{
		{
			name:     "urdu compost",
			question: "کمپوسٹ کیسے بنائیں؟",
			language: constant.LanguageUrdu,
			want:     "کمپوسٹ بنانے کے لیے، براہ کرم Sustainable Practices Wiki میں دیکھیں۔",
		},
		{
			name:     "english compost",
			question: "How do I make compost?",
			language: constant.LanguageEnglish,
			want:     "For making compost, please check the Sustainable Practices Wiki.",
		},
		{
			name:     "urdu default sentence",
			question: "السلام علیکم",
			language: constant.LanguageUrdu,
			want:     constant.DefaultAnswerUrdu,
		},
		{
			name:     "english default sentence",
			question: "hello there",
			language: constant.LanguageEnglish,
			want:     constant.DefaultAnswerEnglish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer := composer.Answer(context.Background(), Question{
				Text:     tt.question,
				Language: tt.language,
			})
			if answer.SourceTier != TierStaticDefault {
				t.Fatalf("SourceTier = %q, want %q", answer.SourceTier, TierStaticDefault)
			}
			if answer.Text != tt.want {
				t.Errorf("Text = %q, want %q", answer.Text, tt.want)
			}
		})
	}
}
