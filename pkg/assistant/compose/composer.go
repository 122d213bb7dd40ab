package compose

import (
	"context"
	"strings"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/pkg/logger"
	"kisaan-academy-be/pkg/assistant/facts"
	"kisaan-academy-be/pkg/assistant/intent"
)

// Question is an immutable incoming chat question.
type Question struct {
	Text     string
	Language string
}

const (
	TierGenerative    = "generative"
	TierLocalFallback = "local_fallback"
	TierStaticDefault = "static_default"
)

// Answer is the composed reply plus the tier that produced it.
type Answer struct {
	Text       string
	SourceTier string
}

// Generator produces a free-form answer from a fact-grounded prompt.
// Satisfied by the Gemini client.
type Generator interface {
	Available() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Composer runs the degradation chain: generative answer over a
// fact-grounded prompt, then direct provider answers, then canned
// keyword responses. It never returns an error; the worst case is the
// default sentence.
type Composer struct {
	gen     Generator
	price   facts.Provider
	pest    facts.Provider
	weather facts.Provider
	log     logger.ILogger
}

func NewComposer(
	gen Generator,
	price facts.Provider,
	pest facts.Provider,
	weather facts.Provider,
	log logger.ILogger,
) *Composer {
	return &Composer{
		gen:     gen,
		price:   price,
		pest:    pest,
		weather: weather,
		log:     log,
	}
}

func (c *Composer) provider(kind intent.Kind) facts.Provider {
	switch kind {
	case intent.KindPrice:
		return c.price
	case intent.KindPest:
		return c.pest
	case intent.KindWeather:
		return c.weather
	}
	return nil
}

// buildPrompt assembles the generative context: language preamble, fact
// blocks in the fixed order weather, price, pest, then the question.
func (c *Composer) buildPrompt(ctx context.Context, q Question) string {
	preamble := constant.AssistantPreambleEnglish
	if q.Language == constant.LanguageUrdu {
		preamble = constant.AssistantPreambleUrdu
	}

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n")

	for _, match := range intent.Classify(q.Text) {
		provider := c.provider(match.Kind)
		if provider == nil {
			continue
		}
		block := provider.ContextBlock(ctx, facts.Query{
			Question: q.Text,
			Entity:   match.Entity,
			Language: q.Language,
		})
		if block.Text == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(block.Text)
		b.WriteString("\n")
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(q.Text)
	b.WriteString("\nAnswer:")
	return b.String()
}

func (c *Composer) generate(ctx context.Context, q Question) (string, bool) {
	if !c.gen.Available() {
		return "", false
	}

	prompt := c.buildPrompt(ctx, q)
	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.log.Warn("Composer", "generative answer failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.log.Warn("Composer", "generative answer was empty", nil)
		return "", false
	}
	return text, true
}

// localFallback re-classifies the question and takes the first non-empty
// provider answer in the order pest, price, weather.
func (c *Composer) localFallback(ctx context.Context, q Question) (string, bool) {
	order := []struct {
		detect func(string) (bool, string)
		kind   intent.Kind
	}{
		{intent.DetectPest, intent.KindPest},
		{intent.DetectPrice, intent.KindPrice},
		{intent.DetectWeather, intent.KindWeather},
	}

	for _, step := range order {
		ok, entity := step.detect(q.Text)
		if !ok {
			continue
		}
		block := c.provider(step.kind).FallbackAnswer(ctx, facts.Query{
			Question: q.Text,
			Entity:   entity,
			Language: q.Language,
		})
		if block.Text != "" {
			return block.Text, true
		}
	}
	return "", false
}

type cannedResponse struct {
	keyword string
	text    string
}

var cannedUrdu = []cannedResponse{
	{"price", "قیمتوں کے لیے، براہ کرم مارکیٹ انٹیلی جنس ہب چیک کریں۔"},
	{"قیمت", "قیمتوں کے لیے، براہ کرم مارکیٹ انٹیلی جنس ہب چیک کریں۔"},
	{"disease", "فصلوں کی بیماریوں کے لیے، آپ کا مقامی زرعی ماہر سے مشورہ لینا بہتر ہوگا۔"},
	{"بیماری", "فصلوں کی بیماریوں کے لیے، آپ کا مقامی زرعی ماہر سے مشورہ لینا بہتر ہوگا۔"},
	{"compost", "کمپوسٹ بنانے کے لیے، براہ کرم Sustainable Practices Wiki میں دیکھیں۔"},
	{"کمپوسٹ", "کمپوسٹ بنانے کے لیے، براہ کرم Sustainable Practices Wiki میں دیکھیں۔"},
	{"water", "پانی کی بچت کے طریقوں کے لیے، ہمارے وسائل کیلکولیٹرز دیکھیں۔"},
	{"پانی", "پانی کی بچت کے طریقوں کے لیے، ہمارے وسائل کیلکولیٹرز دیکھیں۔"},
}

var cannedEnglish = []cannedResponse{
	{"price", "Please check the Market Intelligence Hub for prices."},
	{"disease", "For crop diseases, it's better to consult your local agricultural expert."},
	{"compost", "For making compost, please check the Sustainable Practices Wiki."},
	{"water", "For water conservation methods, see our resource calculators."},
}

func (c *Composer) staticDefault(q Question) string {
	canned := cannedEnglish
	defaultText := constant.DefaultAnswerEnglish
	if q.Language == constant.LanguageUrdu {
		canned = cannedUrdu
		defaultText = constant.DefaultAnswerUrdu
	}

	lower := strings.ToLower(q.Text)
	for _, response := range canned {
		if strings.Contains(lower, response.keyword) {
			return response.text
		}
	}
	return defaultText
}

// Answer runs the chain. Every answer is tagged with the tier that
// produced it.
func (c *Composer) Answer(ctx context.Context, q Question) Answer {
	if text, ok := c.generate(ctx, q); ok {
		return Answer{Text: text, SourceTier: TierGenerative}
	}
	if text, ok := c.localFallback(ctx, q); ok {
		return Answer{Text: text, SourceTier: TierLocalFallback}
	}
	return Answer{Text: c.staticDefault(q), SourceTier: TierStaticDefault}
}
