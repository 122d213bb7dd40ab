package facts

import (
	"context"

	"kisaan-academy-be/pkg/assistant/intent"
)

// Block is the outcome of one domain's fact provision. Empty Text means
// the domain produced no facts; callers never see nil or an error.
type Block struct {
	Domain   intent.Kind
	Language string
	Text     string
}

// Query carries one question through a provider. Entity is the canonical
// key extracted for the provider's domain, possibly empty.
type Query struct {
	Question string
	Entity   string
	Language string
}

// Provider resolves facts for one domain with a three-tier fallback
// chain: live API, stored records, static default. Every tier failure is
// absorbed and logged, never returned.
type Provider interface {
	// ContextBlock renders the domain's facts for the generative prompt.
	ContextBlock(ctx context.Context, q Query) Block
	// FallbackAnswer renders a direct farmer-facing answer for the same
	// facts, used when no generative answer is available.
	FallbackAnswer(ctx context.Context, q Query) Block
}

const (
	priceUnavailableUr = "قیمت کی معلومات دستیاب نہیں ہے۔"
	priceUnavailableEn = "Price information not available."

	weatherUnavailableUr = "[موسمی معلومات فی الوقت دستیاب نہیں۔]"
	weatherUnavailableEn = "[Weather data not available at the moment.]"
)
