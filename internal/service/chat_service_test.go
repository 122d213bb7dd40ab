package service

import (
	"context"
	"testing"
	"time"

	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/pkg/assistant/compose"
	"kisaan-academy-be/pkg/assistant/facts"
	"kisaan-academy-be/pkg/chatbot"
	"kisaan-academy-be/pkg/commodity"
	"kisaan-academy-be/pkg/weatherapi"

	"github.com/google/uuid"
)

// newOfflineChatService wires the real composer with unconfigured
// external clients, so answers come from stored data or canned text.
func newOfflineChatService(factory *fakeRepositoryFactory) IChatService {
	gemini := chatbot.NewGeminiClient("")
	priceProvider := facts.NewPriceProvider(commodity.NewClient("", time.Minute), factory, nopLogger{})
	pestProvider := facts.NewPestProvider(factory, nopLogger{})
	weatherProvider := facts.NewWeatherProvider(weatherapi.NewClient("", time.Minute), factory, nopLogger{})

	composer := compose.NewComposer(gemini, priceProvider, pestProvider, weatherProvider, nopLogger{})
	return NewChatService(factory, composer, nopLogger{})
}

func TestAskAnswersFromStoredPrice(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.marketPrices.oneRow = &entity.MarketPrice{
		Id:         uuid.New(),
		CropName:   "گندم",
		Region:     "Punjab",
		PricePerKg: 4500,
		RecordedAt: time.Now(),
	}

	svc := newOfflineChatService(factory)
	res, err := svc.Ask(context.Background(), &dto.ChatRequest{
		Question: "گندم کی قیمت کیا ہے؟",
		Language: "ur",
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	want := "گندم کی موجودہ قیمت: 4500.00 روپے فی کلوگرام (PKR/kg) - Punjab"
	if res.Answer != want {
		t.Errorf("Answer = %q, want %q", res.Answer, want)
	}
	if res.Source != compose.TierLocalFallback {
		t.Errorf("Source = %q, want %q", res.Source, compose.TierLocalFallback)
	}
	if res.Language != "ur" {
		t.Errorf("Language = %q, want ur", res.Language)
	}
}

func TestAskAnswersFromStoredPest(t *testing.T) {
	factory, uow := newFakeFactory()
	uow.pestAlerts.rows = []*entity.PestAlert{{
		Id:           uuid.New(),
		Region:       "Sindh",
		PestNameUr:   "سفید مکھی",
		PestNameEn:   "Whitefly",
		CropAffected: "کپاس",
		Severity:     "high",
		PreventionEn: "Install yellow sticky traps.",
	}}

	svc := newOfflineChatService(factory)
	res, err := svc.Ask(context.Background(), &dto.ChatRequest{
		Question: "How do I control whitefly on cotton?",
		Language: "en",
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if res.Source != compose.TierLocalFallback {
		t.Fatalf("Source = %q, want %q", res.Source, compose.TierLocalFallback)
	}
	wantPrefix := "**Whitefly**\nCrop: کپاس"
	if len(res.Answer) < len(wantPrefix) || res.Answer[:len(wantPrefix)] != wantPrefix {
		t.Errorf("Answer = %q, want prefix %q", res.Answer, wantPrefix)
	}
}

func TestAskDefaultsToCannedAnswer(t *testing.T) {
	factory, _ := newFakeFactory()

	svc := newOfflineChatService(factory)
	res, err := svc.Ask(context.Background(), &dto.ChatRequest{
		Question: "کمپوسٹ کیسے بنائیں؟",
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if res.Source != compose.TierStaticDefault {
		t.Errorf("Source = %q, want %q", res.Source, compose.TierStaticDefault)
	}
	if res.Answer != "کمپوسٹ بنانے کے لیے، براہ کرم Sustainable Practices Wiki میں دیکھیں۔" {
		t.Errorf("Answer = %q", res.Answer)
	}
	// Language defaults to Urdu when the request omits it
	if res.Language != "ur" {
		t.Errorf("Language = %q, want ur", res.Language)
	}
}

func TestAskPersistsHistoryForKnownUser(t *testing.T) {
	factory, uow := newFakeFactory()
	userId := uuid.New()

	svc := newOfflineChatService(factory)
	if _, err := svc.Ask(context.Background(), &dto.ChatRequest{
		UserId:   &userId,
		Question: "hello",
		Language: "en",
	}); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if len(uow.chatHistory.created) != 1 {
		t.Fatalf("got %d history rows, want 1", len(uow.chatHistory.created))
	}
	row := uow.chatHistory.created[0]
	if row.UserId == nil || *row.UserId != userId {
		t.Errorf("UserId = %v, want %v", row.UserId, userId)
	}
	if row.Question != "hello" || row.Answer == "" {
		t.Errorf("unexpected history row: %+v", row)
	}
}

func TestAskSkipsHistoryForAnonymous(t *testing.T) {
	factory, uow := newFakeFactory()

	svc := newOfflineChatService(factory)
	if _, err := svc.Ask(context.Background(), &dto.ChatRequest{
		Question: "hello",
		Language: "en",
	}); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if len(uow.chatHistory.created) != 0 {
		t.Errorf("got %d history rows, want 0", len(uow.chatHistory.created))
	}
}
