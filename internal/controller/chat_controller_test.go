package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubChatService struct {
	lastReq *dto.ChatRequest
}

func (s *stubChatService) Ask(_ context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	s.lastReq = req
	return &dto.ChatResponse{
		Answer:   "گندم کی موجودہ قیمت: 4500.00 روپے فی کلوگرام (PKR/kg) - Punjab",
		Language: "ur",
		Source:   "local_fallback",
	}, nil
}

func newChatTestApp(svc *stubChatService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestChatAskEndpoint(t *testing.T) {
	svc := &stubChatService{}
	app := newChatTestApp(svc)

	body := `{"question":"گندم کی قیمت کیا ہے؟","language":"ur"}`
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res serverutils.Response[dto.ChatResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, "ur", res.Data.Language)
	assert.Equal(t, "local_fallback", res.Data.Source)
	assert.Contains(t, res.Data.Answer, "4500.00")

	assert.NotNil(t, svc.lastReq)
	assert.Equal(t, "گندم کی قیمت کیا ہے؟", svc.lastReq.Question)
	assert.Nil(t, svc.lastReq.UserId)
}

func TestChatAskRejectsBadLanguage(t *testing.T) {
	app := newChatTestApp(&stubChatService{})

	body := `{"question":"hello","language":"fr"}`
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var res serverutils.ErrorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Language")
}
