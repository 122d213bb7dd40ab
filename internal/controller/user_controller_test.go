package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubUserService struct {
	user *dto.UserResponse
}

func (s *stubUserService) Create(_ context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	return &dto.CreateUserResponse{
		Id:      uuid.New(),
		Message: "User created successfully",
	}, nil
}

func (s *stubUserService) Show(_ context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	if s.user != nil && s.user.Id == id {
		return s.user, nil
	}
	return nil, nil
}

func newUserTestApp(svc *stubUserService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewUserController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestUserCreateEndpoint(t *testing.T) {
	app := newUserTestApp(&stubUserService{})

	body := `{"name":"Ahmed Khan","phone":"+923001234567","region":"Punjab","language":"ur"}`
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res serverutils.Response[dto.CreateUserResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, "User created successfully", res.Data.Message)
	assert.NotEqual(t, uuid.Nil, res.Data.Id)
}

func TestUserShowEndpoint(t *testing.T) {
	userId := uuid.New()
	app := newUserTestApp(&stubUserService{
		user: &dto.UserResponse{
			Id:        userId,
			Name:      "Ahmed Khan",
			Region:    "Punjab",
			Language:  "ur",
			CreatedAt: time.Now(),
		},
	})

	req := httptest.NewRequest("GET", "/api/users/"+userId.String(), nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res serverutils.Response[dto.UserResponse]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, userId, res.Data.Id)
	assert.Equal(t, "Ahmed Khan", res.Data.Name)
}

func TestUserShowNotFound(t *testing.T) {
	app := newUserTestApp(&stubUserService{})

	req := httptest.NewRequest("GET", "/api/users/"+uuid.NewString(), nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var res serverutils.ErrorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Success)
	assert.Equal(t, "User not found", res.Message)
}
