package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Region   string `json:"region"`
	Language string `json:"language" validate:"omitempty,oneof=ur en"`
}

type CreateUserResponse struct {
	Id      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Region    string    `json:"region"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}
