package dto

import "github.com/google/uuid"

type ChatRequest struct {
	UserId   *uuid.UUID `json:"user_id"`
	Question string     `json:"question" validate:"required"`
	Language string     `json:"language" validate:"omitempty,oneof=ur en"`
}

type ChatResponse struct {
	Answer   string `json:"answer"`
	Language string `json:"language"`
	Source   string `json:"source"`
}
