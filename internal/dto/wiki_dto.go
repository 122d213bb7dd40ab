package dto

import (
	"time"

	"github.com/google/uuid"
)

type WikiArticleResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      string    `json:"tags"`
	WikiUrl   string    `json:"wiki_url"`
	CreatedAt time.Time `json:"created_at"`
}
