package dto

import (
	"time"

	"github.com/google/uuid"
)

// CourseResponse carries the course in a single language, picked from the
// bilingual columns by the language query parameter.
type CourseResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	VideoUrl    string    `json:"video_url"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
