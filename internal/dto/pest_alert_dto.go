package dto

import (
	"time"

	"github.com/google/uuid"
)

// PestAlertResponse keeps both name columns alongside the language-picked
// one so clients can render either script.
type PestAlertResponse struct {
	Id           uuid.UUID `json:"id"`
	Region       string    `json:"region"`
	PestName     string    `json:"pest_name"`
	PestNameUr   string    `json:"pest_name_ur"`
	PestNameEn   string    `json:"pest_name_en"`
	CropAffected string    `json:"crop_affected"`
	Severity     string    `json:"severity"`
	Symptoms     string    `json:"symptoms"`
	Prevention   string    `json:"prevention"`
	Treatment    string    `json:"treatment"`
	CreatedAt    time.Time `json:"created_at"`
}
