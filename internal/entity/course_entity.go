package entity

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TitleUr       string
	TitleEn       string
	DescriptionUr string
	DescriptionEn string
	Category      string
	VideoUrl      string
	ContentUr     string
	ContentEn     string
	CreatedAt     time.Time
}
