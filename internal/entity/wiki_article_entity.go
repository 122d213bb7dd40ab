package entity

import (
	"time"

	"github.com/google/uuid"
)

type WikiArticle struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TitleUr   string
	TitleEn   string
	ContentUr string
	ContentEn string
	Category  string
	Tags      string
	WikiUrl   string
	CreatedAt time.Time
}
