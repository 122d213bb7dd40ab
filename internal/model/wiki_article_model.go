package model

import (
	"time"

	"github.com/google/uuid"
)

type WikiArticle struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TitleUr   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wiki_title"`
	TitleEn   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wiki_title"`
	ContentUr string    `gorm:"type:text"`
	ContentEn string    `gorm:"type:text"`
	Category  string    `gorm:"type:varchar(64);index"`
	Tags      string    `gorm:"type:varchar(255)"`
	WikiUrl   string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (WikiArticle) TableName() string {
	return "wiki_articles"
}
