package model

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TitleUr       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_courses_title"`
	TitleEn       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_courses_title"`
	DescriptionUr string    `gorm:"type:text"`
	DescriptionEn string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(64);index"`
	VideoUrl      string    `gorm:"type:varchar(512)"`
	ContentUr     string    `gorm:"type:text"`
	ContentEn     string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Course) TableName() string {
	return "courses"
}
