package database

import (
	"kisaan-academy-be/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the full table set.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.MarketPrice{},
		&model.WeatherAlert{},
		&model.PestAlert{},
		&model.WikiArticle{},
		&model.ChatHistory{},
	)
}
