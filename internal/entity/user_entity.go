package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string
	Phone     string
	Region    string
	Language  string
	CreatedAt time.Time
}
