package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatHistory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    *uuid.UUID
	Question  string
	Answer    string
	Language  string
	CreatedAt time.Time
}
