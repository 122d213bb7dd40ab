package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatHistory struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"`
	Question  string     `gorm:"type:text;not null"`
	Answer    string     `gorm:"type:text;not null"`
	Language  string     `gorm:"type:varchar(8);default:ur"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}
