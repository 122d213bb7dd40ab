package model

import (
	"time"

	"github.com/google/uuid"
)

type PestAlert struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Region       string    `gorm:"type:varchar(64);not null;index"`
	PestNameUr   string    `gorm:"type:varchar(128)"`
	PestNameEn   string    `gorm:"type:varchar(128);index"`
	CropAffected string    `gorm:"type:varchar(128);index"`
	Severity     string    `gorm:"type:varchar(16)"`
	SymptomsUr   string    `gorm:"type:text"`
	SymptomsEn   string    `gorm:"type:text"`
	PreventionUr string    `gorm:"type:text"`
	PreventionEn string    `gorm:"type:text"`
	TreatmentUr  string    `gorm:"type:text"`
	TreatmentEn  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (PestAlert) TableName() string {
	return "pest_alerts"
}
