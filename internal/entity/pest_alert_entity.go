package entity

import (
	"time"

	"github.com/google/uuid"
)

type PestAlert struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Region       string
	PestNameUr   string
	PestNameEn   string
	CropAffected string
	Severity     string
	SymptomsUr   string
	SymptomsEn   string
	PreventionUr string
	PreventionEn string
	TreatmentUr  string
	TreatmentEn  string
	CreatedAt    time.Time
}
