package specification

import (
	"time"

	"gorm.io/gorm"
)

// CropNameLike matches crop_name by substring. Stored crop names are the
// localized Urdu display names, so exact equality is too brittle for
// chat-side lookups.
type CropNameLike struct {
	Name string
}

func (s CropNameLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("crop_name LIKE ?", "%"+s.Name+"%")
}

// RecordedSince keeps rows recorded after the cutoff
type RecordedSince struct {
	Cutoff time.Time
}

func (s RecordedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("recorded_at > ?", s.Cutoff)
}
