package specification

import (
	"time"

	"gorm.io/gorm"
)

// CreatedSince keeps rows created after the cutoff
type CreatedSince struct {
	Cutoff time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at > ?", s.Cutoff)
}

// ValidNow keeps alerts that have not expired yet (NULL valid_until never expires)
type ValidNow struct {
	Now time.Time
}

func (s ValidNow) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("valid_until IS NULL OR valid_until > ?", s.Now)
}
