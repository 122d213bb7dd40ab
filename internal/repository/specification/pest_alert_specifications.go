package specification

import "gorm.io/gorm"

// PestNameLike matches either language's pest name by substring
type PestNameLike struct {
	Name string
}

func (s PestNameLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Name + "%"
	return db.Where("pest_name_en LIKE ? OR pest_name_ur LIKE ?", pattern, pattern)
}

// CropAffectedLike matches the affected crop by substring
type CropAffectedLike struct {
	Crop string
}

func (s CropAffectedLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("crop_affected LIKE ?", "%"+s.Crop+"%")
}
