package mapper

import (
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/model"
)

type PestAlertMapper struct{}

func NewPestAlertMapper() *PestAlertMapper {
	return &PestAlertMapper{}
}

func (m *PestAlertMapper) ToEntity(p *model.PestAlert) *entity.PestAlert {
	if p == nil {
		return nil
	}

	return &entity.PestAlert{
		Id:           p.Id,
		Region:       p.Region,
		PestNameUr:   p.PestNameUr,
		PestNameEn:   p.PestNameEn,
		CropAffected: p.CropAffected,
		Severity:     p.Severity,
		SymptomsUr:   p.SymptomsUr,
		SymptomsEn:   p.SymptomsEn,
		PreventionUr: p.PreventionUr,
		PreventionEn: p.PreventionEn,
		TreatmentUr:  p.TreatmentUr,
		TreatmentEn:  p.TreatmentEn,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *PestAlertMapper) ToModel(p *entity.PestAlert) *model.PestAlert {
	if p == nil {
		return nil
	}

	return &model.PestAlert{
		Id:           p.Id,
		Region:       p.Region,
		PestNameUr:   p.PestNameUr,
		PestNameEn:   p.PestNameEn,
		CropAffected: p.CropAffected,
		Severity:     p.Severity,
		SymptomsUr:   p.SymptomsUr,
		SymptomsEn:   p.SymptomsEn,
		PreventionUr: p.PreventionUr,
		PreventionEn: p.PreventionEn,
		TreatmentUr:  p.TreatmentUr,
		TreatmentEn:  p.TreatmentEn,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *PestAlertMapper) ToEntities(pests []*model.PestAlert) []*entity.PestAlert {
	entities := make([]*entity.PestAlert, len(pests))
	for i, p := range pests {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
