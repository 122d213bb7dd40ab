package mapper

import (
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/model"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) ToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}

	return &entity.Course{
		Id:            c.Id,
		TitleUr:       c.TitleUr,
		TitleEn:       c.TitleEn,
		DescriptionUr: c.DescriptionUr,
		DescriptionEn: c.DescriptionEn,
		Category:      c.Category,
		VideoUrl:      c.VideoUrl,
		ContentUr:     c.ContentUr,
		ContentEn:     c.ContentEn,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *CourseMapper) ToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}

	return &model.Course{
		Id:            c.Id,
		TitleUr:       c.TitleUr,
		TitleEn:       c.TitleEn,
		DescriptionUr: c.DescriptionUr,
		DescriptionEn: c.DescriptionEn,
		Category:      c.Category,
		VideoUrl:      c.VideoUrl,
		ContentUr:     c.ContentUr,
		ContentEn:     c.ContentEn,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *CourseMapper) ToEntities(courses []*model.Course) []*entity.Course {
	entities := make([]*entity.Course, len(courses))
	for i, c := range courses {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
