package mapper

import (
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/model"
)

type WikiArticleMapper struct{}

func NewWikiArticleMapper() *WikiArticleMapper {
	return &WikiArticleMapper{}
}

func (m *WikiArticleMapper) ToEntity(a *model.WikiArticle) *entity.WikiArticle {
	if a == nil {
		return nil
	}

	return &entity.WikiArticle{
		Id:        a.Id,
		TitleUr:   a.TitleUr,
		TitleEn:   a.TitleEn,
		ContentUr: a.ContentUr,
		ContentEn: a.ContentEn,
		Category:  a.Category,
		Tags:      a.Tags,
		WikiUrl:   a.WikiUrl,
		CreatedAt: a.CreatedAt,
	}
}

func (m *WikiArticleMapper) ToModel(a *entity.WikiArticle) *model.WikiArticle {
	if a == nil {
		return nil
	}

	return &model.WikiArticle{
		Id:        a.Id,
		TitleUr:   a.TitleUr,
		TitleEn:   a.TitleEn,
		ContentUr: a.ContentUr,
		ContentEn: a.ContentEn,
		Category:  a.Category,
		Tags:      a.Tags,
		WikiUrl:   a.WikiUrl,
		CreatedAt: a.CreatedAt,
	}
}

func (m *WikiArticleMapper) ToEntities(articles []*model.WikiArticle) []*entity.WikiArticle {
	entities := make([]*entity.WikiArticle, len(articles))
	for i, a := range articles {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
