package service

import (
	"context"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWikiService interface {
	List(ctx context.Context, category, language string) ([]*dto.WikiArticleResponse, error)
	Show(ctx context.Context, id uuid.UUID, language string) (*dto.WikiArticleResponse, error)
}

type wikiService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWikiService(uowFactory unitofwork.RepositoryFactory) IWikiService {
	return &wikiService{
		uowFactory: uowFactory,
	}
}

func articleToResponse(article *entity.WikiArticle, language string) *dto.WikiArticleResponse {
	res := dto.WikiArticleResponse{
		Id:        article.Id,
		Title:     article.TitleUr,
		Content:   article.ContentUr,
		Category:  article.Category,
		Tags:      article.Tags,
		WikiUrl:   article.WikiUrl,
		CreatedAt: article.CreatedAt,
	}
	if language == constant.LanguageEnglish {
		res.Title = article.TitleEn
		res.Content = article.ContentEn
	}
	return &res
}

func (s *wikiService) List(ctx context.Context, category, language string) ([]*dto.WikiArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.Filter("category", category))
	}

	articles, err := uow.WikiArticleRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	// Dedupe by English title so re-seeded rows never double up
	seen := make(map[string]bool)
	response := make([]*dto.WikiArticleResponse, 0)
	for _, article := range articles {
		if seen[article.TitleEn] {
			continue
		}
		seen[article.TitleEn] = true
		response = append(response, articleToResponse(article, language))
	}

	return response, nil
}

func (s *wikiService) Show(ctx context.Context, id uuid.UUID, language string) (*dto.WikiArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.WikiArticleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	return articleToResponse(article, language), nil
}
