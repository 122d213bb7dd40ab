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

type ICourseService interface {
	List(ctx context.Context, category, language string) ([]*dto.CourseResponse, error)
	Show(ctx context.Context, id uuid.UUID, language string) (*dto.CourseResponse, error)
}

type courseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCourseService(uowFactory unitofwork.RepositoryFactory) ICourseService {
	return &courseService{
		uowFactory: uowFactory,
	}
}

func courseToResponse(course *entity.Course, language string) *dto.CourseResponse {
	res := dto.CourseResponse{
		Id:          course.Id,
		Title:       course.TitleUr,
		Description: course.DescriptionUr,
		Category:    course.Category,
		VideoUrl:    course.VideoUrl,
		Content:     course.ContentUr,
		CreatedAt:   course.CreatedAt,
	}
	if language == constant.LanguageEnglish {
		res.Title = course.TitleEn
		res.Description = course.DescriptionEn
		res.Content = course.ContentEn
	}
	return &res
}

func (s *courseService) List(ctx context.Context, category, language string) ([]*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.Filter("category", category))
	}

	courses, err := uow.CourseRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	// Dedupe by English title so re-seeded rows never double up
	seen := make(map[string]bool)
	response := make([]*dto.CourseResponse, 0)
	for _, course := range courses {
		if seen[course.TitleEn] {
			continue
		}
		seen[course.TitleEn] = true
		response = append(response, courseToResponse(course, language))
	}

	return response, nil
}

func (s *courseService) Show(ctx context.Context, id uuid.UUID, language string) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	return courseToResponse(course, language), nil
}
