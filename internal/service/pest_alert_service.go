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

type IPestAlertService interface {
	List(ctx context.Context, region, pestName, language string) ([]*dto.PestAlertResponse, error)
	Show(ctx context.Context, id uuid.UUID, language string) (*dto.PestAlertResponse, error)
}

type pestAlertService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPestAlertService(uowFactory unitofwork.RepositoryFactory) IPestAlertService {
	return &pestAlertService{
		uowFactory: uowFactory,
	}
}

func pestToResponse(pest *entity.PestAlert, language string) *dto.PestAlertResponse {
	name := pest.PestNameUr
	symptoms := pest.SymptomsUr
	prevention := pest.PreventionUr
	treatment := pest.TreatmentUr
	if language == constant.LanguageEnglish {
		name = pest.PestNameEn
		symptoms = pest.SymptomsEn
		prevention = pest.PreventionEn
		treatment = pest.TreatmentEn
	}
	return &dto.PestAlertResponse{
		Id:           pest.Id,
		Region:       pest.Region,
		PestName:     name,
		PestNameUr:   pest.PestNameUr,
		PestNameEn:   pest.PestNameEn,
		CropAffected: pest.CropAffected,
		Severity:     pest.Severity,
		Symptoms:     symptoms,
		Prevention:   prevention,
		Treatment:    treatment,
		CreatedAt:    pest.CreatedAt,
	}
}

func (s *pestAlertService) List(ctx context.Context, region, pestName, language string) ([]*dto.PestAlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 20},
	}
	if region != "" {
		specs = append(specs, specification.Filter("region", region))
	}
	if pestName != "" {
		specs = append(specs, specification.PestNameLike{Name: pestName})
	}

	rows, err := uow.PestAlertRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.PestAlertResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, pestToResponse(row, language))
	}
	return response, nil
}

func (s *pestAlertService) Show(ctx context.Context, id uuid.UUID, language string) (*dto.PestAlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pest, err := uow.PestAlertRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if pest == nil {
		return nil, nil
	}

	return pestToResponse(pest, language), nil
}
