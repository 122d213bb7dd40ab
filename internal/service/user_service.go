package service

import (
	"context"
	"time"

	"kisaan-academy-be/internal/constant"
	"kisaan-academy-be/internal/dto"
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/repository/specification"
	"kisaan-academy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	language := req.Language
	if language == "" {
		language = constant.LanguageUrdu
	}

	user := entity.User{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Region:    req.Region,
		Language:  language,
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	return &dto.CreateUserResponse{
		Id:      user.Id,
		Message: "User created successfully",
	}, nil
}

func (s *userService) Show(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return &dto.UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Region:    user.Region,
		Language:  user.Language,
		CreatedAt: user.CreatedAt,
	}, nil
}
