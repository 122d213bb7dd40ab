package mapper

import (
	"kisaan-academy-be/internal/entity"
	"kisaan-academy-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Region:    u.Region,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Region:    u.Region,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
