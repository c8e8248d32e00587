package mapper

import (
	"cinimagic-be/internal/entity"
	"cinimagic-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	return &model.User{
		Id:        e.Id,
		Username:  e.Username,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *UserMapper) ToEntity(mo *model.User) *entity.User {
	return &entity.User{
		Id:        mo.Id,
		Username:  mo.Username,
		Password:  mo.Password,
		CreatedAt: mo.CreatedAt,
		UpdatedAt: mo.UpdatedAt,
	}
}
