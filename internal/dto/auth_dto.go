package dto

import (
	"github.com/google/uuid"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	Screen      string  `json:"screen"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
