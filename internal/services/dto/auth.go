package dto

import "gamestore_backend/internal/models"

type SignupRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Age       int    `json:"age" validate:"required,gte=13"`
	CountryID string `json:"country_id" validate:"required,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user,omitempty"`
}

type AdminLoginResponse struct {
	AccessToken string        `json:"access_token"`
	Admin       *models.Admin `json:"admin,omitempty"`
}
