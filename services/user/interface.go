package user

import (
	userRepo "tourhub/database/repository/user"
	"tourhub/models"
)

// RegisterRequest carries the fields accepted at traveller registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService handles traveller registration, login and lookup.
type UserService interface {
	Register(req RegisterRequest) (*models.User, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
