package business

import (
	businessRepo "tourhub/database/repository/business"
	"tourhub/models"
)

// RegisterRequest carries the fields accepted at business registration.
type RegisterRequest struct {
	BusinessName    string                 `json:"businessName" binding:"required"`
	ContactPerson   string                 `json:"contactPerson" binding:"required"`
	Email           string                 `json:"email" binding:"required,email"`
	Password        string                 `json:"password" binding:"required,min=6"`
	Phone           string                 `json:"phone" binding:"required"`
	GSTNumber       string                 `json:"gstNumber" binding:"required"`
	BusinessAddress models.BusinessAddress `json:"businessAddress"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token    string           `json:"token"`
	Business *models.Business `json:"business"`
}

// BusinessService handles business registration, login and profile management.
type BusinessService interface {
	Register(req RegisterRequest) (*models.Business, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetProfile(id string) (*models.Business, error)
	UpdateProfile(id string, updates map[string]interface{}) (*models.Business, error)
}

// DefaultBusinessService is the production implementation of BusinessService.
type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}
