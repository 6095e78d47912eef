package business

import (
	"fmt"

	"tourhub/models"
	"tourhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new business account with a hashed password.
// New accounts default to approved/active, matching the onboarding flow
// where admin review happens out of band.
func (s *DefaultBusinessService) Register(req RegisterRequest) (*models.Business, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing business", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	businessObj := models.Business{
		ID:              uuid.New().String(),
		BusinessName:    req.BusinessName,
		ContactPerson:   req.ContactPerson,
		Email:           req.Email,
		PasswordHash:    string(hashedPassword),
		Phone:           req.Phone,
		GSTNumber:       req.GSTNumber,
		BusinessAddress: req.BusinessAddress,
		Status:          models.StatusApproved,
		IsActive:        true,
		Role:            models.RoleBusiness,
	}

	if err := s.Repo.Create(&businessObj); err != nil {
		utils.GetLogger().Error("Register: failed to create business", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return &businessObj, nil
}

// Authenticate verifies credentials and issues a signed 7-day token.
func (s *DefaultBusinessService) Authenticate(email, password string) (*AuthResponse, error) {
	businessRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch business", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if businessRec == nil {
		return nil, ErrNotFound
	}

	if businessRec.Status == models.StatusBlocked {
		return nil, ErrBlocked
	}
	if businessRec.Status == models.StatusPending {
		return nil, ErrPendingApproval
	}

	if err := bcrypt.CompareHashAndPassword([]byte(businessRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(businessRec.ID, models.RoleBusiness)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{Token: token, Business: businessRec}, nil
}

// GetProfile retrieves a business account by id.
func (s *DefaultBusinessService) GetProfile(id string) (*models.Business, error) {
	return s.Repo.GetByID(id)
}

// guardedFields can never be changed through a profile update; they require
// a separate admin/reset path that this system does not implement.
var guardedFields = []string{"id", "_id", "email", "password", "passwordHash", "status", "role", "createdAt", "updatedAt"}

// UpdateProfile merges a partial document into the business profile.
// Guarded fields are silently discarded rather than rejected.
func (s *DefaultBusinessService) UpdateProfile(id string, updates map[string]interface{}) (*models.Business, error) {
	for _, field := range guardedFields {
		delete(updates, field)
	}

	if err := validateProfileUpdates(updates); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateSetDocument(id, bson.M(updates)); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByID(id)
}

// validateProfileUpdates enforces the document schema on the nested
// objects a partial update may carry.
func validateProfileUpdates(updates map[string]interface{}) error {
	for _, key := range []string{"businessAddress", "socialLinks"} {
		if raw, ok := updates[key]; ok {
			if _, isMap := raw.(map[string]interface{}); !isMap {
				return ErrValidation
			}
		}
	}
	for _, key := range []string{"businessName", "contactPerson", "phone", "gstNumber", "logo", "banner", "description"} {
		if raw, ok := updates[key]; ok {
			if _, isString := raw.(string); !isString {
				return ErrValidation
			}
		}
	}
	if raw, ok := updates["isActive"]; ok {
		if _, isBool := raw.(bool); !isBool {
			return ErrValidation
		}
	}
	return nil
}
