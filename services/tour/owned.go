package tour

import (
	"errors"

	tourRepo "tourhub/database/repository/tour"
	"tourhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// immutableTourFields can never be changed through a tour update.
// businessId in particular is fixed at creation time.
var immutableTourFields = []string{"id", "_id", "businessId", "reviews", "avgRating", "totalReviews", "createdAt", "updatedAt"}

// ListByBusiness retrieves every tour owned by the business, inactive
// ones included. Only the public listing hides inactive tours.
func (s *DefaultTourService) ListByBusiness(businessID string) ([]models.Tour, error) {
	return s.Repo.ListByBusiness(businessID)
}

// GetOwned retrieves a tour scoped to its owning business.
func (s *DefaultTourService) GetOwned(id, businessID string) (*models.Tour, error) {
	t, err := s.Repo.GetOwned(id, businessID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return nil, ErrNotFoundOwned
		}
		return nil, err
	}
	return t, nil
}

// UpdateOwned merges a partial document into a tour the business owns.
func (s *DefaultTourService) UpdateOwned(id, businessID string, updates map[string]interface{}) (*models.Tour, error) {
	for _, field := range immutableTourFields {
		delete(updates, field)
	}

	if raw, ok := updates["price"]; ok {
		price, isNumber := raw.(float64)
		if !isNumber || price <= 0 {
			return nil, ErrValidation
		}
	}

	if len(updates) > 0 {
		if err := s.Repo.UpdateOwned(id, businessID, bson.M(updates)); err != nil {
			if errors.Is(err, tourRepo.ErrNotFound) {
				return nil, ErrNotFoundOwned
			}
			return nil, err
		}
		s.invalidateCatalogCache()
	}
	return s.GetOwned(id, businessID)
}

// DeleteOwned removes a tour the business owns.
func (s *DefaultTourService) DeleteOwned(id, businessID string) error {
	if err := s.Repo.DeleteOwned(id, businessID); err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return ErrNotFoundOwned
		}
		return err
	}
	s.invalidateCatalogCache()
	return nil
}

// ToggleVisibility flips the isActive flag on a tour the business owns.
func (s *DefaultTourService) ToggleVisibility(id, businessID string) (*models.Tour, error) {
	t, err := s.GetOwned(id, businessID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateOwned(id, businessID, bson.M{"isActive": !t.IsActive}); err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return nil, ErrNotFoundOwned
		}
		return nil, err
	}
	s.invalidateCatalogCache()

	t.IsActive = !t.IsActive
	return t, nil
}
