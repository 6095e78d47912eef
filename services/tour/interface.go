package tour

import (
	tourRepo "tourhub/database/repository/tour"
	"tourhub/models"

	"github.com/go-redis/redis/v8"
)

// TourService handles the public catalog and the business-scoped
// tour management surface.
type TourService interface {
	// Public catalog.
	List(filter tourRepo.ListFilter) ([]models.Tour, error)
	Get(id string) (*models.Tour, error)
	Categories() ([]string, error)
	Cities() ([]string, error)
	Create(tour *models.Tour) (*models.Tour, error)
	AddReview(tourID string, reviewer *models.User, rating int, comment string) (*models.Tour, error)

	// Business-scoped management. Every mutation is filtered by the owning
	// business id; a non-owner sees the same error as a missing tour.
	ListByBusiness(businessID string) ([]models.Tour, error)
	GetOwned(id, businessID string) (*models.Tour, error)
	UpdateOwned(id, businessID string, updates map[string]interface{}) (*models.Tour, error)
	DeleteOwned(id, businessID string) error
	ToggleVisibility(id, businessID string) (*models.Tour, error)
}

// DefaultTourService is the production implementation of TourService.
// Cache may be nil, in which case the distinct-value lookups always hit
// the store.
type DefaultTourService struct {
	Repo  tourRepo.TourRepository
	Cache *redis.Client
}
