package tourRepo

import (
	"tourhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListFilter narrows the public tour listing. All set fields are combined
// as a conjunction.
type ListFilter struct {
	Category string
	City     string
	Featured *bool
	Page     int
	Limit    int
}

// TourRepository defines methods for tour catalog data access.
//
// The owner-scoped methods filter on both the tour id and the owning
// business id, so a non-owner's request is indistinguishable from a
// missing tour.
type TourRepository interface {
	// Create inserts a new tour record.
	Create(tour *models.Tour) error
	// GetByID retrieves a tour by its unique ID.
	GetByID(id string) (*models.Tour, error)
	// List retrieves active tours matching the filter, newest first.
	List(filter ListFilter) ([]models.Tour, error)
	// Categories returns the distinct categories across active tours.
	Categories() ([]string, error)
	// Cities returns the distinct cities across active tours.
	Cities() ([]string, error)
	// ListByBusiness retrieves all tours owned by a business, newest first,
	// inactive ones included.
	ListByBusiness(businessID string) ([]models.Tour, error)
	// GetOwned retrieves a tour scoped to its owning business.
	GetOwned(id, businessID string) (*models.Tour, error)
	// UpdateOwned applies a partial $set update scoped to the owning business.
	UpdateOwned(id, businessID string, updateDoc bson.M) error
	// DeleteOwned removes a tour scoped to its owning business.
	DeleteOwned(id, businessID string) error
	// SetReviews replaces the embedded review list and its derived fields.
	SetReviews(id string, reviews []models.Review, avgRating float64, totalReviews int) error
	// CountByBusiness counts all tours owned by a business.
	CountByBusiness(businessID string) (int64, error)
}
