package businessRepo

import (
	"tourhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository defines methods for business account data access.
type BusinessRepository interface {
	// GetByID retrieves a business by its unique ID.
	GetByID(id string) (*models.Business, error)
	// GetByEmail retrieves a business by its email address.
	// Returns (nil, nil) when no account matches.
	GetByEmail(email string) (*models.Business, error)
	// Create inserts a new business record.
	Create(business *models.Business) error
	// UpdateSetDocument applies a partial $set update to a business document.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
