package bookingRepo

import (
	"tourhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
//
// Bookings are never deleted, only transitioned, so there is no Delete.
// The scoped getters filter on both the booking id and the principal id,
// so a non-owner's request is indistinguishable from a missing booking.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByIDForUser retrieves a booking scoped to the creating user.
	GetByIDForUser(id, userID string) (*models.Booking, error)
	// GetByIDForBusiness retrieves a booking scoped to the owning business.
	GetByIDForBusiness(id, businessID string) (*models.Booking, error)
	// ListByUser retrieves a user's bookings, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListByBusiness retrieves a business's bookings, newest first, with an
	// optional status filter.
	ListByBusiness(businessID, status string) ([]models.Booking, error)
	// UpdateStatus applies a $set update to one booking by id.
	UpdateStatus(id string, updateDoc bson.M) error
	// CountByBusiness counts a business's bookings, optionally by status.
	CountByBusiness(businessID, status string) (int64, error)
	// ConfirmedRevenue sums totalAmount over a business's confirmed bookings.
	ConfirmedRevenue(businessID string) (float64, error)
}
