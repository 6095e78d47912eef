package booking

import (
	"time"

	bookingRepo "tourhub/database/repository/booking"
	tourRepo "tourhub/database/repository/tour"
	"tourhub/models"
)

// CreateRequest carries the fields a traveller submits when booking a tour.
type CreateRequest struct {
	TourID          string    `json:"tourId" binding:"required"`
	NumberOfPeople  int       `json:"numberOfPeople" binding:"required,min=1"`
	BookingDate     time.Time `json:"bookingDate" binding:"required"`
	SpecialRequests string    `json:"specialRequests"`
}

// BookingService handles the booking lifecycle for both sides of the
// marketplace: travellers create and cancel, businesses confirm, reject
// and observe.
type BookingService interface {
	// Traveller side.
	Create(caller *models.User, req CreateRequest) (*models.Booking, error)
	ListForUser(userID string) ([]models.Booking, error)
	GetForUser(id, userID string) (*models.Booking, error)
	Cancel(id, userID string) (*models.Booking, error)

	// Business side.
	ListForBusiness(businessID, status string) ([]models.Booking, error)
	GetForBusiness(id, businessID string) (*models.Booking, error)
	Confirm(id, businessID string) (*models.Booking, error)
	Reject(id, businessID, reason string) (*models.Booking, error)
	Stats(businessID string) (*models.BookingStats, error)
}

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	TourRepo tourRepo.TourRepository
}
