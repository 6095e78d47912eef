package handlers

import (
	businessRepo "tourhub/database/repository/business"
	userRepo "tourhub/database/repository/user"
)

// HandlerBundle aggregates the handlers and the repositories the auth
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	// Repositories used by the auth gates.
	UserRepo     userRepo.UserRepository
	BusinessRepo businessRepo.BusinessRepository

	// Traveller endpoints.
	Auth    *AuthHandler
	Tour    *TourHandler
	Booking *BookingHandler

	// Business endpoints.
	BusinessAuth    *BusinessAuthHandler
	BusinessTour    *BusinessTourHandler
	BusinessBooking *BusinessBookingHandler
}
