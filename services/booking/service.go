package booking

import (
	"errors"

	bookingRepo "tourhub/database/repository/booking"
	tourRepo "tourhub/database/repository/tour"
	"tourhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// defaultRejectionReason is used when a business rejects without a reason.
const defaultRejectionReason = "No reason provided"

// Create validates the target tour and persists a pending booking.
//
// The caller's contact fields and the tour price are copied onto the
// booking at this instant; later profile or price edits never touch
// historic bookings. The availability check and the insert are separate
// store round-trips with no isolation between them.
func (s *DefaultBookingService) Create(caller *models.User, req CreateRequest) (*models.Booking, error) {
	t, err := s.TourRepo.GetByID(req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	if !t.IsActive || !t.Available {
		return nil, ErrTourUnavailable
	}

	customerPhone := caller.Phone
	if customerPhone == "" {
		customerPhone = "Not provided"
	}

	bookingObj := models.Booking{
		ID:              uuid.New().String(),
		UserID:          caller.ID,
		TourID:          t.ID,
		BusinessID:      t.BusinessID,
		CustomerName:    caller.Name,
		CustomerEmail:   caller.Email,
		CustomerPhone:   customerPhone,
		NumberOfPeople:  req.NumberOfPeople,
		BookingDate:     req.BookingDate,
		TotalAmount:     t.Price * float64(req.NumberOfPeople),
		Status:          models.BookingPending,
		PaymentStatus:   models.PaymentPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.Repo.Create(&bookingObj); err != nil {
		return nil, err
	}
	return &bookingObj, nil
}

// ListForUser retrieves the traveller's own bookings, newest first.
func (s *DefaultBookingService) ListForUser(userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(userID)
}

// GetForUser retrieves one booking scoped to the creating traveller.
func (s *DefaultBookingService) GetForUser(id, userID string) (*models.Booking, error) {
	b, err := s.Repo.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Cancel transitions a traveller's booking to cancelled. Permitted only
// from pending or confirmed; the transition is unconditional once
// permitted, there is no refund logic.
func (s *DefaultBookingService) Cancel(id, userID string) (*models.Booking, error) {
	b, err := s.GetForUser(id, userID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, models.BookingCancelled) {
		return nil, ErrCannotCancel
	}

	if err := s.Repo.UpdateStatus(b.ID, bson.M{"status": models.BookingCancelled}); err != nil {
		return nil, err
	}
	b.Status = models.BookingCancelled
	return b, nil
}

// ListForBusiness retrieves a business's bookings, newest first, with an
// optional status filter.
func (s *DefaultBookingService) ListForBusiness(businessID, status string) ([]models.Booking, error) {
	return s.Repo.ListByBusiness(businessID, status)
}

// GetForBusiness retrieves one booking scoped to the owning business.
func (s *DefaultBookingService) GetForBusiness(id, businessID string) (*models.Booking, error) {
	b, err := s.Repo.GetByIDForBusiness(id, businessID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFoundOwned
		}
		return nil, err
	}
	return b, nil
}

// Confirm transitions a pending booking to confirmed. One-shot and
// irreversible within this system.
func (s *DefaultBookingService) Confirm(id, businessID string) (*models.Booking, error) {
	b, err := s.GetForBusiness(id, businessID)
	if err != nil {
		return nil, err
	}

	if b.Status != models.BookingPending {
		return nil, ErrOnlyPendingConfirmable
	}

	if err := s.Repo.UpdateStatus(b.ID, bson.M{"status": models.BookingConfirmed}); err != nil {
		return nil, err
	}
	b.Status = models.BookingConfirmed
	return b, nil
}

// Reject transitions a pending booking to rejected with a free-text
// reason. One-shot and irreversible within this system.
func (s *DefaultBookingService) Reject(id, businessID, reason string) (*models.Booking, error) {
	b, err := s.GetForBusiness(id, businessID)
	if err != nil {
		return nil, err
	}

	if b.Status != models.BookingPending {
		return nil, ErrOnlyPendingRejectable
	}

	if reason == "" {
		reason = defaultRejectionReason
	}

	if err := s.Repo.UpdateStatus(b.ID, bson.M{"status": models.BookingRejected, "rejectionReason": reason}); err != nil {
		return nil, err
	}
	b.Status = models.BookingRejected
	b.RejectionReason = reason
	return b, nil
}
