package booking

import "errors"

var (
	// ErrTourNotFound indicates the booked tour does not exist.
	ErrTourNotFound = errors.New("Tour not found")
	// ErrTourUnavailable indicates the tour is inactive or unavailable.
	ErrTourUnavailable = errors.New("This tour is not available for booking")
	// ErrNotFound indicates no booking matches the traveller-scoped lookup.
	ErrNotFound = errors.New("Booking not found")
	// ErrNotFoundOwned deliberately does not distinguish a missing booking
	// from one belonging to another business.
	ErrNotFoundOwned = errors.New("Booking not found or access denied")
	// ErrCannotCancel indicates the booking is past the cancellable states.
	ErrCannotCancel = errors.New("This booking cannot be cancelled")
	// ErrOnlyPendingConfirmable indicates a confirm on a non-pending booking.
	ErrOnlyPendingConfirmable = errors.New("Only pending bookings can be confirmed")
	// ErrOnlyPendingRejectable indicates a reject on a non-pending booking.
	ErrOnlyPendingRejectable = errors.New("Only pending bookings can be rejected")
)
