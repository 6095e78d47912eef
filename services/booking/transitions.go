package booking

import "tourhub/models"

// transitions is the complete booking status graph. Confirmed, rejected
// and cancelled are terminal except for the traveller cancelling a
// confirmed booking.
var transitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingRejected, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCancelled},
	models.BookingRejected:  {},
	models.BookingCancelled: {},
}

// CanTransition reports whether a booking may move from one status to
// another. Any edge outside the graph is rejected.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
