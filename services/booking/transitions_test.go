package booking

import (
	"testing"

	"tourhub/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", models.BookingPending, models.BookingConfirmed, true},
		{"pending to rejected", models.BookingPending, models.BookingRejected, true},
		{"pending to cancelled", models.BookingPending, models.BookingCancelled, true},
		{"confirmed to cancelled", models.BookingConfirmed, models.BookingCancelled, true},
		{"confirmed to rejected", models.BookingConfirmed, models.BookingRejected, false},
		{"confirmed to pending", models.BookingConfirmed, models.BookingPending, false},
		{"confirmed to confirmed", models.BookingConfirmed, models.BookingConfirmed, false},
		{"rejected to anything", models.BookingRejected, models.BookingCancelled, false},
		{"rejected to pending", models.BookingRejected, models.BookingPending, false},
		{"cancelled to pending", models.BookingCancelled, models.BookingPending, false},
		{"cancelled to confirmed", models.BookingCancelled, models.BookingConfirmed, false},
		{"unknown status", "archived", models.BookingCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}
