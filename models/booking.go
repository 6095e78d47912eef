package models

import "time"

// Booking status lifecycle. A booking is never deleted, only transitioned.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
)

// Payment status values. No transition in this system touches them; the
// field exists for future extension.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Booking represents a traveller's request to reserve a tour.
//
// CustomerName/Email/Phone and TotalAmount are snapshots taken at creation
// time; later edits to the user profile or the tour price do not change
// historic bookings.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	TourID          string    `bson:"tourId" json:"tourId"`
	BusinessID      string    `bson:"businessId" json:"businessId"`
	CustomerName    string    `bson:"customerName" json:"customerName"`
	CustomerEmail   string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone   string    `bson:"customerPhone" json:"customerPhone"`
	NumberOfPeople  int       `bson:"numberOfPeople" json:"numberOfPeople"`
	BookingDate     time.Time `bson:"bookingDate" json:"bookingDate"`
	TotalAmount     float64   `bson:"totalAmount" json:"totalAmount"`
	Status          string    `bson:"status" json:"status"`
	PaymentStatus   string    `bson:"paymentStatus" json:"paymentStatus"`
	SpecialRequests string    `bson:"specialRequests" json:"specialRequests"`
	RejectionReason string    `bson:"rejectionReason" json:"rejectionReason"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingStats is the dashboard aggregate for one business. Each figure is
// an independent read snapshot; no cross-count consistency is guaranteed.
type BookingStats struct {
	TotalBookings     int64   `json:"totalBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	RejectedBookings  int64   `json:"rejectedBookings"`
	TotalTours        int64   `json:"totalTours"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
