package handlers

import (
	"errors"
	"net/http"

	"tourhub/middleware"
	"tourhub/models"
	"tourhub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessBookingHandler serves the business side of the booking workflow.
type BusinessBookingHandler struct {
	Service booking.BookingService
}

// NewBusinessBookingHandler creates a BusinessBookingHandler with the given service.
func NewBusinessBookingHandler(svc booking.BookingService) *BusinessBookingHandler {
	return &BusinessBookingHandler{Service: svc}
}

// ListBookingsHandler returns the caller's bookings with an optional
// status filter, newest first.
func (h *BusinessBookingHandler) ListBookingsHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	bookings, err := h.Service.ListForBusiness(caller.ID, c.Query("status"))
	if err != nil {
		getLogger(c).Error("ListBookingsHandler: listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": len(bookings)})
}

// GetStatsHandler returns the caller's dashboard aggregates.
func (h *BusinessBookingHandler) GetStatsHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	stats, err := h.Service.Stats(caller.ID)
	if err != nil {
		getLogger(c).Error("GetStatsHandler: aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetBookingHandler returns one booking the caller owns.
func (h *BusinessBookingHandler) GetBookingHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	b, err := h.Service.GetForBusiness(c.Param("id"), caller.ID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFoundOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("GetBookingHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, b)
}

// ConfirmBookingHandler confirms a pending booking.
func (h *BusinessBookingHandler) ConfirmBookingHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	b, err := h.Service.Confirm(c.Param("id"), caller.ID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFoundOwned):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrOnlyPendingConfirmable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			getLogger(c).Error("ConfirmBookingHandler: confirm failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed successfully", "booking": b})
}

// RejectBookingHandler rejects a pending booking with an optional reason.
func (h *BusinessBookingHandler) RejectBookingHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	// The body is optional; an empty reason falls back to the default.
	_ = c.ShouldBindJSON(&req)

	b, err := h.Service.Reject(c.Param("id"), caller.ID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFoundOwned):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrOnlyPendingRejectable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			getLogger(c).Error("RejectBookingHandler: reject failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking rejected successfully", "booking": b})
}
