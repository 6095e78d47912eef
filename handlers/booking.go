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

// BookingHandler serves the traveller side of the booking workflow.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler with the given service.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler submits a booking request against an active tour.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	caller, ok := middleware.AuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Create(caller, req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrTourNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrTourUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("CreateBookingHandler: creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking request submitted successfully! Please wait for confirmation from the tour operator.",
		"booking": b,
	})
}

// ListMyBookingsHandler returns the caller's bookings, newest first.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	caller, ok := middleware.AuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	bookings, err := h.Service.ListForUser(caller.ID)
	if err != nil {
		getLogger(c).Error("ListMyBookingsHandler: listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns one booking scoped to the caller.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	caller, ok := middleware.AuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	b, err := h.Service.GetForUser(c.Param("id"), caller.ID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("GetBookingHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler cancels a pending or confirmed booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	caller, ok := middleware.AuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	b, err := h.Service.Cancel(c.Param("id"), caller.ID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrCannotCancel):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			getLogger(c).Error("CancelBookingHandler: cancel failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "booking": b})
}
