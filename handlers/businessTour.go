package handlers

import (
	"errors"
	"net/http"

	"tourhub/middleware"
	"tourhub/models"
	"tourhub/services/tour"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessTourHandler serves the business-scoped tour management surface.
type BusinessTourHandler struct {
	Service tour.TourService
}

// NewBusinessTourHandler creates a BusinessTourHandler with the given service.
func NewBusinessTourHandler(svc tour.TourService) *BusinessTourHandler {
	return &BusinessTourHandler{Service: svc}
}

// ListToursHandler returns every tour the caller owns, inactive ones included.
func (h *BusinessTourHandler) ListToursHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	tours, err := h.Service.ListByBusiness(caller.ID)
	if err != nil {
		getLogger(c).Error("ListToursHandler: listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tours == nil {
		tours = []models.Tour{}
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours, "total": len(tours)})
}

// CreateTourHandler creates a tour owned by the caller. The payload's
// businessId is overridden with the caller's id.
func (h *BusinessTourHandler) CreateTourHandler(c *gin.Context) {
	logger := getLogger(c)

	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var t models.Tour
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	t.BusinessID = caller.ID

	created, err := h.Service.Create(&t)
	if err != nil {
		logger.Error("CreateTourHandler: creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tour created successfully", "tour": created})
}

// GetTourHandler returns one tour the caller owns.
func (h *BusinessTourHandler) GetTourHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	t, err := h.Service.GetOwned(c.Param("id"), caller.ID)
	if err != nil {
		if errors.Is(err, tour.ErrNotFoundOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("GetTourHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, t)
}

// UpdateTourHandler merges a partial document into a tour the caller owns.
func (h *BusinessTourHandler) UpdateTourHandler(c *gin.Context) {
	logger := getLogger(c)

	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	t, err := h.Service.UpdateOwned(c.Param("id"), caller.ID, updates)
	if err != nil {
		if errors.Is(err, tour.ErrNotFoundOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("UpdateTourHandler: update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour updated successfully", "tour": t})
}

// DeleteTourHandler removes a tour the caller owns.
func (h *BusinessTourHandler) DeleteTourHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	if err := h.Service.DeleteOwned(c.Param("id"), caller.ID); err != nil {
		if errors.Is(err, tour.ErrNotFoundOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("DeleteTourHandler: delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted successfully"})
}

// ToggleTourHandler flips the visibility flag on a tour the caller owns.
func (h *BusinessTourHandler) ToggleTourHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	t, err := h.Service.ToggleVisibility(c.Param("id"), caller.ID)
	if err != nil {
		if errors.Is(err, tour.ErrNotFoundOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("ToggleTourHandler: toggle failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	state := "disabled"
	if t.IsActive {
		state = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tour " + state + " successfully", "tour": t})
}
