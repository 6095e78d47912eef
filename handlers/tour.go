package handlers

import (
	"errors"
	"net/http"
	"strconv"

	tourRepo "tourhub/database/repository/tour"
	"tourhub/middleware"
	"tourhub/models"
	"tourhub/services/tour"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TourHandler serves the public tour catalog.
type TourHandler struct {
	Service tour.TourService
}

// NewTourHandler creates a TourHandler with the given service.
func NewTourHandler(svc tour.TourService) *TourHandler {
	return &TourHandler{Service: svc}
}

// ListToursHandler returns active tours matching the optional filters.
func (h *TourHandler) ListToursHandler(c *gin.Context) {
	logger := getLogger(c)

	filter := tourRepo.ListFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
	}
	if featured := c.Query("featured"); featured != "" {
		val := featured == "true"
		filter.Featured = &val
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	tours, err := h.Service.List(filter)
	if err != nil {
		logger.Error("ListToursHandler: failed to list tours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tours == nil {
		tours = []models.Tour{}
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours, "total": len(tours)})
}

// GetCategoriesHandler returns the distinct categories across active tours.
func (h *TourHandler) GetCategoriesHandler(c *gin.Context) {
	categories, err := h.Service.Categories()
	if err != nil {
		getLogger(c).Error("GetCategoriesHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCitiesHandler returns the distinct cities across active tours.
func (h *TourHandler) GetCitiesHandler(c *gin.Context) {
	cities, err := h.Service.Cities()
	if err != nil {
		getLogger(c).Error("GetCitiesHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// GetTourByIDHandler returns one tour by id.
func (h *TourHandler) GetTourByIDHandler(c *gin.Context) {
	t, err := h.Service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, tour.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("GetTourByIDHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTourHandler creates a tour from the request payload. Retained from
// the legacy public router; the business-scoped create is the one that
// forces ownership.
func (h *TourHandler) CreateTourHandler(c *gin.Context) {
	logger := getLogger(c)

	var t models.Tour
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Create(&t)
	if err != nil {
		logger.Error("CreateTourHandler: creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tour created successfully", "tour": created})
}

// AddReviewHandler appends a traveller review to a tour.
func (h *TourHandler) AddReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	caller, ok := middleware.AuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	t, err := h.Service.AddReview(c.Param("id"), caller, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, tour.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, tour.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("AddReviewHandler: review failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully", "tour": t})
}
