package handlers

import (
	"errors"
	"net/http"

	"tourhub/middleware"
	"tourhub/services/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessAuthHandler serves business registration, login and profile.
type BusinessAuthHandler struct {
	Service business.BusinessService
}

// NewBusinessAuthHandler creates a BusinessAuthHandler with the given service.
func NewBusinessAuthHandler(svc business.BusinessService) *BusinessAuthHandler {
	return &BusinessAuthHandler{Service: svc}
}

// RegisterHandler creates a new business account.
func (h *BusinessAuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req business.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.Register(req)
	if err != nil {
		if errors.Is(err, business.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("RegisterHandler: business registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Business registered successfully! You can now login.",
		"business": gin.H{
			"id":           created.ID,
			"businessName": created.BusinessName,
			"email":        created.Email,
			"status":       created.Status,
		},
	})
}

// LoginHandler verifies credentials and returns a token plus profile.
func (h *BusinessAuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, business.ErrBlocked), errors.Is(err, business.ErrPendingApproval):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, business.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			logger.Error("LoginHandler: business authentication failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    resp.Token,
		"business": resp.Business,
	})
}

// GetProfileHandler returns the authenticated business's profile.
func (h *BusinessAuthHandler) GetProfileHandler(c *gin.Context) {
	caller, ok := middleware.AuthBusiness(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	profile, err := h.Service.GetProfile(caller.ID)
	if err != nil {
		if errors.Is(err, business.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("GetProfileHandler: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler merges a partial document into the caller's profile.
// Email, password and status changes are silently discarded.
func (h *BusinessAuthHandler) UpdateProfileHandler(c *gin.Context) {
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

	updated, err := h.Service.UpdateProfile(caller.ID, updates)
	if err != nil {
		// Schema violations surface through the generic handler path.
		logger.Error("UpdateProfileHandler: update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "business": updated})
}
