package middleware

import (
	"errors"
	"net/http"

	businessRepo "tourhub/database/repository/business"
	"tourhub/models"
	"tourhub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthBusinessMiddleware guards business routes. Same mechanism as the
// traveller gate, plus the business-only isActive check.
func JWTAuthBusinessMiddleware(repo businessRepo.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token provided"})
			return
		}

		businessID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}
		if role != models.RoleBusiness {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Business account required."})
			return
		}

		biz, err := repo.GetByID(businessID)
		if err != nil {
			if errors.Is(err, businessRepo.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Business not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		if biz.Status == models.StatusBlocked {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your business account has been blocked"})
			return
		}
		if !biz.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your business account is inactive"})
			return
		}

		c.Set("authBusiness", biz)
		c.Set("businessID", biz.ID)
		c.Next()
	}
}

// AuthBusiness returns the business attached by JWTAuthBusinessMiddleware.
func AuthBusiness(c *gin.Context) (*models.Business, bool) {
	val, exists := c.Get("authBusiness")
	if !exists {
		return nil, false
	}
	biz, ok := val.(*models.Business)
	return biz, ok
}
