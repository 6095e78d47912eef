package middleware

import (
	"errors"
	"net/http"
	"strings"

	userRepo "tourhub/database/repository/user"
	"tourhub/models"
	"tourhub/utils"

	"github.com/gin-gonic/gin"
)

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// JWTAuthUserMiddleware guards traveller routes. It verifies the bearer
// token, checks the role claim, loads the account fresh from the store on
// every request, and attaches it to the context.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token provided"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}
		if role != models.RoleUser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. User account required."})
			return
		}

		usr, err := repo.GetByID(userID)
		if err != nil {
			if errors.Is(err, userRepo.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
			return
		}

		if usr.Status == models.StatusBlocked {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your account has been blocked"})
			return
		}

		c.Set("authUser", usr)
		c.Set("userID", usr.ID)
		c.Next()
	}
}

// AuthUser returns the traveller attached by JWTAuthUserMiddleware.
func AuthUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("authUser")
	if !exists {
		return nil, false
	}
	usr, ok := val.(*models.User)
	return usr, ok
}
