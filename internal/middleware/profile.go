package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

const ProfileKey = "profile"

type ProfileRequirer interface {
	Require(ctx context.Context, authID uuid.UUID) (*models.Profile, error)
}

// RequireProfile loads the Usuarios row of the authenticated user. Must run
// after AuthMiddleware.
func RequireProfile(profiles ProfileRequirer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
			return
		}

		profile, err := profiles.Require(c.Request.Context(), authID)
		if errors.Is(err, services.ErrProfileNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "profile_not_found",
				Message: "no profile exists for this account yet",
			})
			return
		}
		if err != nil {
			zap.L().Error("failed to load profile", zap.String("auth_id", authID.String()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal_error"})
			return
		}

		c.Set(ProfileKey, profile)
		c.Next()
	}
}

// RequireRole must run after RequireProfile.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := ProfileFromContext(c)
		if profile == nil || profile.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "forbidden",
				Message: "this action requires the " + string(role) + " role",
			})
			return
		}
		c.Next()
	}
}

func ProfileFromContext(c *gin.Context) *models.Profile {
	v, ok := c.Get(ProfileKey)
	if !ok {
		return nil
	}
	profile, _ := v.(*models.Profile)
	return profile
}
