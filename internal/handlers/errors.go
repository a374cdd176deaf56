package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

type errorMapping struct {
	target error
	status int
	code   string
	reload bool
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{services.ErrValidation, http.StatusBadRequest, "invalid_input", false},
	{services.ErrSessionExpired, http.StatusUnauthorized, "session_expired", false},
	{services.ErrAuth, http.StatusUnauthorized, "authentication_failed", false},
	{services.ErrForbidden, http.StatusForbidden, "forbidden", false},
	{services.ErrProfileNotFound, http.StatusNotFound, "profile_not_found", false},
	{services.ErrOrderNotFound, http.StatusNotFound, "order_not_found", true},
	{services.ErrAlreadyClaimed, http.StatusConflict, "already_claimed", true},
	{services.ErrInvalidTransition, http.StatusConflict, "invalid_transition", true},
	{services.ErrNotDeletable, http.StatusConflict, "not_deletable", true},
	{services.ErrUpload, http.StatusBadGateway, "upload_failed", false},
}

// respondError maps service errors to HTTP responses. Anything unknown is
// logged and reported as a 500 without details.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, models.ErrorResponse{
				Error:   m.code,
				Message: err.Error(),
				Reload:  m.reload,
			})
			return
		}
	}

	zap.L().Error("request failed",
		zap.String("method", c.Request.Method), zap.String("path", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "something went wrong, please try again",
	})
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return 0, false
	}
	return id, true
}
