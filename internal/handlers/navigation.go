package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/navigation"
)

// Navigation godoc
// @Summary     Route guard
// @Description Tells the app whether the current location must be left. Signed-out users
// @Description outside the auth area go to sign-in; signed-in users inside it go to "/".
// @Tags        navigation
// @Produce     json
// @Param       location query string false "Current location" default(/)
// @Success     200 {object} models.NavigationResponse
// @Router      /navigation [get]
func Navigation(c *gin.Context) {
	location := c.DefaultQuery("location", navigation.RootPath)
	_, authenticated := middleware.UserID(c)

	c.JSON(http.StatusOK, models.NavigationResponse{
		Location:      location,
		Authenticated: authenticated,
		Redirect:      navigation.Redirect(authenticated, location),
	})
}
