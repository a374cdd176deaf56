package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/navigation"
	"printshop-backend/internal/services"
)

type ProfilesHandler struct {
	resolver *services.SessionResolver
}

func NewProfilesHandler(resolver *services.SessionResolver) *ProfilesHandler {
	return &ProfilesHandler{resolver: resolver}
}

// Me godoc
// @Summary     Current profile and screens
// @Description Resolves the profile of the signed-in account, waiting briefly for it to
// @Description appear right after sign-up. When no profile shows up, profile is null and
// @Description the client screens are returned.
// @Tags        profiles
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.MeResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /me [get]
func (h *ProfilesHandler) Me(c *gin.Context) {
	authID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	profile, err := h.resolver.Resolve(c.Request.Context(), authID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MeResponse{
		Profile: models.NewProfileResponse(profile),
		Screens: screenResponses(navigation.Screens(profile)),
	})
}

func screenResponses(screens []navigation.Screen) []models.ScreenResponse {
	out := make([]models.ScreenResponse, len(screens))
	for i, s := range screens {
		out[i] = models.ScreenResponse{Name: s.Name, Path: s.Path, Title: s.Title}
	}
	return out
}
