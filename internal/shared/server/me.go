package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifespan-backend/internal/shared/server/middleware"
	"lifespan-backend/internal/shared/server/respond"
)

type meResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Guest  bool   `json:"guest"`
}

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", me)
}

func me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}
	respond.OK(c, meResponse{
		UserID: userID,
		Email:  middleware.UserEmailFromContext(c),
		Name:   middleware.UserNameFromContext(c),
		Guest:  middleware.IsGuest(c),
	})
}
