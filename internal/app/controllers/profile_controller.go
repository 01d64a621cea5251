package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusadmin/internal/app/views"
	"github.com/yigit/campusadmin/internal/middleware"
)

// ProfileController serves the identity screen
type ProfileController struct{}

// NewProfileController creates a new ProfileController
func NewProfileController() *ProfileController {
	return &ProfileController{}
}

// Profile renders the signed-in user's details from the session
func (c *ProfileController) Profile(ctx *gin.Context) {
	session := middleware.CurrentSession(ctx)
	ctx.HTML(http.StatusOK, "profile", views.NewPage("Profile", "/profile", &session.User, nil).
		WithCSRF(middleware.CSRFToken(ctx)))
}
