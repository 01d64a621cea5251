// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models/dto"
	"github.com/yigit/campusadmin/internal/app/services"
	"github.com/yigit/campusadmin/internal/app/views"
	"github.com/yigit/campusadmin/internal/middleware"
)

// HomePath is where a successful login lands
const HomePath = "/dashboard"

// LoginPageData is the payload of the login template
type LoginPageData struct {
	Username string
	Error    string
}

// AuthController serves the login screen and logout
type AuthController struct {
	sessions services.SessionService
	cookies  *middleware.SessionMiddleware
	logger   zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions services.SessionService, cookies *middleware.SessionMiddleware, logger zerolog.Logger) *AuthController {
	return &AuthController{
		sessions: sessions,
		cookies:  cookies,
		logger:   logger,
	}
}

// LoginPage renders the login form, or skips it for an authenticated browser
func (c *AuthController) LoginPage(ctx *gin.Context) {
	if c.cookies.Lookup(ctx) != nil {
		ctx.Redirect(http.StatusSeeOther, HomePath)
		return
	}
	c.renderLogin(ctx, http.StatusOK, LoginPageData{})
}

// Login handles the submitted credentials. Any failure shows the same single
// message and leaves the browser anonymous.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Incomplete login form")
		c.renderLogin(ctx, http.StatusUnauthorized, LoginPageData{
			Username: ctx.PostForm("username"),
			Error:    services.LoginFailedMessage,
		})
		return
	}

	session, err := c.sessions.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.renderLogin(ctx, http.StatusUnauthorized, LoginPageData{
			Username: req.Username,
			Error:    services.LoginFailedMessage,
		})
		return
	}

	if err := c.cookies.IssueCookie(ctx, session); err != nil {
		c.logger.Error().Err(err).Msg("Failed to issue session cookie")
		c.sessions.Logout(session.ID)
		c.renderLogin(ctx, http.StatusInternalServerError, LoginPageData{
			Username: req.Username,
			Error:    services.LoginFailedMessage,
		})
		return
	}

	ctx.Redirect(http.StatusSeeOther, HomePath)
}

// Logout drops the session and its cookie. The backend is not contacted.
func (c *AuthController) Logout(ctx *gin.Context) {
	if session := c.cookies.Lookup(ctx); session != nil {
		c.sessions.Logout(session.ID)
	}
	c.cookies.ClearCookie(ctx)
	ctx.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (c *AuthController) renderLogin(ctx *gin.Context, status int, data LoginPageData) {
	ctx.HTML(status, "login", views.Page{Title: "Login", CSRFToken: middleware.CSRFToken(ctx), Data: data})
}
