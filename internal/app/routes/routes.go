package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campusadmin/internal/app/controllers"
	"github.com/yigit/campusadmin/internal/app/models/dto"
	"github.com/yigit/campusadmin/internal/middleware"
)

// Registrar mounts a CRUD screen on its route group
type Registrar interface {
	Register(group *gin.RouterGroup)
}

// SetupRouter configures all console routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	profileController *controllers.ProfileController,
	studentController Registrar,
	courseController Registrar,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// --- Public routes ---
	router.GET(middleware.LoginPath, authController.LoginPage)
	router.POST(middleware.LoginPath, authController.Login)
	router.POST("/logout", authController.Logout)

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// --- Authenticated screens ---
	screens := router.Group("")
	screens.Use(sessionMiddleware.RequireSession())
	{
		screens.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, controllers.HomePath)
		})
		screens.GET("/dashboard", dashboardController.Dashboard)
		screens.GET("/profile", profileController.Profile)

		studentController.Register(screens.Group("/students"))
		courseController.Register(screens.Group("/courses"))
	}
}
