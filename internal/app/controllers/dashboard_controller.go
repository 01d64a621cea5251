package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/app/services"
	"github.com/yigit/campusadmin/internal/app/views"
	"github.com/yigit/campusadmin/internal/middleware"
)

// DashboardController serves the statistics screen
type DashboardController struct {
	dashboard services.DashboardService
	students  ClientFactory[models.Student, models.StudentDraft]
	courses   ClientFactory[models.Course, models.CourseDraft]
	logger    zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(
	dashboard services.DashboardService,
	students ClientFactory[models.Student, models.StudentDraft],
	courses ClientFactory[models.Course, models.CourseDraft],
	logger zerolog.Logger,
) *DashboardController {
	return &DashboardController{
		dashboard: dashboard,
		students:  students,
		courses:   courses,
		logger:    logger,
	}
}

// Dashboard renders the totals and the student and course previews. A failed
// fetch has already been logged by the service and shows empty panels.
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	session := middleware.CurrentSession(ctx)

	stats, _ := c.dashboard.Load(ctx.Request.Context(), c.students(session), c.courses(session))
	ctx.HTML(http.StatusOK, "dashboard", views.NewPage("Dashboard", "/dashboard", &session.User, stats).
		WithCSRF(middleware.CSRFToken(ctx)))
}
