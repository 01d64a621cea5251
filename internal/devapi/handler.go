package devapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/app/models/dto"
	"github.com/yigit/campusadmin/internal/middleware"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
	"github.com/yigit/campusadmin/internal/pkg/auth"
	"github.com/yigit/campusadmin/internal/pkg/validation"
)

// Handler serves the REST contract the console consumes
type Handler struct {
	store      *Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewHandler creates a new Handler
func NewHandler(store *Store, jwtService *auth.JWTService, logger zerolog.Logger) *Handler {
	return &Handler{
		store:      store,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Router builds the gin engine serving the API under /api
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(h.logger))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
	api.POST("/auth/login", h.Login)

	authenticated := api.Group("")
	authenticated.Use(middleware.BearerAuth(h.jwtService))
	{
		students := resourceHandler[models.Student, models.StudentDraft]{
			name:   "student",
			list:   h.store.ListStudents,
			create: h.store.CreateStudent,
			update: h.store.UpdateStudent,
			remove: h.store.DeleteStudent,
			logger: h.logger,
		}
		students.register(authenticated.Group("/students"))

		courses := resourceHandler[models.Course, models.CourseDraft]{
			name:   "course",
			list:   h.store.ListCourses,
			create: h.store.CreateCourse,
			update: h.store.UpdateCourse,
			remove: h.store.DeleteCourse,
			logger: h.logger,
		}
		courses.register(authenticated.Group("/courses"))
	}

	return router
}

// Login exchanges credentials for a bearer token
func (h *Handler) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrBadRequest, err.Error()))
		return
	}

	user, err := h.store.Authenticate(req.Username, req.Password)
	if err != nil {
		h.logger.Warn().Str("username", req.Username).Msg("Rejected login")
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, _, err := h.jwtService.GenerateToken(user.Username, "", user.Role)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to generate token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	h.logger.Info().Str("username", user.Username).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: user})
}

// resourceHandler exposes one store collection as list/create/update/delete
type resourceHandler[R any, D any] struct {
	name   string
	list   func() []R
	create func(D) R
	update func(int64, D) (R, error)
	remove func(int64) error
	logger zerolog.Logger
}

func (h resourceHandler[R, D]) register(group *gin.RouterGroup) {
	group.GET("", h.handleList)
	group.POST("", h.handleCreate)
	group.PUT("/:id", h.handleUpdate)
	group.DELETE("/:id", h.handleDelete)
}

func (h resourceHandler[R, D]) handleList(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.list())
}

func (h resourceHandler[R, D]) handleCreate(ctx *gin.Context) {
	draft, ok := h.bindDraft(ctx)
	if !ok {
		return
	}
	created := h.create(draft)
	h.logger.Info().Str("resource", h.name).Msg("Record created")
	ctx.JSON(http.StatusCreated, created)
}

func (h resourceHandler[R, D]) handleUpdate(ctx *gin.Context) {
	id, ok := h.parseID(ctx)
	if !ok {
		return
	}
	draft, ok := h.bindDraft(ctx)
	if !ok {
		return
	}
	updated, err := h.update(id, draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (h resourceHandler[R, D]) handleDelete(ctx *gin.Context) {
	id, ok := h.parseID(ctx)
	if !ok {
		return
	}
	if err := h.remove(id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	h.logger.Info().Str("resource", h.name).Int64("id", id).Msg("Record deleted")
	ctx.Status(http.StatusNoContent)
}

func (h resourceHandler[R, D]) bindDraft(ctx *gin.Context) (D, bool) {
	var draft D
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrBadRequest, err.Error()))
		return draft, false
	}
	if errs := validation.Struct(draft); errs != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(errs))
		return draft, false
	}
	return draft, true
}

func (h resourceHandler[R, D]) parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrBadRequest, fmt.Sprintf("invalid %s id", h.name)))
		return 0, false
	}
	return id, true
}
