package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/app/screens"
	"github.com/yigit/campusadmin/internal/app/views"
	"github.com/yigit/campusadmin/internal/middleware"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
)

// ClientFactory returns the Resource Client bound to a session
type ClientFactory[R any, D any] func(session *models.Session) screens.Client[R, D]

// ResourcePage is the template payload of a CRUD screen
type ResourcePage[R any, D any] struct {
	Screen        *screens.Controller[R, D]
	PendingDelete *R
	DeletePrompt  string
}

// ResourceController serves one CRUD screen: list with search, add and edit
// forms in a modal, and a confirmation step before delete.
type ResourceController[R any, D any] struct {
	desc      screens.Descriptor[R, D]
	clientFor ClientFactory[R, D]
	page      string
	title     string
	basePath  string
	logger    zerolog.Logger
	opts      []screens.Option
}

// ResourceConfig names the template and shell labels of a CRUD screen
type ResourceConfig struct {
	Page     string
	Title    string
	BasePath string
}

// NewResourceController creates a new ResourceController
func NewResourceController[R any, D any](
	desc screens.Descriptor[R, D],
	clientFor ClientFactory[R, D],
	cfg ResourceConfig,
	logger zerolog.Logger,
	opts ...screens.Option,
) *ResourceController[R, D] {
	return &ResourceController[R, D]{
		desc:      desc,
		clientFor: clientFor,
		page:      cfg.Page,
		title:     cfg.Title,
		basePath:  cfg.BasePath,
		logger:    logger,
		opts:      opts,
	}
}

// Register mounts the screen's routes on group
func (rc *ResourceController[R, D]) Register(group *gin.RouterGroup) {
	group.GET("", rc.List)
	group.GET("/new", rc.New)
	group.POST("", rc.Create)
	group.GET("/:id/edit", rc.Edit)
	group.POST("/:id", rc.Update)
	group.GET("/:id/delete", rc.ConfirmDelete)
	group.POST("/:id/delete", rc.Delete)
}

func (rc *ResourceController[R, D]) newScreen(ctx *gin.Context) *screens.Controller[R, D] {
	session := middleware.CurrentSession(ctx)
	return screens.NewController(rc.desc, rc.clientFor(session), rc.logger, rc.opts...)
}

func (rc *ResourceController[R, D]) render(ctx *gin.Context, status int, page ResourcePage[R, D]) {
	session := middleware.CurrentSession(ctx)
	var user *models.User
	if session != nil {
		user = &session.User
	}
	ctx.HTML(status, rc.page, views.NewPage(rc.title, rc.basePath, user, page).
		WithCSRF(middleware.CSRFToken(ctx)))
}

// List renders the collection narrowed by ?q=
func (rc *ResourceController[R, D]) List(ctx *gin.Context) {
	screen := rc.newScreen(ctx)
	screen.Activate(ctx.Request.Context())
	screen.SetQuery(ctx.Query("q"))
	rc.render(ctx, http.StatusOK, ResourcePage[R, D]{Screen: screen})
}

// New renders the list with an empty add form open
func (rc *ResourceController[R, D]) New(ctx *gin.Context) {
	screen := rc.newScreen(ctx)
	screen.Activate(ctx.Request.Context())
	screen.SetQuery(ctx.Query("q"))
	screen.OpenAdd()
	rc.render(ctx, http.StatusOK, ResourcePage[R, D]{Screen: screen})
}

// Edit renders the list with the form seeded from record :id
func (rc *ResourceController[R, D]) Edit(ctx *gin.Context) {
	id, ok := rc.parseID(ctx)
	if !ok {
		return
	}

	screen := rc.newScreen(ctx)
	screen.Activate(ctx.Request.Context())
	screen.SetQuery(ctx.Query("q"))
	if err := screen.OpenEdit(id); err != nil {
		screen.Alert = fmt.Sprintf("The %s you selected no longer exists.", rc.desc.Singular)
		rc.render(ctx, http.StatusNotFound, ResourcePage[R, D]{Screen: screen})
		return
	}
	rc.render(ctx, http.StatusOK, ResourcePage[R, D]{Screen: screen})
}

// Create submits the add form
func (rc *ResourceController[R, D]) Create(ctx *gin.Context) {
	screen := rc.newScreen(ctx)
	screen.SetQuery(ctx.PostForm("q"))
	screen.OpenAdd()
	rc.submit(ctx, screen)
}

// Update submits the edit form of record :id
func (rc *ResourceController[R, D]) Update(ctx *gin.Context) {
	id, ok := rc.parseID(ctx)
	if !ok {
		return
	}

	screen := rc.newScreen(ctx)
	screen.Activate(ctx.Request.Context())
	screen.SetQuery(ctx.PostForm("q"))
	if err := screen.OpenEdit(id); err != nil {
		screen.Alert = fmt.Sprintf("The %s you selected no longer exists.", rc.desc.Singular)
		rc.render(ctx, http.StatusNotFound, ResourcePage[R, D]{Screen: screen})
		return
	}
	rc.submit(ctx, screen)
}

// submit binds the posted form into the open draft and saves it. A failed
// save re-renders the modal with the draft and one generic alert; a
// successful one redirects to the list so a reload cannot post it again.
func (rc *ResourceController[R, D]) submit(ctx *gin.Context, screen *screens.Controller[R, D]) {
	if err := ctx.Request.ParseForm(); err != nil {
		screen.Alert = fmt.Sprintf("Error saving %s. Please check all fields.", rc.desc.Singular)
		screen.Activate(ctx.Request.Context())
		rc.render(ctx, http.StatusBadRequest, ResourcePage[R, D]{Screen: screen})
		return
	}
	// Type errors are recorded on the screen and reported by Submit.
	_ = screen.BindForm(ctx.Request.PostForm)

	if err := screen.Submit(ctx.Request.Context()); err != nil {
		screen.Activate(ctx.Request.Context())
		rc.render(ctx, statusFor(err), ResourcePage[R, D]{Screen: screen})
		return
	}
	ctx.Redirect(http.StatusSeeOther, views.WithQuery(rc.basePath, screen.Query))
}

// ConfirmDelete renders the confirmation step for record :id
func (rc *ResourceController[R, D]) ConfirmDelete(ctx *gin.Context) {
	id, ok := rc.parseID(ctx)
	if !ok {
		return
	}

	screen := rc.newScreen(ctx)
	screen.Activate(ctx.Request.Context())
	screen.SetQuery(ctx.Query("q"))

	item, found := screen.Find(id)
	if !found {
		screen.Alert = fmt.Sprintf("The %s you selected no longer exists.", rc.desc.Singular)
		rc.render(ctx, http.StatusNotFound, ResourcePage[R, D]{Screen: screen})
		return
	}
	rc.render(ctx, http.StatusOK, ResourcePage[R, D]{
		Screen:        screen,
		PendingDelete: &item,
		DeletePrompt:  screen.DeletePrompt(),
	})
}

// Delete removes record :id when the form carries confirm=yes. Either way the
// browser is sent back to the list.
func (rc *ResourceController[R, D]) Delete(ctx *gin.Context) {
	id, ok := rc.parseID(ctx)
	if !ok {
		return
	}

	query := ctx.PostForm("q")
	screen := rc.newScreen(ctx)
	screen.SetQuery(query)

	confirmed := func(string) bool { return ctx.PostForm("confirm") == "yes" }
	if _, err := screen.Delete(ctx.Request.Context(), id, confirmed); err != nil {
		screen.Activate(ctx.Request.Context())
		rc.render(ctx, statusFor(err), ResourcePage[R, D]{Screen: screen})
		return
	}
	ctx.Redirect(http.StatusSeeOther, views.WithQuery(rc.basePath, query))
}

func (rc *ResourceController[R, D]) parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		renderError(ctx, http.StatusNotFound, fmt.Sprintf("Invalid %s ID", rc.desc.Singular))
		return 0, false
	}
	return id, true
}

// statusFor picks the response status of a re-rendered screen after a failed write
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func renderError(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "error", views.Page{
		Title: http.StatusText(status),
		Data:  views.ErrorData{Code: status, Message: message},
	})
}
