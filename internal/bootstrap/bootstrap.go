package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/campusadmin/internal/app/controllers"
	"github.com/yigit/campusadmin/internal/app/models"
	appRepos "github.com/yigit/campusadmin/internal/app/repositories"
	appRoutes "github.com/yigit/campusadmin/internal/app/routes"
	"github.com/yigit/campusadmin/internal/app/screens"
	appServices "github.com/yigit/campusadmin/internal/app/services"
	"github.com/yigit/campusadmin/internal/app/views"
	"github.com/yigit/campusadmin/internal/config"
	appMiddleware "github.com/yigit/campusadmin/internal/middleware"
	pkgAuth "github.com/yigit/campusadmin/internal/pkg/auth"
	"github.com/yigit/campusadmin/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SessionService      appServices.SessionService
	DashboardService    appServices.DashboardService
	AuthController      *appControllers.AuthController
	DashboardController *appControllers.DashboardController
	ProfileController   *appControllers.ProfileController
	StudentController   *appControllers.ResourceController[models.Student, models.StudentDraft]
	CourseController    *appControllers.ResourceController[models.Course, models.CourseDraft]
	SessionMiddleware   *appMiddleware.SessionMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Renderer            *views.Renderer
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.ParseConfig(cfg.Logging.Level, cfg.Logging.Format)
	lgr := logger.Configure(logCfg)
	lgr.Info().Str("logLevel", string(logCfg.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the backend client, services and controllers.
// httpClient may be nil, in which case one is built from the backend timeout.
func BuildDependencies(cfg *config.Config, httpClient appRepos.HTTPDoer, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Backend.Timeout}
	}
	client, err := appRepos.NewClient(cfg.Backend.BaseURL, httpClient, logger.Component(lgr, "backend"))
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	deps.Repos = appRepos.NewRepositories(client, appRepos.Paths{
		Students: cfg.Backend.StudentsPath,
		Courses:  cfg.Backend.CoursesPath,
		Login:    cfg.Backend.LoginPath,
	})

	deps.Renderer, err = views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    cfg.Session.Lifetime,
		TokenIssuer: cfg.Session.Issuer,
	})

	// Initialize services
	deps.SessionService = appServices.NewSessionService(deps.Repos.AuthRepository, cfg.Session.Lifetime, logger.Component(lgr, "session"))
	deps.DashboardService = appServices.NewDashboardService(logger.Component(lgr, "dashboard"))

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.JWTService, deps.SessionService, appMiddleware.CookieConfig{
		Name:     cfg.Session.CookieName,
		Lifetime: cfg.Session.Lifetime,
		Secure:   cfg.Session.Secure,
	}, lgr)

	var opts []screens.Option
	if cfg.Backend.ReconcileInline {
		opts = append(opts, screens.WithReconcile(screens.ReconcileApply))
	}

	students := func(s *models.Session) screens.Client[models.Student, models.StudentDraft] {
		return deps.Repos.StudentRepository.WithToken(s.Token)
	}
	courses := func(s *models.Session) screens.Client[models.Course, models.CourseDraft] {
		return deps.Repos.CourseRepository.WithToken(s.Token)
	}

	deps.AuthController = appControllers.NewAuthController(deps.SessionService, deps.SessionMiddleware, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, students, courses, lgr)
	deps.ProfileController = appControllers.NewProfileController()
	deps.StudentController = appControllers.NewResourceController(screens.Students, students, appControllers.ResourceConfig{
		Page:     "students",
		Title:    "Students",
		BasePath: "/students",
	}, lgr, opts...)
	deps.CourseController = appControllers.NewResourceController(screens.Courses, courses, appControllers.ResourceConfig{
		Page:     "courses",
		Title:    "Courses",
		BasePath: "/courses",
	}, lgr, opts...)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CSRF(cfg.Session.Secret, cfg.Session.Secure, logger.Component(lgr, "csrf")))
	router.HTMLRender = deps.Renderer

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DashboardController,
		deps.ProfileController,
		deps.StudentController,
		deps.CourseController,
		deps.SessionMiddleware,
	)

	return router
}
