// Package web composes the Echo application: renderer, middleware, and all
// routes of the ABC Music Library frontend.
package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/abcmusic/library-web/internal/core/domain"
	"github.com/abcmusic/library-web/internal/core/ports"
	"github.com/abcmusic/library-web/internal/web/cookie"
	"github.com/abcmusic/library-web/internal/web/handler"
	"github.com/abcmusic/library-web/internal/web/middleware"
	"github.com/abcmusic/library-web/internal/web/view"
)

// Deps carries everything the router needs, built in cmd/server.
type Deps struct {
	Sessions   ports.SessionService
	Library    ports.LibraryService
	Lessons    ports.LessonService
	Dashboards ports.DashboardService
	Profiles   ports.ProfileService
	Backend    ports.MusicAPI

	Codec         *cookie.Codec
	SessionTTL    time.Duration
	SecureCookies bool

	// Redis is nil when sessions run on the in-memory store.
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("musicweb"))
	e.Use(middleware.Session(deps.Sessions, deps.Codec))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions, deps.Codec, deps.SessionTTL, deps.SecureCookies)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboards)
	libraryHandler := handler.NewLibraryHandler(deps.Library)
	lessonHandler := handler.NewLessonHandler(deps.Lessons)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Backend, deps.Redis)

	// --- Static assets + operational endpoints ---
	e.StaticFS("/static", echo.MustSubFS(view.Static, "static"))
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	})
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)

	// --- Authenticated views ---
	auth := e.Group("", middleware.RequireAuth())
	auth.GET("/dashboard", dashboardHandler.Show)

	auth.GET("/library", libraryHandler.List)
	auth.GET("/library/upload", libraryHandler.ShowUpload,
		middleware.RequireRole(domain.RoleTeacher, domain.RoleAdmin))
	auth.POST("/library/upload", libraryHandler.Upload,
		middleware.RequireRole(domain.RoleTeacher, domain.RoleAdmin))
	auth.GET("/library/:id", libraryHandler.Detail)

	auth.GET("/lessons", lessonHandler.List)
	auth.GET("/lessons/:id", lessonHandler.Detail)
	auth.POST("/lessons/:id/complete", lessonHandler.Complete)

	auth.GET("/profile", profileHandler.Show)
	auth.POST("/profile", profileHandler.Update)

	return e, nil
}
