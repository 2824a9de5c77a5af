package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/collectif-avenir/campaign-api/internal/api/handler"
	"github.com/collectif-avenir/campaign-api/internal/api/middleware"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

// Services groups the application services the router depends on.
type Services struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Articles ports.ArticleService
	Contact  ports.ContactService
	Uploads  ports.UploadService
}

// Options carries router-level configuration.
type Options struct {
	AllowedOrigins []string
	UploadsDir     string
	Cookie         handler.CookieConfig
	// Redis is nil unless it backs the session store; the readiness probe
	// only checks it when present.
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("campaign"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.AllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderContentType},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth, opts.Cookie)
	articleHandler := handler.NewArticleHandler(svc.Articles)
	userHandler := handler.NewUserHandler(svc.Users)
	contactHandler := handler.NewContactHandler(svc.Contact)
	uploadHandler := handler.NewUploadHandler(svc.Uploads)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Redis)

	sessionAuth := middleware.SessionAuth(svc.Auth)
	adminOnly := middleware.RBAC("admin")

	// --- Health and metrics ---
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public routes ---
	e.GET("/api/public/articles", articleHandler.ListPublic)
	e.GET("/api/public/articles/:slug", articleHandler.GetPublicBySlug)
	e.POST("/api/public/contact", contactHandler.Submit, echomiddleware.BodyLimit("256K"))

	// --- Auth routes ---
	e.POST("/api/admin/auth/login", authHandler.Login, echomiddleware.BodyLimit("64K"))
	e.POST("/api/admin/auth/logout", authHandler.Logout)
	e.GET("/api/admin/auth/me", authHandler.Me, sessionAuth)

	// --- Articles (any authenticated role) ---
	articles := e.Group("/api/admin/articles", sessionAuth)
	articles.GET("", articleHandler.ListAdmin)
	articles.POST("", articleHandler.Create, echomiddleware.BodyLimit("512K"))
	articles.PUT("/:id", articleHandler.Update, echomiddleware.BodyLimit("512K"))
	articles.DELETE("/:id", articleHandler.Delete)

	// --- Uploads (any authenticated role) ---
	e.POST("/api/admin/uploads", uploadHandler.Upload, sessionAuth, echomiddleware.BodyLimit("8M"))

	// --- Users (admin only) ---
	users := e.Group("/api/admin/users", sessionAuth, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create, echomiddleware.BodyLimit("64K"))
	users.DELETE("/:id", userHandler.Delete)

	// --- Stored uploads ---
	e.Static("/uploads", opts.UploadsDir)

	return e
}
