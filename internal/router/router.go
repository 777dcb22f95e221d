package router

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/synchomes/synchomes-api/internal/config"
	"github.com/synchomes/synchomes-api/internal/handler"
	"github.com/synchomes/synchomes-api/internal/middleware"
	"github.com/synchomes/synchomes-api/internal/response"
)

const (
	uploadsPath      = "/api/uploads"
	adminExportsPath = "/api/admin/exports"
	uploadsMaxAge    = 31536000
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Project    *handler.ProjectHandler
	Client     *handler.ClientHandler
	Contact    *handler.ContactHandler
	Subscriber *handler.SubscriberHandler
	Dashboard  *handler.DashboardHandler
	Export     *handler.ExportHandler
	System     *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	sessions middleware.TokenValidator,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	router.Use(
		response.RequestIDMiddleware(),
		response.ErrorDetail(cfg.IsDevelopment()),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
	)

	// ─── CORS ──────────────────────────────────────────────────────────
	// The session rides in a cookie, so credentials must be allowed. That
	// rules out "*": with no configured origins the caller's origin is reflected.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Images and workbooks are already compressed.
	brotliConfig := middleware.DefaultBrotliConfig
	brotliConfig.Skipper = middleware.SkipPrefixes(uploadsPath, adminExportsPath)
	router.Use(middleware.BrotliWithConfig(brotliConfig))

	// Serve uploaded media files statically with aggressive caching (1 year).
	uploadsGroup := router.Group(uploadsPath)
	uploadsGroup.Use(middleware.CacheControl(uploadsMaxAge))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	api := router.Group("/api")
	api.GET("/health", handlers.System.Health)

	// ─── 1. Admin Session ──────────────────────────────────────────────
	requireAdmin := middleware.RequireAdminSession(sessions, config.SessionCookieName)

	admin := api.Group("/admin")
	admin.Use(middleware.NoStore())
	{
		admin.POST("/login", handlers.Auth.Login)
		admin.POST("/logout", handlers.Auth.Logout)
	}

	// ─── 2. Admin Group (session cookie required) ──────────────────────
	gated := admin.Group("")
	gated.Use(requireAdmin)
	{
		gated.GET("/me", handlers.Auth.Me)
		gated.POST("/reset-password", handlers.Auth.ResetPassword)
		gated.PUT("/profile", handlers.Auth.UpdateProfile)

		gated.GET("/dashboard", handlers.Dashboard.GetDashboardStats)
		gated.GET("/system", handlers.System.Status)
		gated.GET("/exports/contacts.xlsx", handlers.Export.ExportContacts)
		gated.GET("/exports/subscribers.xlsx", handlers.Export.ExportSubscribers)

		gated.GET("/projects", handlers.Project.ListProjects)
		gated.POST("/projects", handlers.Project.CreateProject)
		gated.PUT("/projects/:id", handlers.Project.UpdateProject)
		gated.DELETE("/projects/:id", handlers.Project.DeleteProject)

		gated.GET("/clients", handlers.Client.ListClients)
		gated.POST("/clients", handlers.Client.CreateClient)

		gated.GET("/contacts", handlers.Contact.ListContacts)
		gated.GET("/subscribers", handlers.Subscriber.ListSubscribers)
	}

	// ─── 3. Public Group (No Auth) ─────────────────────────────────────
	api.GET("/projects", handlers.Project.ListProjects)
	api.GET("/clients", handlers.Client.ListClients)
	api.GET("/contacts", handlers.Contact.ListContacts)
	api.POST("/contacts", handlers.Contact.CreateContact)
	api.GET("/subscribers", handlers.Subscriber.ListSubscribers)
	api.POST("/subscribers", handlers.Subscriber.CreateSubscriber)

	if cfg.LockPublicWrites {
		log.Info().Msg("Public project/client writes disabled; use /api/admin routes")
	} else {
		api.POST("/projects", handlers.Project.CreateProject)
		api.PUT("/projects/:id", handlers.Project.UpdateProject)
		api.DELETE("/projects/:id", handlers.Project.DeleteProject)
		api.POST("/clients", handlers.Client.CreateClient)
	}

	handlers.System.SetRoutes(publicRoutes(router.Routes()))
	router.NoRoute(handlers.System.NoRoute)

	return router
}

// publicRoutes lists "METHOD path" for every route reachable without a session.
func publicRoutes(routes gin.RoutesInfo) []string {
	out := make([]string, 0, len(routes))
	for _, r := range routes {
		if r.Method == http.MethodHead {
			continue
		}
		if strings.HasPrefix(r.Path, "/api/admin/") && r.Path != "/api/admin/login" && r.Path != "/api/admin/logout" {
			continue
		}
		if strings.HasPrefix(r.Path, uploadsPath) {
			continue
		}
		out = append(out, r.Method+" "+r.Path)
	}
	sort.Strings(out)
	return out
}
