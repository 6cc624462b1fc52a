package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/handler"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/middleware"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/session"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Nav          *handler.NavHandler
	Report       *handler.ReportHandler
	Search       *handler.SearchHandler
	Upload       *handler.UploadHandler
	Document     *handler.DocumentHandler
	User         *handler.UserHandler
	Tenant       *handler.TenantHandler
	Department   *handler.DepartmentHandler
	Audit        *handler.AuditHandler
	Notification *handler.NotificationHandler
	Integration  *handler.IntegrationHandler
	Public       *handler.PublicHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware. The
// API route prefixes deliberately mirror the console's page routes so the
// policy table guards both with the same rows.
func Setup(
	log zerolog.Logger,
	codec *session.CookieCodec,
	store session.Store,
	allowedOrigins []string,
	h Handlers,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(middleware.SessionResolver(codec, store))

	// Health check
	r.GET("/healthz", h.Health.Health)

	api := r.Group("/api")

	// Public routes: no session required
	api.POST("/login", h.Auth.Login)
	api.POST("/forgot-password", h.Auth.ForgotPassword)
	api.POST("/forgot-password/verify", h.Auth.VerifyResetCode)
	api.POST("/forgot-password/confirm", h.Auth.ConfirmPasswordReset)
	api.GET("/view/:token", h.Public.View)

	// Session endpoints: the guard would bounce unauthenticated callers,
	// but these must answer either way so the shell can render.
	api.GET("/session", h.Auth.Session)
	api.POST("/logout", h.Auth.Logout)

	// Everything below goes through the policy table.
	guarded := api.Group("")
	guarded.Use(middleware.RouteGuard())

	guarded.POST("/change-password", h.Auth.ChangePassword)
	guarded.GET("/profile", h.Auth.Profile)
	guarded.GET("/nav", h.Nav.Menu)
	guarded.GET("/nav/check", h.Nav.Check)
	guarded.GET("/dashboard", h.Report.Dashboard)

	guarded.GET("/search", h.Search.Search)
	guarded.GET("/search/types", h.Search.DocumentTypes)

	guarded.POST("/upload", h.Upload.Upload)

	docs := guarded.Group("/documents")
	docs.GET("", h.Document.List)
	docs.DELETE("/:id", h.Document.Delete)
	docs.POST("/:id/chat", h.Document.Chat)
	docs.GET("/:id/pages/:page/metadata", h.Document.PageMetadata)
	docs.GET("/:id/pages/:page/highlights", h.Document.Highlights)
	docs.GET("/:id/links", h.Document.Links)
	docs.POST("/:id/share", h.Document.Share)
	docs.POST("/:id/publish", h.Document.Publish)
	docs.GET("/:id/download", h.Document.Download)

	guarded.POST("/reports/analyze", h.Report.Analyze)

	users := guarded.Group("/users")
	users.GET("", h.User.List)
	users.POST("", h.User.Create)
	users.DELETE("/:id", h.User.Delete)

	notifications := guarded.Group("/notifications")
	notifications.GET("", h.Notification.List)
	notifications.PATCH("/:id/read", h.Notification.MarkRead)
	notifications.POST("/read-all", h.Notification.MarkAllRead)

	integrations := guarded.Group("/integrations")
	integrations.GET("", h.Integration.List)
	integrations.POST("", h.Integration.Create)
	integrations.DELETE("/:id", h.Integration.Revoke)

	admin := guarded.Group("/admin")

	tenants := admin.Group("/tenants")
	tenants.GET("", h.Tenant.List)
	tenants.GET("/:id", h.Tenant.Details)
	tenants.POST("", h.Tenant.Create)
	tenants.PATCH("/:id/status", h.Tenant.UpdateStatus)
	tenants.PATCH("/:id/renew", h.Tenant.Renew)
	tenants.DELETE("/:id", h.Tenant.Delete)

	admin.POST("/billing/run", h.Tenant.RunBilling)

	departments := admin.Group("/departments")
	departments.GET("", h.Department.List)
	departments.GET("/:id", h.Department.Details)
	departments.POST("", h.Department.Create)
	departments.DELETE("/:id", h.Department.Delete)

	admin.GET("/audit", h.Audit.List)
	admin.POST("/notifications", h.Notification.Send)

	return r
}
