package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/cinego/internal/handler"
	"github.com/user/cinego/internal/middleware"
)

// RegisterRoutes wires every route group.
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== auth ====================
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}

	// ==================== catalog (login required) ====================
	catalog := r.Group("/")
	catalog.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		catalog.GET("", h.Home)
		catalog.GET("movies", h.Movies)
		catalog.GET("series", h.Series)
		catalog.GET("movies/:id", h.MovieDetail)
		catalog.GET("movies/:id/watch", h.WatchMovie)
	}

	// ==================== account ====================
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		dashboard.GET("/profile", h.Profile)
		dashboard.POST("/settings/username", h.UpdateUsername)
		dashboard.POST("/settings/email", h.UpdateEmail)
		dashboard.POST("/settings/password", h.UpdatePassword)
	}

	// ==================== CineBot API ====================
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		api.POST("/chat", h.Chat)
		api.GET("/chat/history", h.ChatHistory)
		api.POST("/watch-time", h.RecordWatchTime)
	}

	// ==================== admin ====================
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(h.Config.AppSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/stats", h.AdminStats)
		admin.GET("/users", h.AdminUsers)
		admin.POST("/catalog/sync", h.AdminSyncCatalog)
	}
}
