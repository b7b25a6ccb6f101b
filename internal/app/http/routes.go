package routes

import (
	"net/http"
	"strings"

	adminapi "coachsport-app/internal/api/admin"
	authapi "coachsport-app/internal/api/auth"
	navapi "coachsport-app/internal/api/navigation"
	"coachsport-app/internal/api/screens"
	"coachsport-app/internal/api/users"
	"coachsport-app/internal/app/http/middleware"
	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store *session.Store) {
	authH := &authapi.Handler{Sessions: store}
	usersH := &users.Handler{Sessions: store}
	navH := &navapi.Handler{Sessions: store}
	adminH := &adminapi.Handler{DB: db, Sessions: store}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "ready": store.Ready()})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authH.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(store), middleware.LoadSession(store))
	auth.POST("/logout", authH.Logout)
	auth.GET("/me", usersH.GetCurrentUser)
	auth.GET("/navigation", navH.GetNavigation)
	auth.GET("/access/check", navH.CheckPath)
	auth.POST("/access/evaluate", navH.EvaluateSnapshot)

	// Screens, gated by the access policy
	clientScreens := auth.Group("/")
	clientScreens.Use(middleware.RouteGuard(store.Now))

	trainerScreens := auth.Group("/")
	trainerScreens.Use(
		middleware.RequireRole(access.RoleTrainer, access.RoleAdmin),
		middleware.RouteGuard(store.Now))

	adminScreens := auth.Group("/")
	adminScreens.Use(middleware.RequireRole(access.RoleAdmin), middleware.RouteGuard(store.Now))

	for _, d := range access.Destinations() {
		if d == access.DestLogin {
			continue
		}
		pattern := d.Path()
		switch {
		case pattern == "/admin" || strings.HasPrefix(pattern, "/admin/"):
			adminScreens.GET(pattern, screens.Show)
		case pattern == "/trainer" || strings.HasPrefix(pattern, "/trainer/"):
			trainerScreens.GET(pattern, screens.Show)
		default:
			clientScreens.GET(pattern, screens.Show)
		}
	}

	// Admin routes
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(access.RoleAdmin))
	admin.GET("/dashboard", adminH.AdminDashboard)
	admin.GET("/users", adminH.ListAllUsers)
	admin.GET("/users/:id", adminH.GetUserDetails)
	admin.PUT("/users/:id/subscription", adminH.PutSubscription)
	admin.DELETE("/users/:id/subscription", adminH.DeleteSubscription)

	r.NoRoute(func(c *gin.Context) {
		home := access.DestHome.Path()
		c.Header("Location", home)
		c.JSON(http.StatusTemporaryRedirect, gin.H{
			"verdict":  access.VerdictRedirect,
			"target":   access.DestHome,
			"location": home,
		})
	})
}
