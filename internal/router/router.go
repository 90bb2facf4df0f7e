package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aulanet/aulanet-backend/internal/config"
	"github.com/aulanet/aulanet-backend/internal/handler"
	"github.com/aulanet/aulanet-backend/internal/middleware"
	"github.com/aulanet/aulanet-backend/internal/response"
	"github.com/aulanet/aulanet-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Assignment *handler.AssignmentHandler
	Grade      *handler.GradeHandler
	Report     *handler.ReportHandler
	User       *handler.UserHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response carries one.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "OK", gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// ─── Public: registration and login ────────────────────────────────
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	auth := api.Group("/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register/teacher", handlers.Auth.RegisterTeacher)
		auth.POST("/register/student", handlers.Auth.RegisterStudent)
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── Teacher routes ────────────────────────────────────────────────
	teacher := api.Group("/teacher")
	teacher.Use(middleware.RequireTeacherJWT(authService))
	{
		teacher.GET("/assignments", handlers.Assignment.ListMine)
		teacher.POST("/assignments", handlers.Assignment.Create)
		teacher.DELETE("/assignments/:id", handlers.Assignment.Delete)
		teacher.GET("/assignments/:id/submissions", handlers.Report.Submissions)
		teacher.POST("/grades", handlers.Grade.Assign)
		teacher.GET("/students", handlers.User.ListStudents)
		teacher.GET("/stats", handlers.Report.TeacherStats)
	}

	// ─── Student routes ────────────────────────────────────────────────
	student := api.Group("/student")
	student.Use(middleware.RequireStudentJWT(authService))
	{
		student.GET("/assignments", handlers.Assignment.ListAll)
		student.GET("/grades", handlers.Grade.ListMine)
		student.GET("/stats", handlers.Report.StudentStats)
	}

	return router
}
