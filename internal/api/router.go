package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pro-tasker/tasker-api/internal/api/handler"
	"github.com/pro-tasker/tasker-api/internal/api/middleware"
	"github.com/pro-tasker/tasker-api/internal/core/service"
	"github.com/pro-tasker/tasker-api/internal/infrastructure/http/handlers"
	mongorepo "github.com/pro-tasker/tasker-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("tasker"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL, log)
	projectService := service.NewProjectService(projectRepo, taskRepo, userRepo, log)
	taskService := service.NewTaskService(taskRepo, projectRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)

	auth := middleware.Auth(jwtSecret, userRepo)
	adminOnly := middleware.AdminOnly()

	// --- Public auth routes ---
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)

	// --- Admin ---
	e.GET("/api/users", authHandler.ListUsers, auth, adminOnly)

	// --- Projects ---
	projects := e.Group("/api/projects", auth)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.POST("/:id/invite", projectHandler.Invite)

	// --- Tasks ---
	projects.POST("/:projectId/tasks", taskHandler.Create)
	projects.GET("/:projectId/tasks", taskHandler.ListByProject)

	tasks := e.Group("/api/tasks", auth)
	tasks.GET("/:taskId", taskHandler.Get)
	tasks.PUT("/:taskId", taskHandler.Update)
	tasks.DELETE("/:taskId", taskHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
