// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/goals/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	goalController   *controller.GoalController
	writeLimiter     *middleware.WriteLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	writeLimiter *middleware.WriteLimiter,
) *Router {
	return &Router{
		healthController: healthController,
		goalController:   goalController,
		writeLimiter:     writeLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	goals := v1.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.GET("/summary", r.goalController.Summary)
		goals.POST("/suggest", r.goalController.Suggest)
		goals.GET("/:id", r.goalController.Get)

		writes := goals.Group("")
		if r.writeLimiter != nil {
			writes.Use(r.writeLimiter.Middleware())
		}
		writes.POST("", r.goalController.Create)
		writes.PUT("/:id", r.goalController.Update)
		writes.DELETE("/:id", r.goalController.Delete)
	}
}
