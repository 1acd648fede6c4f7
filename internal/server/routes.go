// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/controller/job"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/middleware"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/store"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/utilities"
)

const maxJSONBodyBytes = 1 << 20

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Internal server error",
		})
	}))
	r.Use(middleware.RequestID())

	if allowOrigins := allowedOrigins(); len(allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins, // Add your frontend URL
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	controller := job.NewJobController(store.NewJobStore(s.DB))

	r.GET("/health", s.healthHandler)

	jobRoute := r.Group("/api/jobs")
	{
		jobRoute.GET("", controller.ListJobs)
		jobRoute.GET("/:id", controller.GetJobByID)
		jobRoute.POST("", middleware.SizeLimit(maxJSONBodyBytes), controller.CreateJob)
		jobRoute.PUT("/:id", middleware.SizeLimit(maxJSONBodyBytes), controller.UpdateJob)
		jobRoute.DELETE("/:id", controller.DeleteJob)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Endpoint not found"})
	})

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}

// allowedOrigins reads ALLOW_ORIGIN as a comma-separated list, dropping blank
// entries. An unset variable configures no cross-origin access; cors.New
// panics on origins without a scheme, so "" must never reach it.
func allowedOrigins() []string {
	origins := []string{}
	for _, o := range strings.Split(os.Getenv("ALLOW_ORIGIN"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
