package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emplealocal-backend/config"
	"emplealocal-backend/internal/delivery/http/middleware"
	"emplealocal-backend/internal/delivery/http/response"
	"emplealocal-backend/internal/domain"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	DashboardUC   domain.DashboardUsecase
	SessionRepo   domain.SessionRepository
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SessionMiddleware(deps.SessionRepo))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth())
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewDashboardHandler(protected, deps.DashboardUC)
	}

	return r
}
