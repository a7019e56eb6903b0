package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emplealocal-backend/internal/delivery/http/middleware"
	"emplealocal-backend/internal/delivery/http/response"
	"emplealocal-backend/internal/domain"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applicants := protected.Group("/applicants")
	{
		applicants.POST("/jobs/:jobId/apply", handler.ApplyToJob)
		applicants.GET("/applications", handler.MyApplications)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/jobs/:jobId/applications", handler.ListJobApplications)
	}
}

// ApplyToJob submits an application for the session user.
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	application, err := h.applicationUC.ApplyToJob(c, middleware.CurrentUser(c), c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", application)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	applications, err := h.applicationUC.MyApplications(c, middleware.CurrentUser(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	applications, err := h.applicationUC.ListByJob(c, middleware.CurrentUser(c), c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}
