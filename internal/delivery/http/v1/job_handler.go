package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emplealocal-backend/internal/delivery/http/middleware"
	"emplealocal-backend/internal/delivery/http/response"
	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - browsing and searching need no session
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.DELETE("/:id", handler.Delete)
	}

	// Employer-specific job routes (only the employer's own postings)
	employers := protected.Group("/employers")
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

// Search lists jobs, optionally narrowed by query/category/type/location.
// "categoria" is accepted as an alias of "category" so pre-filled category
// deep links keep working.
func (h *JobHandler) Search(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		category = c.Query("categoria")
	}

	filters := domain.JobFilters{
		Query:    c.Query("query"),
		Category: category,
		Type:     c.Query("type"),
		Location: c.Query("location"),
	}

	jobs, err := h.jobUC.Search(c, filters)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) ListByEmployer(c *gin.Context) {
	jobs, err := h.jobUC.ListByEmployer(c, middleware.CurrentUser(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) Create(c *gin.Context) {
	var req domain.CreateJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.CreateJob(c, middleware.CurrentUser(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Delete permanently removes a posting. The client asks the user for
// confirmation before calling this.
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c, middleware.CurrentUser(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
