package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emplealocal-backend/internal/delivery/http/middleware"
	"emplealocal-backend/internal/delivery/http/response"
	"emplealocal-backend/internal/domain"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	protected.GET("/dashboard", handler.Overview)
}

// Overview returns the role-specific dashboard for the session user.
func (h *DashboardHandler) Overview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if user != nil && user.Type == domain.UserTypeEmployer {
		dashboard, err := h.dashboardUC.EmployerOverview(c, user)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Employer dashboard", dashboard)
		return
	}

	dashboard, err := h.dashboardUC.ApplicantOverview(c, user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant dashboard", dashboard)
}
