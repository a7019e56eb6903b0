package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"emplealocal-backend/internal/delivery/http/middleware"
	"emplealocal-backend/internal/delivery/http/response"
	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/register", handler.Register)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates credentials and establishes the session slot.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signed in", user)
}

// Register creates the account and signs it in immediately. Field-level
// rules live in the usecase so they apply in a fixed order.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUC.Logout(c); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Signed out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, "Current user", middleware.CurrentUser(c))
}
