package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "jobtracker-backend/internal/auth/dto"
	"jobtracker-backend/internal/auth/usecase"
	"jobtracker-backend/internal/httperr"
)

// AuthHandler exposes the authentication and profile endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	userUsecase usecase.UserUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, userUsecase usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		userUsecase: userUsecase,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so there is
// nothing to revoke server-side; the client drops its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Refresh handles POST /api/auth/refresh. Requires a currently valid token and
// returns the longer-lived variant.
func (h *AuthHandler) Refresh(c *gin.Context) {
	user := CurrentUser(c)

	resp, err := h.authUsecase.Refresh(user)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePassword handles POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user := CurrentUser(c)

	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	if err := h.userUsecase.ChangePassword(user, &req); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}

// GetProfile handles GET /api/users/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.userUsecase.GetProfile(CurrentUser(c)))
}

// UpdateProfile handles PUT /api/users/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	profile, err := h.userUsecase.UpdateProfile(user, &req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
