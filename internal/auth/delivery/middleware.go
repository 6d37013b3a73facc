package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authdomain "jobtracker-backend/internal/auth/domain"
	"jobtracker-backend/internal/auth/usecase"
	"jobtracker-backend/internal/httperr"
)

// ContextUserKey is where the resolved caller lives on the gin context for the
// rest of the request.
const ContextUserKey = "currentUser"

// AuthMiddleware extracts the bearer token, resolves it to a user and aborts
// with 401 on any failure. Resolution happens on every request so a deleted
// account loses access immediately.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Unauthorized", "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httperr.Abort(c, http.StatusUnauthorized, "Unauthorized", "invalid authorization header format")
			return
		}

		user, err := authUsecase.ResolveToken(parts[1])
		if err != nil {
			httperr.FromError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by AuthMiddleware. Handlers thread
// it explicitly into every service call.
func CurrentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get(ContextUserKey); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}
