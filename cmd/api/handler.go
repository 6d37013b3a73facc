package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appUsecase "jobtracker-backend/internal/application/usecase"
	authUsecase "jobtracker-backend/internal/auth/usecase"
)

// Handler owns the HTTP server setup.
type Handler struct {
	authUsecase authUsecase.AuthUsecase
	userUsecase authUsecase.UserUsecase
	appUsecase  appUsecase.ApplicationUsecase
	logger      *zap.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, userUc authUsecase.UserUsecase, appUc appUsecase.ApplicationUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		authUsecase: authUc,
		userUsecase: userUc,
		appUsecase:  appUc,
		logger:      logger,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(h.logger))
	r.Use(CORS())

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.appUsecase)

	return r.Run(addr)
}
