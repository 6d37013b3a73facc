package main

import (
	"log"

	"go.uber.org/zap"

	api "jobtracker-backend/cmd/api"
	appdomain "jobtracker-backend/internal/application/domain"
	appRepo "jobtracker-backend/internal/application/repository"
	appUsecase "jobtracker-backend/internal/application/usecase"
	authdomain "jobtracker-backend/internal/auth/domain"
	authRepo "jobtracker-backend/internal/auth/repository"
	"jobtracker-backend/internal/auth/token"
	authUsecase "jobtracker-backend/internal/auth/usecase"
	"jobtracker-backend/pkg/config"
	"jobtracker-backend/pkg/database"
	"jobtracker-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewPostgresConnection(cfg.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&authdomain.User{}, &appdomain.JobApplication{}); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepository := authRepo.NewUserRepository(db)
	applicationRepository := appRepo.NewApplicationRepository(db)

	// The signing key lives in the codec and nowhere else.
	codec := token.NewCodec(cfg.JWTSigningKey, cfg.JWTExpiry)

	// Use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, codec, zapLogger)
	userUc := authUsecase.NewUserUsecase(userRepository, zapLogger)
	appUc := appUsecase.NewApplicationUsecase(applicationRepository, zapLogger)

	handler := api.NewHandler(authUc, userUc, appUc, zapLogger)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
