package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"feedback_backend/internal/app/router"
	"feedback_backend/internal/config"
	authadapters "feedback_backend/internal/feature/auth/adapters"
	authhandler "feedback_backend/internal/feature/auth/transport/handler"
	authusecase "feedback_backend/internal/feature/auth/usecase"
	feedbackadapters "feedback_backend/internal/feature/feedback/adapters"
	feedbackhandler "feedback_backend/internal/feature/feedback/transport/handler"
	feedbackusecase "feedback_backend/internal/feature/feedback/usecase"
	platformdb "feedback_backend/internal/platform/db"
	platformredis "feedback_backend/internal/platform/redis"
	"feedback_backend/internal/platform/session"
)

func main() {
	cfg := config.Load()

	// db
	db := platformdb.OpenDB(cfg)

	// Redis holds the sessions, so it is not optional
	rdb, err := platformredis.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("Redis unavailable:", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	sessions := session.NewStore(rdb, "session", session.DefaultTTL)

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	feedbackRepo := feedbackadapters.NewFeedbackMySQL(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	feedbackUC := feedbackusecase.NewFeedbackUsecase(feedbackRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, sessions)
	profileH := authhandler.NewProfileHandler(authUC, feedbackUC)
	feedbackH := feedbackhandler.NewFeedbackHandler(feedbackUC)

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.NewRouter(authH, profileH, feedbackH, sessions)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
