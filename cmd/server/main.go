package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/HumoyunMamasodiqov/level-test/internal/cache"
	"github.com/HumoyunMamasodiqov/level-test/internal/config"
	"github.com/HumoyunMamasodiqov/level-test/internal/database"
	"github.com/HumoyunMamasodiqov/level-test/internal/handlers"
	"github.com/HumoyunMamasodiqov/level-test/internal/services"
	"github.com/HumoyunMamasodiqov/level-test/internal/telegram"

	_ "github.com/HumoyunMamasodiqov/level-test/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Level Test API
// @version         1.0
// @description     Language proficiency quiz platform with Telegram notifications
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	var levelCache services.LevelCache
	if cfg.RedisAddr != "" {
		levelCache = cache.NewRedisCache(cfg.RedisAddr)
		log.Printf("level cache enabled at %s", cfg.RedisAddr)
	}

	var sink services.Sink
	if cfg.TelegramBotToken != "" {
		sink = telegram.NewClient(cfg.TelegramBotToken)
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, notifications disabled")
	}

	notifier := services.NewNotifierService(sink, cfg.TelegramAdminChatID)
	levelService := services.NewLevelService(db, levelCache)
	sessionService := services.NewSessionService(db, notifier)
	questionService := services.NewQuestionService(db, cfg.MediaBaseURL)
	scoringService := services.NewScoringService(db, notifier)
	statsService := services.NewStatsService(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Static("/media", cfg.MediaDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(r, handlers.Handlers{
		Level:    handlers.NewLevelHandler(levelService),
		Session:  handlers.NewSessionHandler(sessionService),
		Question: handlers.NewQuestionHandler(questionService),
		Result:   handlers.NewResultHandler(scoringService, statsService),
		Stats:    handlers.NewStatsHandler(statsService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		// submit-test can block on two 10s notification calls
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("server starting on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server shutdown gracefully")
}
