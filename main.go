package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"practice-service/internal/config"
	"practice-service/internal/db"
	"practice-service/internal/event"
	"practice-service/internal/handlers"
	"practice-service/internal/repository"
	"practice-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	if err := db.InitMongo(cfg.MongoDB); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	database := db.Client.Database(cfg.MongoDB.Database)

	topicRepo := repository.NewTopicRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	userRepo := repository.NewUserRepository(database)
	progressRepo := repository.NewProgressRepository(database)

	// The optimistic write path depends on the unique (user, topic) index.
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := progressRepo.EnsureIndexes(indexCtx); err != nil {
		indexCancel()
		log.Fatalf("Failed to create progress indexes: %v", err)
	}
	indexCancel()

	quizService := service.NewQuizService(topicRepo, questionRepo, progressRepo, cfg.Quiz.QuestionCount)
	progressService := service.NewProgressService(topicRepo, questionRepo, progressRepo)
	topicService := service.NewTopicService(topicRepo, questionRepo, progressRepo)
	userService := service.NewUserService(userRepo, progressRepo)

	quizHandler := handlers.NewQuizHandler(quizService)
	progressHandler := handlers.NewProgressHandler(progressService)
	topicHandler := handlers.NewTopicHandler(topicService)
	userHandler := handlers.NewUserHandler(userService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes - topic catalog only, no user state
	publicTopic := r.Group("/public/practice/topics")
	{
		publicTopic.GET("/", topicHandler.ListPublicTopics)
		publicTopic.GET("/:topicId", topicHandler.GetPublicTopic)
	}

	// Protected routes - gateway verifies the identity token and forwards
	// the user id in the X-User-ID header
	protected := r.Group("/protected/practice")
	protected.Use(requireUserID())
	{
		protected.GET("/topics", topicHandler.ListTopics)

		protected.GET("/quiz/:topicId/:mode", func(c *gin.Context) {
			quizHandler.GetQuiz(c)
			if publisher != nil {
				publisher.Publish("practice.quiz.generated", gin.H{
					"user_id":  c.GetHeader("X-User-ID"),
					"topic_id": c.Param("topicId"),
					"mode":     c.Param("mode"),
				})
			}
		})
		protected.POST("/quiz/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			if publisher != nil {
				publisher.Publish("practice.quiz.submitted", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
		protected.POST("/quiz/favorite", func(c *gin.Context) {
			progressHandler.ToggleFavorite(c)
			if publisher != nil {
				publisher.Publish("practice.favorite.toggled", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		protected.GET("/topics/:topicId/favorites", progressHandler.GetFavorites)
		protected.DELETE("/topics/:topicId/favorites", progressHandler.ClearFavorites)
		protected.DELETE("/topics/:topicId/progress", func(c *gin.Context) {
			progressHandler.ResetTopicProgress(c)
			if publisher != nil {
				publisher.Publish("practice.progress.reset", gin.H{
					"user_id":  c.GetHeader("X-User-ID"),
					"topic_id": c.Param("topicId"),
				})
			}
		})

		protected.POST("/user/login", func(c *gin.Context) {
			userHandler.Login(c)
			if publisher != nil {
				publisher.Publish("practice.user.registered", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
		protected.GET("/user/me", userHandler.Me)
		protected.GET("/user/stats", progressHandler.GetStats)
		protected.DELETE("/user/progress", func(c *gin.Context) {
			progressHandler.ResetAllProgress(c)
			if publisher != nil {
				publisher.Publish("practice.progress.reset", gin.H{
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})
		protected.DELETE("/user/account", userHandler.DeleteAccount)
	}

	r.Run(":" + cfg.Server.Port)
}

func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
