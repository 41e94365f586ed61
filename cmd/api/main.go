package main

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"skinquiz/internal/database"
	"skinquiz/internal/handlers"
	"skinquiz/internal/middleware"
	"skinquiz/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment")
	}

	db, err := database.Open()
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	h := handlers.New(store.New(db))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/quiz", h.SaveQuiz)
	api.GET("/profile", h.Profile)
	api.GET("/users", h.ListUsers)
	api.GET("/health", handlers.Health)
	api.GET("/status", handlers.Status)

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5001"
	}

	logrus.Info("SkinQuiz API starting on :", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Server failed to start: ", err)
	}
}
