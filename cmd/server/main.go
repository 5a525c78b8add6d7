package main

import (
	"log"
	"os"

	"skillpath/internal/db"
	"skillpath/internal/handlers"
	"skillpath/internal/middleware"
	"skillpath/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Start the counter reconciliation worker
	services.GetCounterService()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("skillpath_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	// Handlers
	authHandler := handlers.NewAuthHandler()
	feedHandler := handlers.NewFeedHandler()
	postHandler := handlers.NewPostHandler()
	voteHandler := handlers.NewVoteHandler()
	savedHandler := handlers.NewSavedHandler()
	roadmapHandler := handlers.NewRoadmapHandler()
	quizHandler := handlers.NewQuizHandler()
	courseHandler := handlers.NewCourseHandler()
	userHandler := handlers.NewUserHandler()

	api := r.Group("/api")
	{
		// Auth / session
		api.POST("/signup", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/session", authHandler.Session)
		api.POST("/password-reset", authHandler.RequestPasswordReset)
		api.POST("/password-reset/confirm", authHandler.ResetPassword)

		// Community (public reads)
		api.GET("/community/feed", feedHandler.List)
		api.POST("/community/feed/more", feedHandler.More)
		api.POST("/community/feed/retry", feedHandler.Retry)
		api.POST("/community/feed/refresh", feedHandler.Refresh)
		api.GET("/community/posts/:pid", postHandler.Detail)

		// Catalogs (public)
		api.GET("/modules", roadmapHandler.Catalog)
		api.GET("/modules/:id/quiz", quizHandler.ForModule)
		api.GET("/courses", courseHandler.List)
		api.GET("/courses/:id", courseHandler.Detail)
		api.GET("/users/:id", userHandler.Profile)
	}

	// Actions that require a signed-in user
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/community/posts", postHandler.Create)
		authorized.POST("/community/posts/:pid/comments", postHandler.CreateComment)
		authorized.POST("/community/posts/:pid/vote", voteHandler.Cast)
		authorized.POST("/community/posts/:pid/save", savedHandler.Save)
		authorized.DELETE("/community/posts/:pid/save", savedHandler.Unsave)

		authorized.GET("/roadmap", roadmapHandler.Get)
		authorized.POST("/roadmap", roadmapHandler.Create)
		authorized.POST("/roadmap/progress", roadmapHandler.UpdateProgress)
		authorized.POST("/quizzes/:id/submit", quizHandler.Submit)

		authorized.POST("/settings", userHandler.UpdateSettings)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("SkillPath server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
