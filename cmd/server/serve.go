package main

import (
	"fmt"
	"log"

	"github.com/croftside/farmbase/internal/config"
	"github.com/croftside/farmbase/internal/database"
	"github.com/croftside/farmbase/internal/events"
	"github.com/croftside/farmbase/internal/handlers"
	"github.com/croftside/farmbase/internal/mailer"
	"github.com/croftside/farmbase/internal/middleware"
	"github.com/croftside/farmbase/internal/repository"
	"github.com/croftside/farmbase/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "github.com/croftside/farmbase/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	bus := events.NewBus(64)
	defer bus.Close()

	if cfg.Mail.SendGridKey != "" {
		m := mailer.New(cfg.Mail.SendGridKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
		bus.Subscribe(m.Handle)
	} else {
		log.Println("No SendGrid key configured, notification events will only be logged")
		bus.Subscribe(mailer.LogHandler)
	}

	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)
	authService := services.NewAuthService(userRepo, tokenService, bus)
	farmService := services.NewFarmService(farmRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, farmRepo)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	authHandler := handlers.NewAuthHandler(authService)
	farmHandler := handlers.NewFarmHandler(farmService)
	taskHandler := handlers.NewTaskHandler(taskService)

	router := gin.Default()

	router.GET("/docs", handlers.SwaggerUIWithBearerFix())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/verify", authHandler.Verify)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.GET("/profile", authHandler.Profile)

			authenticated.POST("/farms", farmHandler.CreateFarm)
			authenticated.GET("/farms", farmHandler.ListFarms)
			authenticated.GET("/farms/:id", farmHandler.GetFarm)
			authenticated.PUT("/farms/:id", farmHandler.UpdateFarm)
			authenticated.DELETE("/farms/:id", farmHandler.DeleteFarm)

			authenticated.POST("/farms/:id/tasks", taskHandler.CreateTask)
			authenticated.GET("/farms/:id/tasks", taskHandler.ListTasks)
			authenticated.GET("/farms/:id/tasks/:taskId", taskHandler.GetTask)
			authenticated.PUT("/farms/:id/tasks/:taskId", taskHandler.UpdateTask)
			authenticated.DELETE("/farms/:id/tasks/:taskId", taskHandler.DeleteTask)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Farmbase server on %s", addr)
	return router.Run(addr)
}
