package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"github.com/Team-DAS/profile-cell/internal/profile/cache"
	"github.com/Team-DAS/profile-cell/internal/profile/config"
	"github.com/Team-DAS/profile-cell/internal/profile/database/mongo"
	"github.com/Team-DAS/profile-cell/internal/profile/event"
	"github.com/Team-DAS/profile-cell/internal/profile/handlers"
	"github.com/Team-DAS/profile-cell/internal/profile/repository"
	"github.com/Team-DAS/profile-cell/internal/profile/service"
	"github.com/Team-DAS/profile-cell/pkg/discovery"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/var", "log", "profile_service")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Printf("Warning: Failed to set up logging: %v", err)
	} else {
		defer logFile.Close()
	}

	cfg := config.ServiceConfig

	mongoClient, database, err := mongo.Connect(&cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB: %v", err)
	}
	defer mongo.Disconnect(mongoClient)

	profileRepo := repository.NewProfileRepository(database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := profileRepo.CreateIndexes(ctx); err != nil {
		log.Printf("Warning: Failed to create database indexes: %v", err)
	} else {
		log.Println("Database indexes created successfully")
	}
	cancel()

	profileCache := cache.NewProfileCache(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer profileCache.Close()

	var publisher event.Publisher
	eventPublisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI)
	if err != nil {
		log.Printf("Warning: Failed to initialize event publisher: %v", err)
	} else {
		publisher = eventPublisher
		defer eventPublisher.Close()
	}

	profileService := service.NewProfileService(profileRepo, profileCache, publisher)

	eventConsumer, err := event.NewEventConsumer(cfg.RabbitMQ.URI, profileService)
	if err != nil {
		log.Printf("Warning: Failed to initialize event consumer: %v", err)
	} else {
		if err := eventConsumer.Start(); err != nil {
			log.Printf("Warning: Failed to start event consumer: %v", err)
			eventConsumer.Close()
		} else {
			log.Println("Successfully started event consumer")
			defer eventConsumer.Close()
		}
	}

	serviceRegistry, err := discovery.NewServiceRegistry(
		cfg.Consul.ConsulAddress,
		cfg.Server.ServiceName,
		cfg.Server.ServiceID,
		cfg.Server.Port,
		[]string{"profile", "mongodb"},
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize service discovery: %v", err)
	} else {
		if err := serviceRegistry.Register(); err != nil {
			log.Printf("Warning: Failed to register with Consul: %v", err)
		} else {
			log.Println("Successfully registered with Consul")
			defer serviceRegistry.Deregister()
		}
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"*"},
	}))

	profileHandler := handlers.NewProfileHandler(profileService)
	profileHandler.RegisterRoutes(app)

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	<-doneChan
	log.Println("Server exited, goodbye!")
}
