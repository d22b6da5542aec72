package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"galaxy_api/internal/api"
	"galaxy_api/internal/app/service"
	"galaxy_api/internal/common/security"
	"galaxy_api/internal/domain/repository"
	"galaxy_api/internal/platform/cache"
	"galaxy_api/internal/platform/config"
	"galaxy_api/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis (optional, login attempt limiter)
	cache.ConnectRedis()
	defer cache.CloseRedis()

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	locationRepo := repository.NewPgLocationRepository(database.DB)
	empireRepo := repository.NewPgEmpireRepository(database.DB)

	// 6. Initialize Policy & Services
	policy := security.NewPolicy(userRepo)
	authService := service.NewAuthService(userRepo, cache.RDB)
	userService := service.NewUserService(userRepo)
	locationService := service.NewLocationService(locationRepo)
	empireService := service.NewEmpireService(empireRepo)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, locationService, empireService, policy)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
