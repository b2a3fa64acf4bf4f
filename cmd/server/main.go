package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"task-manager-api/internal/config"
	"task-manager-api/internal/database"
	"task-manager-api/internal/realtime"
	"task-manager-api/internal/routes"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	hub := realtime.NewHub()
	router := routes.Setup(db, cfg, hub)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
		// No WriteTimeout: /ws holds long-lived connections
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/auth/login")
	log.Println("  GET    /api/users | /api/tasks | /api/categories | /api/assignments")
	log.Println("  GET    /ws")
	log.Println("  GET    /health")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	// Graceful shutdown: stop accepting, drain requests, then close the pool
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error: ", err)
	}
	if err := database.Close(db); err != nil {
		log.Println("Database close error: ", err)
	}
}
