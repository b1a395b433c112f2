package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/training-client/internal/api"
	"alcyxob/training-client/internal/calendar"
	"alcyxob/training-client/internal/config"
	"alcyxob/training-client/internal/repository"
	"alcyxob/training-client/internal/repository/mongo"
	"alcyxob/training-client/internal/repository/remote"
	"alcyxob/training-client/internal/repository/sqlite"
	"alcyxob/training-client/internal/service"
	"alcyxob/training-client/internal/state"
	"alcyxob/training-client/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title Training Client Core API
// @version 1.0
// @description Local API through which the athlete UI drives the calendar, plans and coach roster.
// @host localhost:8090
// @BasePath /api/v1
func main() {
	log.Println("Starting Training Client...")

	// --- Configuration ---
	configPath := "."
	if p := os.Getenv("TRAINING_CLIENT_CONFIG"); p != "" {
		configPath = p
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Session Store ---
	rawStore, closeStore, err := openSessionStore(cfg.Session)
	if err != nil {
		log.Fatalf("FATAL: Could not open session store: %v", err)
	}
	defer closeStore()
	sessionStore, err := repository.NewSealedStore(rawStore, cfg.Session.Secret)
	if err != nil {
		log.Fatalf("FATAL: Could not seal session store: %v", err)
	}
	log.Printf("Session store ready (%s).", cfg.Session.Driver)

	// --- Remote Gateways ---
	log.Println("Initializing coaching backend client...")
	client := remote.NewClient(cfg.API.BaseURL, cfg.API.Version, cfg.API.Timeout, sessionStore)
	planGateway := remote.NewPlanGateway(client)
	coachGateway := remote.NewCoachGateway(client)
	authGateway := remote.NewAuthGateway(client)

	// --- Image Pipeline ---
	var imageSource storage.ImageSource
	switch cfg.Images.Source {
	case "s3":
		log.Println("Initializing S3 photo source...")
		imageSource, err = storage.NewS3ImageSource(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 photo source: %v", err)
		}
	default:
		imageSource = storage.ImageSourceFunc(client.FetchPhoto)
	}
	avatars := storage.NewAvatarLoader(imageSource, cfg.Images.AvatarSize)

	// --- Core State & Services ---
	log.Println("Initializing services...")
	store := state.NewStore()
	clock := calendar.SystemClock{}
	pager := calendar.NewPager(clock.Today(), calendar.NewLanguageSetting(cfg.Calendar.Language), clock)
	notifications := service.NewNotificationQueue(50)
	navigation := service.NewRouteTracker()

	orchestrator := service.NewSyncOrchestrator(service.SyncDeps{
		Pager:     pager,
		Clock:     clock,
		Store:     store,
		Plans:     service.NewPlanFetchCoordinator(planGateway, store, cfg.API.Timeout),
		Roster:    service.NewCoachRosterReconciler(coachGateway, avatars, store, cfg.API.Timeout, cfg.Images.Concurrency),
		Records:   service.NewRecordReconciler(planGateway, store, cfg.API.Timeout),
		Session:   sessionStore,
		Notifier:  notifications,
		Navigator: navigation,
	})
	defer orchestrator.Close()
	authService := service.NewAuthService(authGateway, sessionStore, navigation, orchestrator)

	// restore a stored session in the background so the API is up immediately
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
		defer cancel()
		status, err := authService.Restore(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to restore session: %v", err)
			return
		}
		log.Printf("Session restored (authenticated=%t).", status.Authenticated)
	}()

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, authService, orchestrator, notifications, navigation)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.API.Timeout + 10*time.Second, // plan and record calls may take the full backend timeout
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// openSessionStore opens the configured backing store; the returned func releases it.
func openSessionStore(cfg config.SessionConfig) (repository.SessionStore, func(), error) {
	switch cfg.Driver {
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewSessionStore(db), func() {
			if err := db.Close(); err != nil {
				log.Printf("ERROR: Failed to close SQLite: %v", err)
			}
		}, nil

	case "mongo":
		dbClient, err := mongo.ConnectDB(cfg.MongoURI)
		if err != nil {
			return nil, nil, fmt.Errorf("connect MongoDB: %w", err)
		}
		db := dbClient.Database(cfg.MongoDatabase)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		mongo.EnsureSessionIndexes(ctx, db)
		cancel()

		return mongo.NewMongoSessionStore(db), func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}, nil

	case "memory":
		log.Println("WARN: Using in-memory session store; sign-in will not survive a restart")
		return repository.NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown session driver %q", cfg.Driver)
}
