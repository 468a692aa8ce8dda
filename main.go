package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agenda-modista/config"
	"agenda-modista/internal/app"
	"agenda-modista/internal/database"
	"agenda-modista/internal/server"
	"agenda-modista/internal/services"
	"agenda-modista/internal/storage"
	"agenda-modista/internal/storage/memory"
	"agenda-modista/internal/storage/postgres"

	"github.com/go-playground/validator"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client (optional finance-summary cache) ---
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("WARN: Failed to connect to Redis: %v. Continuing without summary cache.", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	} else {
		log.Println("Redis address not configured, finance summaries will not be cached.")
	}

	// --- Select the Job Repository backend ---
	jobRepo, cleanup, err := newJobRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize job repository: %v", err)
	}
	defer cleanup()

	jobService := services.NewJobService(jobRepo, redisClient)
	if err := jobService.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load job collection: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		JobService:  jobService,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}

// newJobRepository builds the repository named by the configuration. The
// returned cleanup closes any underlying pool.
func newJobRepository(cfg *config.Config) (storage.JobRepository, func(), error) {
	switch cfg.Repository.Backend {
	case "postgres":
		pool, err := database.NewConnectionPool(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewJobRepo(pool), pool.Close, nil
	case "memory":
		if cfg.Repository.SeedFile != "" {
			repo, err := memory.NewJobRepoFromSeed(cfg.Repository.SeedFile)
			if err != nil {
				return nil, nil, err
			}
			return repo, func() {}, nil
		}
		return memory.NewJobRepo(), func() {}, nil
	default:
		log.Printf("Unknown repository backend %q, falling back to memory", cfg.Repository.Backend)
		return memory.NewJobRepo(), func() {}, nil
	}
}
