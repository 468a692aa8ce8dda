// internal/app/app.go
package app

import (
	"agenda-modista/config"
	"agenda-modista/internal/services"

	"github.com/go-playground/validator"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	JobService  services.JobService
	RedisClient *redis.Client
	Validator   *validator.Validate
}
