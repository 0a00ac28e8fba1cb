package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Host                string        `env:"HOST,default=0.0.0.0" validate:"required"`
	Port                int           `env:"PORT,default=5000" validate:"gt=0,lte=65535"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	GinMode             string        `env:"GIN_MODE,default=release" validate:"oneof=debug release test"`
	ModelBundlePath     string        `env:"MODEL_BUNDLE_PATH" validate:"required_if=FakeScorer classifier"`
	FakeScorer          string        `env:"FAKE_SCORER,default=heuristic" validate:"oneof=heuristic classifier"`
	HeuristicPolicyPath string        `env:"HEURISTIC_POLICY_PATH"`
	HeuristicSeed       *int          `env:"HEURISTIC_SEED" validate:"omitempty,gte=0"`
	CorsAllowOrigins    string        `env:"CORS_ALLOW_ORIGINS,default=*"`
	ReadTimeout         time.Duration `env:"READ_TIMEOUT,default=10s" validate:"gt=0"`
	WriteTimeout        time.Duration `env:"WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s" validate:"gt=0"`
}

// LoadConfig reads the server configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas, dropping blanks.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CorsAllowOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
