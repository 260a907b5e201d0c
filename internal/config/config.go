package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the service configuration parsed from environment variables.
type Config struct {
	Port     string `env:"APP_PORT"  envDefault:"8080"`
	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB"  envDefault:"jobboard"`

	Token TokenConfig

	OTPExpiresIn      time.Duration `env:"OTP_EXPIRES_IN"       envDefault:"5m"`
	OTPRequestsPerMin int           `env:"OTP_REQUESTS_PER_MIN" envDefault:"3"`

	RedisAddr      string `env:"REDIS_ADDR"`
	AMQPURL        string `env:"AMQP_URL"`
	EventExchange  string `env:"EVENT_EXCHANGE" envDefault:"jobboard.events"`
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`
}

// TokenConfig holds session token settings.
type TokenConfig struct {
	Secret    string        `env:"JWT_SECRET"`
	Issuer    string        `env:"TOKEN_ISSUER"     envDefault:"jobboard-api"`
	ExpiresIn time.Duration `env:"TOKEN_EXPIRES_IN" envDefault:"24h"`
}

// Load parses the configuration from environment variables.
func Load(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

func (c *Config) validate() error {
	if c.Token.Secret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}

	return nil
}
