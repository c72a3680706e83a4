package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Players         int           `env:"COLT_PLAYERS" envDefault:"4"`
	SetupSecretHex  string        `env:"COLT_SETUP_SECRET"`
	SetupTTL        time.Duration `env:"COLT_SETUP_TTL" envDefault:"168h"`
	SetupIssuer     string        `env:"COLT_SETUP_ISSUER" envDefault:"colt-express"`
	OTelEndpoint    string        `env:"COLT_OTEL_ENDPOINT"`
	OTelEnabled     bool          `env:"COLT_OTEL_ENABLED" envDefault:"true"`

	// SetupSecret is decoded from SetupSecretHex, or generated when unset.
	SetupSecret     []byte
	EphemeralSecret bool
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.SetupTTL <= 0 {
		return nil, fmt.Errorf("COLT_SETUP_TTL must be positive, got %s", cfg.SetupTTL)
	}

	if cfg.SetupSecretHex != "" {
		secret, err := hex.DecodeString(cfg.SetupSecretHex)
		if err != nil {
			return nil, fmt.Errorf("invalid COLT_SETUP_SECRET format, must be hex-encoded: %w", err)
		}
		cfg.SetupSecret = secret
	} else {
		cfg.SetupSecret = generateSecret()
		cfg.EphemeralSecret = true
		log.Println("WARNING: No COLT_SETUP_SECRET set. Setup codes will only decode in this process.")
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func generateSecret() []byte {
	secret := make([]byte, 32)
	rand.Read(secret)
	return secret
}
