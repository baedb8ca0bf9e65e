package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	DatabaseURL    string   `env:"DATABASE_URL,required"`
	Port           string   `env:"PORT" envDefault:"3000"`
	JWTSecret      string   `env:"JWT_SECRET,required"`
	ClientURL      string   `env:"CLIENT_URL"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	CookieDomain   string   `env:"COOKIE_DOMAIN"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &cfg, nil
}

// Origins returns the CORS allowlist: development defaults plus any
// configured client URL and extra origins.
func (c *Config) Origins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if c.ClientURL != "" {
		origins = append(origins, c.ClientURL)
	}

	for _, origin := range c.AllowedOrigins {
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
