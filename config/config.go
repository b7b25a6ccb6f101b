package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Settings struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	DBDriver     string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBURL        string        `env:"DB_URL,required"`
	JWTSecret    string        `env:"JWT_SECRET,required"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CORSOrigin   string        `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"text"`
	SeedFixtures bool          `env:"SEED_FIXTURES" envDefault:"false"`
	GinMode      string        `env:"GIN_MODE" envDefault:"debug"`
}

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	Current Settings
)

// LoadEnv reads .env (if any) and the process environment, and exits when a
// required variable is missing.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	s, err := Parse(env.Options{})
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	Current = s
	PORT = s.Port
	DB_URL = s.DBURL
	JWT_SECRET = s.JWTSecret
}

// Parse builds Settings from the environment described by opts.
func Parse(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, err
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", s.DBDriver)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", s.LogFormat)
	}
	if s.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", s.SessionTTL)
	}
	return nil
}
