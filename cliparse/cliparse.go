package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	DatabasePath  string
	ConfigPath    string
	JWTSecret     string
	TMDBKey       string
	SweepInterval time.Duration
	Enrich        bool
}

// ParseFlags validates flags and fills in defaults and env fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("movie-night", flag.ContinueOnError)

	// Paths and network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database path")
	fs.StringVar(&cfg.ConfigPath, "c", "", "Screening catalog JSON path")
	fs.DurationVar(&cfg.SweepInterval, "sweep-interval", 0, "Interval between vote sweeps")

	// Run modes
	fs.BoolVar(&cfg.Enrich, "enrich", false, "Fetch TMDb metadata for catalog movies and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3310 // default
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/movienight.db"
	}

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = os.Getenv("CONFIG_PATH")
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = "data/config.json"
	}

	if cfg.SweepInterval == 0 {
		if s := os.Getenv("SWEEP_INTERVAL"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid SWEEP_INTERVAL env variable")
			}
			cfg.SweepInterval = d
		} else {
			cfg.SweepInterval = 24 * time.Hour
		}
	}

	cfg.TMDBKey = os.Getenv("TMDB_API_KEY")
	if cfg.Enrich {
		if cfg.TMDBKey == "" {
			return Config{}, errors.New("TMDB_API_KEY required for -enrich")
		}
		// Enrich runs never serve requests, so no secret is needed
		return cfg, nil
	}

	// Secret - MUST be provided for server runs
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	return cfg, nil
}
