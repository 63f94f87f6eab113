package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// WatchOff disables the scheduled draw watcher.
const WatchOff = "off"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ScanPageSize  int
	WatchSchedule string
	RateLimitRPS  float64
	RateBurst     int
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("lottolens", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (empty runs without a data source)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")

	// Tuning
	fs.IntVar(&cfg.ScanPageSize, "page-size", 0, "Draw history page size")
	fs.StringVar(&cfg.WatchSchedule, "watch", "", "Cron schedule for the draw watcher, or \"off\"")
	fs.Float64Var(&cfg.RateLimitRPS, "rate", -1, "Requests per second per client (0 disables)")
	fs.IntVar(&cfg.RateBurst, "burst", 0, "Rate limit burst")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, fmt.Errorf("unsupported database type %q (use postgres or sqlite)", cfg.DatabaseType)
	}

	if cfg.ScanPageSize == 0 {
		size, err := envInt("SCAN_PAGE_SIZE", 1000)
		if err != nil {
			return Config{}, err
		}
		cfg.ScanPageSize = size
	}
	if cfg.ScanPageSize < 1 {
		return Config{}, errors.New("scan page size must be positive")
	}

	if cfg.WatchSchedule == "" {
		cfg.WatchSchedule = os.Getenv("WATCH_SCHEDULE")
		if cfg.WatchSchedule == "" {
			cfg.WatchSchedule = "@every 1m"
		}
	}

	if cfg.RateLimitRPS < 0 {
		cfg.RateLimitRPS = 20
		if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
			rps, err := strconv.ParseFloat(s, 64)
			if err != nil || rps < 0 {
				return Config{}, errors.New("invalid RATE_LIMIT_RPS env variable")
			}
			cfg.RateLimitRPS = rps
		}
	}

	if cfg.RateBurst == 0 {
		burst, err := envInt("RATE_LIMIT_BURST", 40)
		if err != nil {
			return Config{}, err
		}
		cfg.RateBurst = burst
	}

	return cfg, nil
}

// envInt reads an integer env variable, returning def when unset
func envInt(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return n, nil
}
