package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lottolens/cliparse"
	"github.com/danielhkuo/lottolens/db"
	"github.com/danielhkuo/lottolens/hub"
	"github.com/danielhkuo/lottolens/metrics"
	"github.com/danielhkuo/lottolens/middleware"
	"github.com/danielhkuo/lottolens/router"
	"github.com/danielhkuo/lottolens/store"
	"github.com/danielhkuo/lottolens/watcher"
)

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	var dbConn *sql.DB
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, running without a data source")
	} else {
		dbConn, err = openDatabase(cfg)
		if err != nil {
			slog.Error("database setup failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	h := hub.New(slog.Default())

	// Draw watcher
	var w *watcher.Watcher
	if dbConn != nil && cfg.WatchSchedule != cliparse.WatchOff {
		w = watcher.New(store.New(dbConn, cfg.DatabaseType), h, slog.Default())
		if err := w.Start(cfg.WatchSchedule); err != nil {
			slog.Error("draw watcher failed to start", "error", err)
			os.Exit(1)
		}
	}

	// Create router
	mux := router.NewRouter(dbConn, h, cfg)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateBurst)
	stopCleanup := make(chan struct{})
	limiter.StartCleanup(10*time.Minute, stopCleanup)

	// Create server
	server := http.Server{
		Handler: metrics.InstrumentHandler(middleware.CORS(limiter.Handler(mux))),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		close(stopCleanup)
		if w != nil {
			w.Stop()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// Shutdown does not wait for hijacked websocket connections
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openDatabase connects, verifies the connection and creates the schema.
func openDatabase(cfg cliparse.Config) (*sql.DB, error) {
	conn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseType == store.TypeSQLite {
		// database/sql pools connections; SQLite allows one writer
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
