package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/movie-night/catalog"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/db"
	"github.com/danielhkuo/movie-night/router"
	"github.com/danielhkuo/movie-night/sweeper"
	"github.com/danielhkuo/movie-night/tmdb"
)

func main() {
	var err error

	// Load .env if present (no error if missing)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load screening catalog (seeds defaults on first run)
	cat, err := catalog.Load(cfg.ConfigPath)
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	// Enrich mode: fetch TMDb metadata for the catalog and exit
	if cfg.Enrich {
		client := tmdb.NewClient(cfg.TMDBKey)
		n, err := tmdb.EnrichCatalog(context.Background(), client, cat)
		if err != nil {
			slog.Error("enrichment failed", "error", err, "enriched", n)
			os.Exit(1)
		}
		slog.Info("enrichment complete", "enriched", n)
		return
	}

	// Open SQLite database
	dbConn, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Start the vote sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.New(dbConn, cat, cfg.SweepInterval).Run(ctx)

	// Create router
	mux := router.NewRouter(dbConn, cat, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
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
