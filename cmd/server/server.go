// Package server implements the `serve` subcommand: it wires configuration,
// logging, tracing, storage, and the HTTP transport, then runs the server
// until a shutdown signal arrives.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/autokursai/landing-api/cmd"
	_ "github.com/autokursai/landing-api/docs" // swagger spec, served when enabled
	"github.com/autokursai/landing-api/internal/config"
	"github.com/autokursai/landing-api/internal/geo"
	httpapi "github.com/autokursai/landing-api/internal/http"
	"github.com/autokursai/landing-api/internal/observability"
	"github.com/autokursai/landing-api/internal/repo"
	"github.com/autokursai/landing-api/internal/session"
	"github.com/autokursai/landing-api/internal/sysutil"
)

// ServeCmd starts the HTTP server.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the landing-page API server",
	Long: `Loads configuration from the environment (and .env when present),
opens the SQLite database, runs migrations, and serves the public
tracking/contact endpoints plus the admin dashboard API.`,
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	cmd.RootCmd.AddCommand(ServeCmd)
}

func run() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupOTel(ctx, cfg.OTEL, cmd.Version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup")
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("gorm tracing")
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	cities := geo.NewResolver(geo.ResolverOptions{
		BaseURL:       cfg.Geo.BaseURL,
		Timeout:       cfg.Geo.Timeout,
		CacheTTL:      cfg.Geo.CacheTTL,
		CacheMax:      cfg.Geo.CacheMax,
		LookupsPerMin: cfg.Geo.LookupsPerMin,
	})
	sessions := session.NewMemory(cfg.SessionTTL)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	httpapi.RegisterRoutes(router, db, sessions, cities, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("version", cmd.Version).
			Str("addr", srv.Addr).
			Str("db", cfg.DBPath).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
