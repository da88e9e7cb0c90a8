package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"showbook/internal/config"
	"showbook/internal/db"
	"showbook/internal/db/migrations"
	"showbook/internal/logging"
	"showbook/internal/repository"
	"showbook/internal/routes"
	"showbook/internal/services"
)

func newRootCommand() *cobra.Command {
	var port string

	root := &cobra.Command{
		Use:   "showbook",
		Short: "Venue, artist and show booking directory",
		Long: `Showbook serves the venue, artist and show directory over HTTP.

Without a subcommand it runs the server, the same as "showbook serve".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), port)
		},
	}
	root.PersistentFlags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), port)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database if needed and apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := open(cmd.Context(), config.Load())
			if err != nil {
				return err
			}
			defer database.Close()
			log.Info().Msg("migrations applied")
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the default venues, artists and shows into an empty directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := open(cmd.Context(), config.Load())
			if err != nil {
				return err
			}
			defer database.Close()

			seeded, err := repository.NewSeeder(database.DB).SeedIfEmpty(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if !seeded {
				log.Info().Msg("directory already has data, nothing seeded")
			}
			return nil
		},
	}

	root.AddCommand(serveCmd, migrateCmd, seedCmd)
	return root
}

// open sets up logging, ensures the database exists, connects and migrates.
func open(ctx context.Context, cfg *config.Config) (*db.Database, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := db.CreateDatabaseIfNotExists(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("ensure database exists: %w", err)
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := migrations.RunMigrations(ctx, database.DB.DB); err != nil {
		database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return database, nil
}

func serve(ctx context.Context, portOverride string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()
	if portOverride != "" {
		cfg.Port = portOverride
	}

	database, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	var images services.ImageStore
	s3Config, err := config.NewS3Config(ctx, cfg.S3)
	if err != nil {
		return fmt.Errorf("configure s3: %w", err)
	}
	if s3Config != nil {
		images = services.NewS3ImageStore(s3Config)
		log.Info().Str("bucket", s3Config.Bucket).Msg("image uploads enabled")
	}

	router := routes.SetupRoutes(database.DB, cfg, images)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	// Give server 5 seconds to finish current requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exiting")
	return nil
}
