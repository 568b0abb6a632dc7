package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/dre_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/dre_backoffice/internal/core/services"
	"github.com/SscSPs/dre_backoffice/internal/handlers"
	"github.com/SscSPs/dre_backoffice/internal/middleware"
	"github.com/SscSPs/dre_backoffice/internal/platform/config"
	"github.com/SscSPs/dre_backoffice/internal/repositories/database/memory"
	"github.com/SscSPs/dre_backoffice/internal/repositories/database/pgsql"
	"github.com/SscSPs/dre_backoffice/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, logger, cfg, skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start")

	return cmd
}

// openRepositories returns the repositories for the configured storage driver
// and a cleanup func that releases them.
func openRepositories(ctx context.Context, logger *slog.Logger, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using the in-memory store")
		return memory.NewRepositoryProvider(memory.New()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("initializing database pool: %w", err)
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func runServe(ctx context.Context, logger *slog.Logger, cfg *config.Config, skipMigrations bool) error {
	if cfg.StorageDriver == config.StoragePostgres && !skipMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp); err != nil {
			return err
		}
	}

	repos, closeRepos, err := openRepositories(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closeRepos()

	// Workplace membership is owned by the surrounding platform; without an
	// authorizer every authenticated user may act on any workplace.
	serviceContainer := services.NewServiceContainer(repos, nil)

	var rateLimiter *limiter.Limiter
	if cfg.RateLimit != "" {
		if rateLimiter, err = middleware.NewIPRateLimiter(cfg.RateLimit); err != nil {
			return err
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("setting trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}
