// Package server initializes and runs the LifeLog API server. It opens the
// database, applies migrations, picks the photo store, and serves HTTP until
// a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/logging"
	"github.com/dmitrijs2005/lifelog/internal/server/config"
	"github.com/dmitrijs2005/lifelog/internal/server/httpapi"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lifelog/internal/server/services"
	"github.com/dmitrijs2005/lifelog/internal/server/storage"
)

// tokenPurgeInterval is how often expired refresh tokens are removed.
const tokenPurgeInterval = time.Hour

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	httpServer  *httpapi.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	store, err := newBlobStore(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("photo store init error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	svc := httpapi.Services{
		Users:    us,
		Journals: services.NewJournalService(db, rm),
		Memories: services.NewMemoryService(db, rm),
		Tastes:   services.NewTasteService(db, rm),
		Places:   services.NewPlaceService(db, rm),
		Photos:   services.NewPhotoService(db, rm, store, c.MaxUploadBytes(), logger.With("module", "photos")),
		Phases:   services.NewPhaseService(db, rm),
	}
	srv := httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, svc, httpapi.Options{
		CORSAllowedOrigin: c.CORSAllowedOrigin,
		MaxUploadBytes:    c.MaxUploadBytes(),
	})

	logger.Info(ctx, "photo store ready", "backend", c.StorageBackend)

	return &App{config: c, logger: logger, db: db, userService: us, httpServer: srv}, nil
}

func newBlobStore(ctx context.Context, c *config.Config) (storage.BlobStore, error) {
	switch c.StorageBackend {
	case config.StorageS3:
		return storage.NewS3Store(ctx, storage.S3Config{
			User:         c.S3RootUser,
			Password:     c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	case config.StorageLocal, "":
		return storage.NewLocalStore(c.UploadDir)
	}
	return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) purgeExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.userService.PurgeExpiredTokens(ctx)
			if err != nil {
				app.logger.Warn(ctx, "refresh token purge failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "purged expired refresh tokens", "count", n)
			}
		}
	}
}

// Run blocks until a termination signal arrives or the HTTP server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.purgeExpiredTokens(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
