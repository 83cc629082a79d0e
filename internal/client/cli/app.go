package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/lifelog/internal/client/api"
	"github.com/dmitrijs2005/lifelog/internal/client/config"
	"github.com/dmitrijs2005/lifelog/internal/client/localdb"
	"github.com/dmitrijs2005/lifelog/internal/client/services"
	"github.com/dmitrijs2005/lifelog/internal/client/session"
	"github.com/dmitrijs2005/lifelog/internal/logging"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/rs/zerolog"
)

// Session is what the commands need from the signed-in session.
type Session interface {
	Login(ctx context.Context, username, password string) (*session.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*session.User, error)
	Logout(ctx context.Context) error
	User() *session.User
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// App carries the services shared by every command of one process.
type App struct {
	logger  logging.Logger
	session Session

	journals services.JournalService
	memories services.MemoryService
	tastes   services.TasteService
	places   services.PlaceService
	phases   services.PhaseService
	photos   services.PhotoService

	in  *bufio.Reader
	out io.Writer

	db      *sql.DB
	logFile io.Closer
}

func newApp() *App {
	return &App{
		logger: logging.Nop{},
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// open wires the app for cfg: logger, local database, API client, services
// and the restored session.
func (a *App) open(ctx context.Context, cfg *config.Config) error {
	if cfg.LogFile != "" {
		l, closer, err := logging.NewFileLogger(cfg.LogFile, zerolog.InfoLevel)
		if err != nil {
			return err
		}
		a.logger, a.logFile = l, closer
	} else {
		a.logger = logging.NewZerologLogger(os.Stderr, zerolog.WarnLevel)
	}

	db, err := localdb.InitDatabase(ctx, cfg.LocalDBPath)
	if err != nil {
		return err
	}
	a.db = db

	client := api.NewClient(cfg.ServerURL, cfg.RequestTimeout)
	a.journals = services.NewJournalService(client)
	a.memories = services.NewMemoryService(client)
	a.tastes = services.NewTasteService(client)
	a.places = services.NewPlaceService(client)
	a.phases = services.NewPhaseService(client)
	a.photos = services.NewPhotoService(client)

	s := session.New(db, services.NewAuthService(client), client, a.logger)
	a.session = s
	if err := s.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not verify the stored session", "server", cfg.ServerURL, "error", err)
	}
	return nil
}

func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
		a.logFile = nil
	}
	return errors.Join(errs...)
}

// confirmer returns the delete confirmation: a prompt on the app's input,
// or an unconditional yes when --yes was given.
func (a *App) confirmer(yes bool) func(string) bool {
	if yes {
		return func(string) bool { return true }
	}
	return func(prompt string) bool { return Confirm(a.in, prompt, a.out) }
}
