// Package httpapi exposes the LifeLog services as a JSON REST API under
// /api, plus the public photo download route.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/logging"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/journals"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/memories"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/places"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/tastes"
	"github.com/dmitrijs2005/lifelog/internal/server/services"
	"github.com/dmitrijs2005/lifelog/internal/server/storage"
)

const shutdownTimeout = 5 * time.Second

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context, userID string) (*models.Profile, error)
	Authenticate(accessToken string) (string, error)
}

type JournalService interface {
	Create(ctx context.Context, userID string, e *models.JournalEntry) (*models.JournalEntry, error)
	Update(ctx context.Context, userID, id string, e *models.JournalEntry) (*models.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	List(ctx context.Context, userID string, f journals.Filter) ([]*models.JournalEntry, error)
}

type MemoryService interface {
	Create(ctx context.Context, userID string, m *models.Memory) (*models.Memory, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.Memory, error)
	List(ctx context.Context, userID string, f memories.Filter) ([]*models.Memory, error)
}

type TasteService interface {
	Create(ctx context.Context, userID string, t *models.Taste) (*models.Taste, error)
	Update(ctx context.Context, userID, id string, t *models.Taste) (*models.Taste, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.Taste, error)
	List(ctx context.Context, userID string, f tastes.Filter) ([]*models.Taste, error)
}

type PlaceService interface {
	Create(ctx context.Context, userID string, p *models.Place) (*models.Place, error)
	Update(ctx context.Context, userID, id string, p *models.Place) (*models.Place, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.Place, error)
	List(ctx context.Context, userID string, f places.Filter) ([]*models.Place, error)
}

type PhotoService interface {
	Upload(ctx context.Context, userID string, u services.PhotoUpload) (*models.Photo, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.Photo, error)
	List(ctx context.Context, userID string, f photos.Filter) ([]*models.Photo, error)
	Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error)
	DirectURL(ctx context.Context, key string) (string, bool, error)
}

type PhaseService interface {
	Create(ctx context.Context, userID string, p *models.LifePhase) (*models.LifePhase, error)
	Update(ctx context.Context, userID, id string, p *models.LifePhase) (*models.LifePhase, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*models.LifePhase, error)
	List(ctx context.Context, userID string) ([]*models.LifePhase, error)
}

// Services bundles everything the handlers call into.
type Services struct {
	Users    UserService
	Journals JournalService
	Memories MemoryService
	Tastes   TasteService
	Places   PlaceService
	Photos   PhotoService
	Phases   PhaseService
}

type Options struct {
	CORSAllowedOrigin string
	MaxUploadBytes    int64
}

type HTTPServer struct {
	address string
	svc     Services
	opts    Options
	logger  logging.Logger
	handler http.Handler
}

func NewHTTPServer(address string, l logging.Logger, svc Services, opts Options) *HTTPServer {
	s := &HTTPServer{
		address: address,
		svc:     svc,
		opts:    opts,
		logger:  l.With("module", "http_server"),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the fully wired handler, middleware included.
func (s *HTTPServer) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
