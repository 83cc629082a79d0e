// Package session owns the signed-in user of the CLI process. Credentials
// are persisted in the local metadata store so that later invocations can
// restore them.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/lifelog/internal/client/api"
	"github.com/dmitrijs2005/lifelog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lifelog/internal/client/services"
	"github.com/dmitrijs2005/lifelog/internal/dbx"
	"github.com/dmitrijs2005/lifelog/internal/logging"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
	keyUsername     = "username"
)

var (
	// ErrNotLoggedIn is returned by operations that need a signed-in user.
	ErrNotLoggedIn = errors.New("not logged in, run `lifelog login` first")

	// ErrSessionRefreshed is returned when a call was rejected with 401 and
	// the tokens were refreshed afterwards. The call itself is not repeated.
	ErrSessionRefreshed = errors.New("session refreshed, run the command again")
)

type User struct {
	ID       string
	Username string
}

// TokenHolder receives the access token to send with requests.
// *api.Client satisfies it.
type TokenHolder interface {
	SetToken(token string)
}

type Session struct {
	db     *sql.DB
	auth   services.AuthService
	tokens TokenHolder
	logger logging.Logger
	store  func(db dbx.DBTX) metadata.Repository

	mu           sync.RWMutex
	user         *User
	refreshToken string
}

func New(db *sql.DB, auth services.AuthService, tokens TokenHolder, logger logging.Logger) *Session {
	return &Session{db: db, auth: auth, tokens: tokens, logger: logger, store: sqliteStore}
}

func sqliteStore(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// Restore loads persisted credentials and checks them against the server.
// A rejected access token gets one refresh attempt; if that fails too the
// persisted credentials are cleared. Transport errors are returned; the
// stored user is kept so that later calls can still be attempted.
func (s *Session) Restore(ctx context.Context) error {
	repo := s.store(s.db)

	access, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return err
	}
	refresh, err := repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return err
	}
	if access == nil && refresh == nil {
		return nil
	}

	s.tokens.SetToken(string(access))
	s.mu.Lock()
	s.refreshToken = string(refresh)
	s.mu.Unlock()

	profile, err := s.auth.Me(ctx)
	if err == nil {
		s.setUser(&User{ID: profile.UserID, Username: profile.Username})
		return nil
	}
	if !api.IsUnauthorized(err) {
		id, gerr := repo.Get(ctx, keyUserID)
		if gerr != nil {
			s.logger.Warn(ctx, "reading stored user id failed", "error", gerr)
		}
		name, gerr := repo.Get(ctx, keyUsername)
		if gerr != nil {
			s.logger.Warn(ctx, "reading stored username failed", "error", gerr)
		}
		s.setUser(&User{ID: string(id), Username: string(name)})
		return err
	}

	if err := s.refresh(ctx); err != nil {
		s.logger.Info(ctx, "stored session expired", "error", err)
		return s.clear(ctx)
	}
	return nil
}

// Login validates the credentials locally, then signs in and persists the
// tokens.
func (s *Session) Login(ctx context.Context, username, password string) (*User, error) {
	req := models.LoginRequest{Username: strings.TrimSpace(username), Password: password}
	if err := validateCredentials(req.Username, req.Password); err != nil {
		return nil, err
	}

	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.signedIn(ctx, resp)
}

// Register validates locally (including the email), then creates the
// account and signs in with the returned tokens.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (*User, error) {
	if err := validateCredentials(strings.TrimSpace(req.Username), req.Password); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.signedIn(ctx, resp)
}

// Logout revokes the refresh token on the server when possible, then clears
// the persisted credentials and the in-memory user.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.RLock()
	refresh := s.refreshToken
	s.mu.RUnlock()

	if refresh != "" {
		if err := s.auth.Logout(ctx, refresh); err != nil {
			s.logger.Warn(ctx, "server logout failed", "error", err)
		}
	}
	return s.clear(ctx)
}

// Do runs fn exactly once for a signed-in user. When fn is rejected with
// 401 the tokens are refreshed for the next command and ErrSessionRefreshed
// is returned; a failed refresh signs the user out.
func (s *Session) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.IsAuthenticated() {
		return ErrNotLoggedIn
	}

	err := fn(ctx)
	if !api.IsUnauthorized(err) {
		return err
	}

	if rerr := s.refresh(ctx); rerr != nil {
		s.logger.Info(ctx, "token refresh failed", "error", rerr)
		if cerr := s.clear(ctx); cerr != nil {
			return cerr
		}
		return ErrNotLoggedIn
	}
	return fmt.Errorf("%w: %w", ErrSessionRefreshed, err)
}

func (s *Session) refresh(ctx context.Context) error {
	s.mu.RLock()
	refresh := s.refreshToken
	s.mu.RUnlock()
	if refresh == "" {
		return ErrNotLoggedIn
	}

	resp, err := s.auth.Refresh(ctx, refresh)
	if err != nil {
		return err
	}
	_, err = s.signedIn(ctx, resp)
	return err
}

func (s *Session) signedIn(ctx context.Context, resp *models.AuthResponse) (*User, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.store(tx)
		for k, v := range map[string]string{
			keyAccessToken:  resp.Token,
			keyRefreshToken: resp.RefreshToken,
			keyUserID:       resp.UserID,
			keyUsername:     resp.Username,
		} {
			if err := repo.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	s.tokens.SetToken(resp.Token)
	s.mu.Lock()
	s.refreshToken = resp.RefreshToken
	s.mu.Unlock()

	u := &User{ID: resp.UserID, Username: resp.Username}
	s.setUser(u)
	return s.User(), nil
}

func (s *Session) setUser(u *User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Session) clear(ctx context.Context) error {
	s.tokens.SetToken("")
	s.mu.Lock()
	s.user = nil
	s.refreshToken = ""
	s.mu.Unlock()

	if err := s.store(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func validateCredentials(username, password string) error {
	if utf8.RuneCountInString(username) < models.MinUsernameLength {
		return &models.ValidationError{Field: "username", Message: "must be at least 3 characters"}
	}
	if utf8.RuneCountInString(password) < models.MinPasswordLength {
		return &models.ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}
	return nil
}
