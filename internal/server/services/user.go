// Package services holds the server's business logic. Services validate
// input, stamp ownership and server-assigned fields, and talk to
// repositories through a repomanager.RepositoryManager.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/dbx"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/auth"
	"github.com/dmitrijs2005/lifelog/internal/server/config"
	sm "github.com/dmitrijs2005/lifelog/internal/server/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/repomanager"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// dummyHash is compared against when the user does not exist, so unknown
// and known usernames take about as long to reject.
var dummyHash, _ = auth.HashPassword("lifelog-dummy-password")

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates the account and signs it in.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, &sm.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("username or email already taken: %w", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(ctx, s.db, user)
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPasswordHash(req.Password, dummyHash)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return s.issue(ctx, s.db, user)
}

// RefreshToken rotates a refresh token: the old one is deleted and a new
// pair is issued in the same transaction. Only the caller whose delete
// removes the row gets a new pair; a concurrent rotation of the same token
// is unauthorized.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if token.Expires.Before(timeNow()) {
		_ = repo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	var resp *models.AuthResponse
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var err error
		resp, err = s.issue(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Logout revokes the refresh token. Unknown tokens are ignored.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	user, err := s.repomanager.Users(s.db).GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Profile{UserID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// Authenticate returns the user id carried by a valid access token.
func (s *UserService) Authenticate(accessToken string) (string, error) {
	return auth.GetUserIDFromToken(accessToken, s.jwtSecret)
}

// PurgeExpiredTokens drops refresh tokens that can no longer be used.
func (s *UserService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, timeNow())
}

func (s *UserService) issue(ctx context.Context, db dbx.DBTX, user *sm.User) (*models.AuthResponse, error) {
	access, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repomanager.RefreshTokens(db).Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}

	return &models.AuthResponse{
		Token:        access,
		RefreshToken: refresh,
		Username:     user.Username,
		UserID:       user.ID,
	}, nil
}
