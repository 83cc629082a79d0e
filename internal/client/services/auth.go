package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

// AuthService covers the /auth endpoints.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (*models.Profile, error)
}

type authService struct {
	r Requester
}

func NewAuthService(r Requester) AuthService {
	return &authService{r: r}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return one[models.AuthResponse](ctx, s.r, http.MethodPost, "/auth/register", req)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return one[models.AuthResponse](ctx, s.r, http.MethodPost, "/auth/login", req)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	return one[models.AuthResponse](ctx, s.r, http.MethodPost, "/auth/refresh", models.RefreshRequest{RefreshToken: refreshToken})
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.r.Do(ctx, http.MethodPost, "/auth/logout", models.RefreshRequest{RefreshToken: refreshToken}, nil)
}

func (s *authService) Me(ctx context.Context) (*models.Profile, error) {
	return one[models.Profile](ctx, s.r, http.MethodGet, "/auth/me", nil)
}
