package models

import (
	"strings"
	"unicode/utf8"
)

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username"`
	UserID       string `json:"userId"`
}

// Profile describes the authenticated user.
type Profile struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return invalid("username", "is required")
	}
	if r.Password == "" {
		return invalid("password", "is required")
	}
	return nil
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	if utf8.RuneCountInString(r.Username) < MinUsernameLength {
		return invalid("username", "must be at least 3 characters")
	}
	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		return invalid("password", "must be at least 6 characters")
	}
	if !strings.Contains(r.Email, "@") {
		return invalid("email", "must be a valid address")
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
