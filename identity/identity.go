package identity

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrAccountTaken      = errors.New("email is already registered")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrMissingPassword   = errors.New("missing password")
	ErrWeakPassword      = errors.New("password is too weak")
	ErrInvalidToken      = errors.New("invalid token")
	ErrSessionExpired    = errors.New("session expired")
)

// MinPasswordLength is the shortest password accepted at sign up
const MinPasswordLength = 6

// Provider authenticates users. Implementations own the accounts and the
// sessions behind the bearer tokens they issue.
type Provider interface {
	SignUp(email, password string) (*Token, error)
	SignIn(email, password string) (*Token, error)
	SignOut(sessionID string) error
	CurrentUser(token string) (*Identity, error)
}

// Identity is the authenticated user behind a token
type Identity struct {
	UID       string
	SessionID string
}

// Token is a signed bearer token and its session
type Token struct {
	Token     string    `json:"token"`
	UID       string    `json:"uid"`
	SessionID string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
