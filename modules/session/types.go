package session

import (
	"context"
	"time"
)

// LoginRequest is the request for logging in.
type LoginRequest struct {
	Username string `json:"username"`
}

// LoginResponse carries the synthesized user and its signed token.
type LoginResponse struct {
	Username   string    `json:"username"`
	UserID     string    `json:"user_id"`
	LoggedInAt time.Time `json:"logged_in_at"`
	Token      string    `json:"token"`
	ExpiresIn  int64     `json:"expires_in"`
}

// ResolveTokenRequest is the request for resolving a bearer token.
type ResolveTokenRequest struct {
	Token string `json:"token"`
}

// ResolveTokenResponse carries the resolved username. An empty username
// means the request is anonymous; resolution itself never errors.
type ResolveTokenResponse struct {
	Username string `json:"username"`
}

// SessionPort is the interface driving adapters use to reach the
// session module.
type SessionPort interface {
	Login(ctx context.Context, username string) (*LoginResponse, error)
	ResolveToken(ctx context.Context, token string) (string, error)
}
