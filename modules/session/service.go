package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyUsername is returned when a login username is blank after trimming.
var ErrEmptyUsername = errors.New("username is required")

// Session describes a logged-in user. Sessions are not stored anywhere;
// the signed token is the only artifact.
type Session struct {
	Username   string
	UserID     string
	LoggedInAt time.Time
	Token      string
	ExpiresIn  int64
}

// SessionService handles login and token resolution.
type SessionService struct {
	tokens *TokenManager
}

// NewSessionService creates a new SessionService.
func NewSessionService(tokens *TokenManager) *SessionService {
	return &SessionService{tokens: tokens}
}

// Login accepts any non-empty username and issues a signed session token
// for it. There are no passwords; identity is self-asserted.
func (s *SessionService) Login(_ context.Context, username string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	userID := uuid.New().String()
	token, err := s.tokens.Issue(username, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Session{
		Username:   username,
		UserID:     userID,
		LoggedInAt: time.Now(),
		Token:      token,
		ExpiresIn:  s.tokens.TokenDuration(),
	}, nil
}

// Resolve maps a bearer token to a username. Signed tokens are tried
// first, then the legacy base64-JSON format. Resolution never fails:
// anything unrecognizable resolves to the empty (anonymous) username.
func (s *SessionService) Resolve(_ context.Context, token string) string {
	if claims, err := s.tokens.Verify(token); err == nil {
		return claims.Username
	}
	if username, ok := DecodeLegacyToken(token); ok {
		return username
	}
	return ""
}
