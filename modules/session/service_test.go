package session

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func newTestService() *SessionService {
	return NewSessionService(NewTokenManager(testTokenConfig()))
}

func TestSessionService_Login(t *testing.T) {
	service := newTestService()

	session, err := service.Login(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if session.Username != "alice" {
		t.Errorf("session.Username = %v, want %v", session.Username, "alice")
	}
	if session.UserID == "" {
		t.Error("session.UserID is empty")
	}
	if session.Token == "" {
		t.Error("session.Token is empty")
	}
	if session.ExpiresIn != 3600 {
		t.Errorf("session.ExpiresIn = %v, want %v", session.ExpiresIn, 3600)
	}
	if time.Since(session.LoggedInAt) > time.Minute {
		t.Errorf("session.LoggedInAt = %v, not recent", session.LoggedInAt)
	}
}

func TestSessionService_LoginTrimsUsername(t *testing.T) {
	service := newTestService()

	session, err := service.Login(context.Background(), "  alice  ")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.Username != "alice" {
		t.Errorf("session.Username = %q, want %q", session.Username, "alice")
	}
}

func TestSessionService_LoginEmptyUsername(t *testing.T) {
	service := newTestService()

	for _, username := range []string{"", "   ", "\t\n"} {
		if _, err := service.Login(context.Background(), username); !errors.Is(err, ErrEmptyUsername) {
			t.Errorf("Login(%q) error = %v, want %v", username, err, ErrEmptyUsername)
		}
	}
}

func TestSessionService_LoginUniqueUserIDs(t *testing.T) {
	service := newTestService()

	first, err := service.Login(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	second, err := service.Login(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if first.UserID == second.UserID {
		t.Errorf("expected distinct user IDs, both are %q", first.UserID)
	}
}

func TestSessionService_ResolveSignedToken(t *testing.T) {
	service := newTestService()

	session, err := service.Login(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if got := service.Resolve(context.Background(), session.Token); got != "alice" {
		t.Errorf("Resolve() = %q, want %q", got, "alice")
	}
}

func TestSessionService_ResolveLegacyToken(t *testing.T) {
	service := newTestService()

	token := base64.StdEncoding.EncodeToString([]byte(`{"username":"bob"}`))
	if got := service.Resolve(context.Background(), token); got != "bob" {
		t.Errorf("Resolve() = %q, want %q", got, "bob")
	}
}

func TestSessionService_ResolveGarbageIsAnonymous(t *testing.T) {
	service := newTestService()

	for _, token := range []string{"", "garbage", "!!!", base64.StdEncoding.EncodeToString([]byte("{}"))} {
		if got := service.Resolve(context.Background(), token); got != "" {
			t.Errorf("Resolve(%q) = %q, want empty", token, got)
		}
	}
}
