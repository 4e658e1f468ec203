package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// SessionModule provides login and token resolution services.
type SessionModule struct {
	service *SessionService
}

// Compile-time interface checks.
var _ mono.Module = (*SessionModule)(nil)
var _ mono.ServiceProviderModule = (*SessionModule)(nil)
var _ mono.HealthCheckableModule = (*SessionModule)(nil)

// NewModule creates a new SessionModule.
func NewModule() *SessionModule {
	return &SessionModule{}
}

// Name returns the module name.
func (m *SessionModule) Name() string {
	return "session"
}

// Start initializes the session module.
func (m *SessionModule) Start(_ context.Context) error {
	config := loadTokenConfig()
	m.service = NewSessionService(NewTokenManager(config))

	log.Printf("[session] Module started (issuer: %s)", config.Issuer)
	return nil
}

// Stop shuts down the module.
func (m *SessionModule) Stop(_ context.Context) error {
	log.Println("[session] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *SessionModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.service != nil,
		Message: "operational",
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *SessionModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "resolve-token", json.Unmarshal, json.Marshal, m.handleResolveToken,
	); err != nil {
		return fmt.Errorf("failed to register resolve-token service: %w", err)
	}

	log.Printf("[session] Registered services: login, resolve-token")
	return nil
}

// handleLogin handles the login service request.
func (m *SessionModule) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	sess, err := m.service.Login(ctx, req.Username)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Username:   sess.Username,
		UserID:     sess.UserID,
		LoggedInAt: sess.LoggedInAt,
		Token:      sess.Token,
		ExpiresIn:  sess.ExpiresIn,
	}, nil
}

// handleResolveToken handles the resolve-token service request.
func (m *SessionModule) handleResolveToken(ctx context.Context, req ResolveTokenRequest, _ *mono.Msg) (ResolveTokenResponse, error) {
	return ResolveTokenResponse{
		Username: m.service.Resolve(ctx, req.Token),
	}, nil
}

// loadTokenConfig loads token configuration from environment variables.
func loadTokenConfig() TokenConfig {
	config := DefaultTokenConfig()

	if secret := os.Getenv("SESSION_SECRET_KEY"); secret != "" {
		config.SecretKey = secret
	}

	if issuer := os.Getenv("SESSION_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}

	return config
}
