package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// sessionAdapter wraps ServiceContainer for type-safe cross-module
// communication. It implements the SessionPort interface.
type sessionAdapter struct {
	container mono.ServiceContainer
}

// NewSessionAdapter creates a new adapter for session services.
// container is the ServiceContainer from the session module received
// via SetDependencyServiceContainer.
func NewSessionAdapter(container mono.ServiceContainer) SessionPort {
	if container == nil {
		panic("session adapter requires non-nil ServiceContainer")
	}
	return &sessionAdapter{container: container}
}

// Login logs a user in via the login service.
func (a *sessionAdapter) Login(ctx context.Context, username string) (*LoginResponse, error) {
	req := LoginRequest{Username: username}
	var resp LoginResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"login",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("login service call failed: %w", err)
	}
	return &resp, nil
}

// ResolveToken resolves a bearer token via the resolve-token service.
func (a *sessionAdapter) ResolveToken(ctx context.Context, token string) (string, error) {
	req := ResolveTokenRequest{Token: token}
	var resp ResolveTokenResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"resolve-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", fmt.Errorf("resolve-token service call failed: %w", err)
	}
	return resp.Username, nil
}
