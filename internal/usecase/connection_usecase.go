package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ConnectResult carries the provider authorization URL the frontend should
// redirect the user to.
type ConnectResult struct {
	AuthorizationURL string `json:"authorization_url"`
}

// CallbackParams are the query parameters the provider sends to the OAuth
// callback endpoint. ErrorParam is non-empty when the user denied access.
type CallbackParams struct {
	Code       string
	State      string
	ErrorParam string
}

// CallbackResult tells the delivery layer where to redirect the browser.
// The callback never surfaces errors as JSON; failures are encoded in the URL.
type CallbackResult struct {
	RedirectURL string
}

// ConnectionStatus reports whether the user has a stored provider token.
type ConnectionStatus struct {
	Connected bool `json:"connected"`
}

// ConnectionUsecase defines the interface for the payment provider connection flow
type ConnectionUsecase interface {
	// InitiateConnect starts the OAuth flow: it persists a fresh CSRF state
	// and returns the provider authorization URL for the user to visit.
	InitiateConnect(ctx context.Context, userID uuid.UUID) (*ConnectResult, error)

	// HandleCallback completes the OAuth flow. It verifies the state,
	// exchanges the authorization code and stores the resulting token.
	// It always returns a frontend redirect URL, success or failure.
	HandleCallback(ctx context.Context, params *CallbackParams) *CallbackResult

	// GetStatus reports whether the user currently has a provider connection.
	GetStatus(ctx context.Context, userID uuid.UUID) (*ConnectionStatus, error)

	// Disconnect removes every stored token for the user, returning the
	// connection to the disconnected state.
	Disconnect(ctx context.Context, userID uuid.UUID) error
}
