// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for provider token persistence.
var (
	// ErrTokenNotFound is returned when no token exists for a (user, provider) pair.
	ErrTokenNotFound = errors.New("provider token not found")
)

// ProviderTokenRepository manages stored payment provider credentials.
type ProviderTokenRepository interface {
	// UpsertToken stores a token for (user, provider), replacing the previous
	// one on reconnect so stale credentials never shadow fresh ones.
	UpsertToken(ctx context.Context, token *entity.ProviderToken) error

	// FindLatestToken retrieves the most recently created token for a
	// (user, provider) pair. Historical duplicates may exist; creation time
	// disambiguates. Returns ErrTokenNotFound when the user is not connected.
	FindLatestToken(ctx context.Context, userID uuid.UUID, provider string) (*entity.ProviderToken, error)

	// HasToken reports whether any token row exists for (user, provider).
	// Backs the connection-status read without loading the secret itself.
	HasToken(ctx context.Context, userID uuid.UUID, provider string) (bool, error)

	// DeleteTokens removes every token row for (user, provider), returning
	// the connection to the disconnected state.
	DeleteTokens(ctx context.Context, userID uuid.UUID, provider string) error
}
