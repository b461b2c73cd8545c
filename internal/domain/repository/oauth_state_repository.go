package repository

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStateNotFound is returned when no OAuth state row matches a state value.
var ErrStateNotFound = errors.New("oauth state not found")

// OAuthStateRepository manages ephemeral CSRF state records for the OAuth flow.
type OAuthStateRepository interface {
	// CreateState persists a fresh state record. Every initiation inserts a
	// new row; duplicates are tolerated and disambiguated at lookup time.
	CreateState(ctx context.Context, state *entity.OAuthState) error

	// FindLatestByValue retrieves the most recently created state record
	// matching the given opaque value. Returns ErrStateNotFound when the
	// value was never issued or has already been consumed.
	FindLatestByValue(ctx context.Context, value string) (*entity.OAuthState, error)

	// DeleteByValue removes every state record with the given value,
	// consuming it so a second verification fails.
	DeleteByValue(ctx context.Context, value string) error
}
