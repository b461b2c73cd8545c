package repository

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when no API credential is configured for a provider.
var ErrCredentialNotFound = errors.New("provider credential not found")

// CredentialRepository looks up the API credentials this service uses to
// talk to payment providers. Credentials are operator-managed rows, never
// written by the application itself.
type CredentialRepository interface {
	// GetCredential retrieves the credential record for a provider.
	// Returns ErrCredentialNotFound when the provider has not been set up.
	GetCredential(ctx context.Context, provider string) (*entity.ProviderCredential, error)
}
