package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderToken represents a payment provider's access credentials for a user.
// Multiple historical rows may exist for the same (user, provider) pair;
// readers pick the most recent by creation time.
type ProviderToken struct {
	ID           uuid.UUID  // The unique ID for this token record.
	UserID       uuid.UUID  // Links the credential to the user it belongs to.
	Provider     string     // The payment provider, e.g. "sumup".
	AccessToken  string     // The opaque access token issued by the provider.
	RefreshToken string     // Optional refresh token, empty when the provider issued none.
	TokenType    string     // Token scheme for the Authorization header, normally "Bearer".
	ExpiresAt    *time.Time // When the access token expires; nil when the provider reported no lifetime.
	Scope        string     // The scope string granted by the provider.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OAuthState is the ephemeral CSRF token that binds an authorization request
// to its callback. It is created by the initiator and consumed exactly once
// (best-effort) by the callback handler.
type OAuthState struct {
	ID        uuid.UUID // The unique ID for this state record.
	UserID    uuid.UUID // The user who started the OAuth flow.
	Value     string    // The random opaque state value sent to the provider.
	CreatedAt time.Time
}

// ProviderCredential holds the API credentials this service uses to talk to
// a payment provider. Either the client pair or the API key may be present.
type ProviderCredential struct {
	Provider     string
	APIKey       string // Single opaque API key, used as a bearer fallback.
	ClientID     string // OAuth client id.
	ClientSecret string // OAuth client secret, never logged.
}

// HasClientPair reports whether a full OAuth client id/secret pair is configured.
func (c *ProviderCredential) HasClientPair() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
