// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"context"
	"time"

	"finboard/internal/domain/entity"
)

// TokenGrant is the result of exchanging an authorization code at the
// provider's token endpoint.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	TokenType    string     // Defaults to "Bearer" when the provider omits it.
	ExpiresAt    *time.Time // Derived from expires_in; nil when absent.
	Scope        string
}

// ProviderTransaction is one upstream transaction after field normalization.
// Raw keeps the unmodified upstream object for storage.
type ProviderTransaction struct {
	TransactionID string
	Amount        float64
	Currency      string
	Status        string
	Description   string
	MerchantName  string
	Timestamp     time.Time
	Raw           map[string]any
}

// PaymentProviderService is the outbound contract to the payment provider's
// OAuth and transaction APIs. Implementations must not retry; every error is
// terminal for the current operation.
type PaymentProviderService interface {
	// AuthorizationURL builds the provider authorization URL for the given
	// credential, redirect URI and CSRF state value. Pure; no network call.
	AuthorizationURL(cred *entity.ProviderCredential, redirectURI, state string) string

	// ExchangeCode swaps an authorization code for an access token with a
	// single POST to the provider's token endpoint.
	ExchangeCode(ctx context.Context, cred *entity.ProviderCredential, code, redirectURI string) (*TokenGrant, error)

	// FetchMerchantCode resolves the merchant identifier required by the
	// transaction-history endpoint via the provider's profile endpoint.
	FetchMerchantCode(ctx context.Context, token *entity.ProviderToken) (string, error)

	// FetchTransactionHistory returns the raw upstream transaction objects
	// for a merchant, already unwrapped from whichever list envelope the
	// provider used.
	FetchTransactionHistory(ctx context.Context, token *entity.ProviderToken, merchantCode string) ([]map[string]any, error)

	// NormalizeTransaction maps one raw upstream object into a
	// ProviderTransaction, applying the ordered field-fallback rules.
	NormalizeTransaction(raw map[string]any) (*ProviderTransaction, error)
}
