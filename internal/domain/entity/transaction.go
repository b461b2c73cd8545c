package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a normalized provider transaction synced into local storage.
// Uniqueness is (Provider, TransactionID); re-syncs upsert rather than insert,
// so processing the same upstream list twice is idempotent.
type Transaction struct {
	ID              uuid.UUID      // The unique ID for this local record.
	UserID          uuid.UUID      // The user whose connection produced this transaction.
	Provider        string         // The payment provider, e.g. "sumup".
	TransactionID   string         // The provider-native transaction identifier.
	Amount          float64        // Transaction amount as reported upstream.
	Currency        string         // ISO currency code, defaulted when upstream omits it.
	Status          string         // Provider status string, defaulted when upstream omits it.
	Description     string         // Optional human-readable description.
	MerchantName    string         // Optional merchant display name.
	TransactionDate time.Time      // When the transaction happened upstream.
	RawData         map[string]any // The unmodified upstream object, kept for forward compatibility.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
