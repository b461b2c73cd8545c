package repository

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionRepository manages synced provider transactions.
type TransactionRepository interface {
	// UpsertTransaction inserts or updates a transaction keyed on
	// (provider, transaction_id). Re-syncing the same upstream list is
	// idempotent; the row count never grows on a repeat sync.
	UpsertTransaction(ctx context.Context, tx *entity.Transaction) error

	// FindTransactionsByUser returns a user's transactions for a provider,
	// newest first. A limit of 0 means no limit.
	FindTransactionsByUser(ctx context.Context, userID uuid.UUID, provider string, limit int) ([]*entity.Transaction, error)
}
