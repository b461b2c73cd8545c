package usecase

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncResult summarizes one synchronization run. SyncedCount counts the
// records actually stored; TotalFetched counts what the provider returned.
// The two differ when individual records fail normalization or persistence.
type SyncResult struct {
	SyncedCount  int `json:"synced_count"`
	TotalFetched int `json:"total_fetched"`
}

// SyncUsecase defines the interface for transaction synchronization use cases
type SyncUsecase interface {
	// SyncTransactions pulls the user's transaction history from the
	// provider and upserts each record. Individual record failures are
	// skipped; the run only fails outright when the provider is
	// unreachable or the user is not connected.
	SyncTransactions(ctx context.Context, userID uuid.UUID) (*SyncResult, error)

	// ListTransactions returns the user's stored transactions, newest
	// first. A limit of 0 means no limit.
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)
}
