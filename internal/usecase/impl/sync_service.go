package impl

import (
	"context"
	"log/slog"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	"finboard/internal/errors"
	"finboard/internal/usecase"

	"github.com/google/uuid"
)

type syncService struct {
	tokenRepo       repository.ProviderTokenRepository
	transactionRepo repository.TransactionRepository
	provider        service.PaymentProviderService
	logger          *slog.Logger
}

// NewSyncService creates a new sync service instance
func NewSyncService(
	tokenRepo repository.ProviderTokenRepository,
	transactionRepo repository.TransactionRepository,
	provider service.PaymentProviderService,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		tokenRepo:       tokenRepo,
		transactionRepo: transactionRepo,
		provider:        provider,
		logger:          logger,
	}
}

// SyncTransactions pulls the user's transaction history and upserts each record.
func (srv *syncService) SyncTransactions(ctx context.Context, userID uuid.UUID) (*usecase.SyncResult, error) {
	token, err := srv.tokenRepo.FindLatestToken(ctx, userID, entity.ProviderSumUp)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrNotConnected
		}

		return nil, errors.Wrap(err, "failed to load provider token")
	}

	merchantCode, err := srv.provider.FetchMerchantCode(ctx, token)
	if err != nil {
		return nil, err
	}

	rawList, err := srv.provider.FetchTransactionHistory(ctx, token, merchantCode)
	if err != nil {
		return nil, err
	}

	synced := 0
	for _, raw := range rawList {
		normalized, err := srv.provider.NormalizeTransaction(raw)
		if err != nil {
			// A malformed record never aborts the run.
			srv.logger.Warn("skipping unparseable transaction", "userID", userID, "error", err)

			continue
		}

		tx := &entity.Transaction{
			ID:              uuid.New(),
			UserID:          userID,
			Provider:        entity.ProviderSumUp,
			TransactionID:   normalized.TransactionID,
			Amount:          normalized.Amount,
			Currency:        normalized.Currency,
			Status:          normalized.Status,
			Description:     normalized.Description,
			MerchantName:    normalized.MerchantName,
			TransactionDate: normalized.Timestamp,
			RawData:         normalized.Raw,
		}
		if err := srv.transactionRepo.UpsertTransaction(ctx, tx); err != nil {
			srv.logger.Error("failed to store transaction",
				"userID", userID, "transactionID", normalized.TransactionID, "error", err)

			continue
		}
		synced++
	}

	srv.logger.Info("transaction sync finished",
		"userID", userID, "synced", synced, "fetched", len(rawList))

	return &usecase.SyncResult{
		SyncedCount:  synced,
		TotalFetched: len(rawList),
	}, nil
}

// ListTransactions returns the user's stored transactions, newest first.
func (srv *syncService) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.FindTransactionsByUser(ctx, userID, entity.ProviderSumUp, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}
