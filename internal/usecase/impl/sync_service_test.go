package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	mockRepo "finboard/internal/mocks/repository"
	mockService "finboard/internal/mocks/service"
	"finboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service         usecase.SyncUsecase
	tokenRepo       *mockRepo.MockProviderTokenRepository
	transactionRepo *mockRepo.MockTransactionRepository
	provider        *mockService.MockPaymentProviderService
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	tokenRepo := mockRepo.NewMockProviderTokenRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)
	provider := mockService.NewMockPaymentProviderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(tokenRepo, transactionRepo, provider, logger)

	return syncServiceFixtures{
		service:         svc,
		tokenRepo:       tokenRepo,
		transactionRepo: transactionRepo,
		provider:        provider,
	}
}

func testStoredToken(userID uuid.UUID) *entity.ProviderToken {
	return &entity.ProviderToken{
		ID:          uuid.New(),
		UserID:      userID,
		Provider:    entity.ProviderSumUp,
		AccessToken: "access-token",
		TokenType:   "Bearer",
	}
}

func rawTransaction(id string, amount float64) map[string]any {
	return map[string]any{
		"id":        id,
		"amount":    amount,
		"currency":  "EUR",
		"status":    "SUCCESSFUL",
		"timestamp": "2026-03-01T10:00:00Z",
	}
}

func normalizedTransaction(id string, amount float64) *service.ProviderTransaction {
	return &service.ProviderTransaction{
		TransactionID: id,
		Amount:        amount,
		Currency:      "EUR",
		Status:        "SUCCESSFUL",
		Timestamp:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Raw:           rawTransaction(id, amount),
	}
}

func TestSyncService_SyncTransactions_Success(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := testStoredToken(userID)
	rawList := []map[string]any{
		rawTransaction("tx-1", 12.5),
		rawTransaction("tx-2", 30),
	}

	fx.tokenRepo.EXPECT().
		FindLatestToken(ctx, userID, entity.ProviderSumUp).
		Return(token, nil)

	fx.provider.EXPECT().
		FetchMerchantCode(ctx, token).
		Return("M1234", nil)

	fx.provider.EXPECT().
		FetchTransactionHistory(ctx, token, "M1234").
		Return(rawList, nil)

	fx.provider.EXPECT().
		NormalizeTransaction(rawList[0]).
		Return(normalizedTransaction("tx-1", 12.5), nil)
	fx.provider.EXPECT().
		NormalizeTransaction(rawList[1]).
		Return(normalizedTransaction("tx-2", 30), nil)

	fx.transactionRepo.EXPECT().
		UpsertTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, tx *entity.Transaction) {
			assert.Equal(t, userID, tx.UserID)
			assert.Equal(t, entity.ProviderSumUp, tx.Provider)
			assert.NotEmpty(t, tx.TransactionID)
		}).
		Return(nil).
		Times(2)

	result, err := fx.service.SyncTransactions(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, 2, result.TotalFetched)
}

func TestSyncService_SyncTransactions_NotConnected(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		FindLatestToken(ctx, userID, entity.ProviderSumUp).
		Return(nil, repository.ErrTokenNotFound)

	result, err := fx.service.SyncTransactions(ctx, userID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNotConnected, err)
	// Without a token no upstream call may happen.
	fx.provider.AssertNotCalled(t, "FetchMerchantCode", mock.Anything, mock.Anything)
}

func TestSyncService_SyncTransactions_PartialFailure(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := testStoredToken(userID)
	rawList := []map[string]any{
		rawTransaction("tx-1", 12.5),
		map[string]any{"note": "no id, no amount"},
		rawTransaction("tx-3", 99),
	}

	fx.tokenRepo.EXPECT().
		FindLatestToken(ctx, userID, entity.ProviderSumUp).
		Return(token, nil)

	fx.provider.EXPECT().
		FetchMerchantCode(ctx, token).
		Return("M1234", nil)

	fx.provider.EXPECT().
		FetchTransactionHistory(ctx, token, "M1234").
		Return(rawList, nil)

	fx.provider.EXPECT().
		NormalizeTransaction(rawList[0]).
		Return(normalizedTransaction("tx-1", 12.5), nil)
	fx.provider.EXPECT().
		NormalizeTransaction(rawList[1]).
		Return(nil, domainerrors.ErrUpstreamSchema)
	fx.provider.EXPECT().
		NormalizeTransaction(rawList[2]).
		Return(normalizedTransaction("tx-3", 99), nil)

	fx.transactionRepo.EXPECT().
		UpsertTransaction(ctx, mock.AnythingOfType("*entity.Transaction")).
		Return(nil).
		Times(2)

	result, err := fx.service.SyncTransactions(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, 3, result.TotalFetched)
}

func TestSyncService_SyncTransactions_UpsertFailureSkipsRecord(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := testStoredToken(userID)
	rawList := []map[string]any{
		rawTransaction("tx-1", 12.5),
		rawTransaction("tx-2", 30),
	}

	fx.tokenRepo.EXPECT().
		FindLatestToken(ctx, userID, entity.ProviderSumUp).
		Return(token, nil)

	fx.provider.EXPECT().
		FetchMerchantCode(ctx, token).
		Return("M1234", nil)

	fx.provider.EXPECT().
		FetchTransactionHistory(ctx, token, "M1234").
		Return(rawList, nil)

	fx.provider.EXPECT().
		NormalizeTransaction(rawList[0]).
		Return(normalizedTransaction("tx-1", 12.5), nil)
	fx.provider.EXPECT().
		NormalizeTransaction(rawList[1]).
		Return(normalizedTransaction("tx-2", 30), nil)

	fx.transactionRepo.EXPECT().
		UpsertTransaction(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.TransactionID == "tx-1"
		})).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("constraint"), "boom"))
	fx.transactionRepo.EXPECT().
		UpsertTransaction(ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.TransactionID == "tx-2"
		})).
		Return(nil)

	result, err := fx.service.SyncTransactions(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SyncedCount)
	assert.Equal(t, 2, result.TotalFetched)
}

func TestSyncService_SyncTransactions_UpstreamFailure(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := testStoredToken(userID)

	fx.tokenRepo.EXPECT().
		FindLatestToken(ctx, userID, entity.ProviderSumUp).
		Return(token, nil)

	fx.provider.EXPECT().
		FetchMerchantCode(ctx, token).
		Return("", domainerrors.ErrUpstreamFailed)

	result, err := fx.service.SyncTransactions(ctx, userID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrUpstreamFailed, err)
}

func TestSyncService_ListTransactions(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Transaction{
		{ID: uuid.New(), UserID: userID, TransactionID: "tx-2"},
		{ID: uuid.New(), UserID: userID, TransactionID: "tx-1"},
	}

	fx.transactionRepo.EXPECT().
		FindTransactionsByUser(ctx, userID, entity.ProviderSumUp, 50).
		Return(expected, nil)

	transactions, err := fx.service.ListTransactions(ctx, userID, 50)
	require.NoError(t, err)
	assert.Equal(t, expected, transactions)
}
