package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	mockUsecase "finboard/internal/mocks/usecase"
	"finboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransactionHandler(t *testing.T) (*TransactionHandler, *mockUsecase.MockSyncUsecase) {
	uc := mockUsecase.NewMockSyncUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewTransactionHandler(uc, logger), uc
}

func TestTransactionHandler_Sync_Success(t *testing.T) {
	h, uc := newTransactionHandler(t)

	userID := uuid.New()
	uc.EXPECT().
		SyncTransactions(mock.Anything, userID).
		Return(&usecase.SyncResult{SyncedCount: 8, TotalFetched: 10}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/sumup/sync",
		strings.NewReader(`{"user_id":"`+userID.String()+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Sync(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"synced_count":8`)
	assert.Contains(t, rec.Body.String(), `"total_fetched":10`)
}

func TestTransactionHandler_Sync_NotConnected(t *testing.T) {
	h, uc := newTransactionHandler(t)

	userID := uuid.New()
	uc.EXPECT().
		SyncTransactions(mock.Anything, userID).
		Return(nil, domainerrors.ErrNotConnected)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/sumup/sync",
		strings.NewReader(`{"user_id":"`+userID.String()+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Sync(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_CONNECTED", appErr.ErrorCode())
}

func TestTransactionHandler_List_Success(t *testing.T) {
	h, uc := newTransactionHandler(t)

	userID := uuid.New()
	uc.EXPECT().
		ListTransactions(mock.Anything, userID, 25).
		Return([]*entity.Transaction{
			{
				ID:              uuid.New(),
				UserID:          userID,
				Provider:        entity.ProviderSumUp,
				TransactionID:   "tx-1",
				Amount:          12.5,
				Currency:        "EUR",
				Status:          "SUCCESSFUL",
				TransactionDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions?user_id="+userID.String()+"&limit=25", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transaction_id":"tx-1"`)
	assert.Contains(t, rec.Body.String(), `"2026-03-01T10:00:00Z"`)
}

func TestTransactionHandler_List_InvalidLimit(t *testing.T) {
	h, uc := newTransactionHandler(t)

	userID := uuid.New()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions?user_id="+userID.String()+"&limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	uc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionHandler_List_MissingUserID(t *testing.T) {
	h, _ := newTransactionHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_REQUEST", appErr.ErrorCode())
}
