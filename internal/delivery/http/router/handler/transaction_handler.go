package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"finboard/internal/delivery/http/response"
	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler holds dependencies for sync and transaction listing.
type TransactionHandler struct {
	uc     usecase.SyncUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.SyncUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

type syncInput struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
}

// syncOutput mirrors the sync summary plus an explicit success flag.
type syncOutput struct {
	Success      bool `json:"success"`
	SyncedCount  int  `json:"synced_count"`
	TotalFetched int  `json:"total_fetched"`
}

// transactionItem is the wire representation of one stored transaction.
type transactionItem struct {
	ID              string  `json:"id"`
	TransactionID   string  `json:"transaction_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	Description     string  `json:"description,omitempty"`
	MerchantName    string  `json:"merchant_name,omitempty"`
	TransactionDate string  `json:"transaction_date"`
}

// Sync pulls the user's transaction history from the provider.
func (h *TransactionHandler) Sync(c echo.Context) error {
	var input syncInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	userID, err := resolveUserID(c, input.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.SyncTransactions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, syncOutput{
		Success:      true,
		SyncedCount:  result.SyncedCount,
		TotalFetched: result.TotalFetched,
	}, "Synchronization finished")
}

// List returns the user's stored transactions, newest first.
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := resolveUserID(c, c.QueryParam("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	limit := 0
	if rawLimit := c.QueryParam("limit"); rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer"))
		}
	}

	transactions, err := h.uc.ListTransactions(c.Request().Context(), userID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]transactionItem, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, toTransactionItem(tx))
	}

	return response.Success(c, http.StatusOK, items, "")
}

func toTransactionItem(tx *entity.Transaction) transactionItem {
	return transactionItem{
		ID:              tx.ID.String(),
		TransactionID:   tx.TransactionID,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		Status:          tx.Status,
		Description:     tx.Description,
		MerchantName:    tx.MerchantName,
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
	}
}
