// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"finboard/internal/delivery/http/response"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConnectionHandler holds dependencies for the provider connection endpoints.
type ConnectionHandler struct {
	uc     usecase.ConnectionUsecase
	logger *slog.Logger
}

// NewConnectionHandler is the constructor for ConnectionHandler, injected by Fx.
func NewConnectionHandler(uc usecase.ConnectionUsecase, logger *slog.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		uc:     uc,
		logger: logger,
	}
}

type connectInput struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
}

// Connect starts the OAuth flow and returns the provider authorization URL.
func (h *ConnectionHandler) Connect(c echo.Context) error {
	var input connectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	userID, err := resolveUserID(c, input.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.InitiateConnect(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Authorization URL created")
}

// Callback completes the OAuth flow. The provider redirects the user's
// browser here; every outcome ends in a redirect back to the frontend.
func (h *ConnectionHandler) Callback(c echo.Context) error {
	result := h.uc.HandleCallback(c.Request().Context(), &usecase.CallbackParams{
		Code:       c.QueryParam("code"),
		State:      c.QueryParam("state"),
		ErrorParam: c.QueryParam("error"),
	})

	return c.Redirect(http.StatusFound, result.RedirectURL)
}

// Status reports whether the user has an active provider connection.
func (h *ConnectionHandler) Status(c echo.Context) error {
	userID, err := resolveUserID(c, c.QueryParam("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	status, err := h.uc.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Disconnect removes the user's provider connection.
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	userID, err := resolveUserID(c, c.QueryParam("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Disconnect(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"disconnected": true}, "Provider disconnected")
}

// resolveUserID prefers the authenticated user id set by the auth middleware
// and falls back to the explicit user_id parameter when auth is not configured.
func resolveUserID(c echo.Context, explicit string) (uuid.UUID, error) {
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		return userID, nil
	}

	if explicit == "" {
		return uuid.Nil, domainerrors.ErrUserIDRequired
	}
	userID, err := uuid.Parse(explicit)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUserIDRequired.WithDetails("user_id is not a valid UUID")
	}

	return userID, nil
}
