package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finboard/internal/delivery/http/validator"
	domainerrors "finboard/internal/domain/errors"
	mockUsecase "finboard/internal/mocks/usecase"
	"finboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newConnectionHandler(t *testing.T) (*ConnectionHandler, *mockUsecase.MockConnectionUsecase) {
	uc := mockUsecase.NewMockConnectionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewConnectionHandler(uc, logger), uc
}

func TestConnectionHandler_Connect_Success(t *testing.T) {
	h, uc := newConnectionHandler(t)

	userID := uuid.New()
	uc.EXPECT().
		InitiateConnect(mock.Anything, userID).
		Return(&usecase.ConnectResult{AuthorizationURL: "https://api.sumup.com/authorize?state=abc"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/sumup/connect",
		strings.NewReader(`{"user_id":"`+userID.String()+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Connect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization_url")
	assert.Contains(t, rec.Body.String(), "state=abc")
}

func TestConnectionHandler_Connect_MissingUserID(t *testing.T) {
	h, uc := newConnectionHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/sumup/connect", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Connect(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_REQUEST", appErr.ErrorCode())
	uc.AssertNotCalled(t, "InitiateConnect", mock.Anything, mock.Anything)
}

func TestConnectionHandler_Connect_AuthenticatedUserWins(t *testing.T) {
	h, uc := newConnectionHandler(t)

	authenticatedID := uuid.New()
	uc.EXPECT().
		InitiateConnect(mock.Anything, authenticatedID).
		Return(&usecase.ConnectResult{AuthorizationURL: "https://api.sumup.com/authorize"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/sumup/connect",
		strings.NewReader(`{"user_id":"`+uuid.NewString()+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// Simulates the auth middleware having verified a JWT.
	c.Set("userID", authenticatedID)

	require.NoError(t, h.Connect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConnectionHandler_Callback_Redirects(t *testing.T) {
	h, uc := newConnectionHandler(t)

	uc.EXPECT().
		HandleCallback(mock.Anything, &usecase.CallbackParams{
			Code:  "auth-code",
			State: "state-value",
		}).
		Return(&usecase.CallbackResult{RedirectURL: "https://app.example.com/connections?sumup=connected"})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/oauth/sumup/callback?code=auth-code&state=state-value", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com/connections?sumup=connected", rec.Header().Get(echo.HeaderLocation))
}

func TestConnectionHandler_Callback_ErrorAlsoRedirects(t *testing.T) {
	h, uc := newConnectionHandler(t)

	uc.EXPECT().
		HandleCallback(mock.Anything, &usecase.CallbackParams{ErrorParam: "access_denied"}).
		Return(&usecase.CallbackResult{RedirectURL: "https://app.example.com/connections?sumup=error&message=denied"})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/oauth/sumup/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "sumup=error")
}

func TestConnectionHandler_Status(t *testing.T) {
	h, uc := newConnectionHandler(t)

	userID := uuid.New()
	uc.EXPECT().
		GetStatus(mock.Anything, userID).
		Return(&usecase.ConnectionStatus{Connected: true}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/sumup/status?user_id="+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"connected":true`)
}

func TestConnectionHandler_Disconnect(t *testing.T) {
	h, uc := newConnectionHandler(t)

	userID := uuid.New()
	uc.EXPECT().
		Disconnect(mock.Anything, userID).
		Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/sumup/connection?user_id="+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Disconnect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"disconnected":true`)
}
