package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"finboard/config"
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

// connectionServiceFixtures holds all test dependencies for connection service tests.
type connectionServiceFixtures struct {
	service        usecase.ConnectionUsecase
	credentialRepo *mockRepo.MockCredentialRepository
	tokenRepo      *mockRepo.MockProviderTokenRepository
	stateRepo      *mockRepo.MockOAuthStateRepository
	provider       *mockService.MockPaymentProviderService
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	cfg := &config.Config{
		App: config.AppConfig{
			BaseURL:     "https://api.example.com",
			FrontendURL: "https://app.example.com",
		},
	}
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	tokenRepo := mockRepo.NewMockProviderTokenRepository(t)
	stateRepo := mockRepo.NewMockOAuthStateRepository(t)
	provider := mockService.NewMockPaymentProviderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewConnectionService(cfg, credentialRepo, tokenRepo, stateRepo, provider, logger)

	return connectionServiceFixtures{
		service:        svc,
		credentialRepo: credentialRepo,
		tokenRepo:      tokenRepo,
		stateRepo:      stateRepo,
		provider:       provider,
	}
}

func testClientCredential() *entity.ProviderCredential {
	return &entity.ProviderCredential{
		Provider:     entity.ProviderSumUp,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

func TestConnectionService_InitiateConnect_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	cred := testClientCredential()

	fx.credentialRepo.EXPECT().
		GetCredential(ctx, entity.ProviderSumUp).
		Return(cred, nil)

	var issuedState string
	fx.stateRepo.EXPECT().
		CreateState(ctx, mock.AnythingOfType("*entity.OAuthState")).
		Run(func(_ context.Context, state *entity.OAuthState) {
			assert.Equal(t, userID, state.UserID)
			assert.NotEmpty(t, state.Value)
			issuedState = state.Value
		}).
		Return(nil)

	fx.provider.EXPECT().
		AuthorizationURL(cred, "https://api.example.com/oauth/sumup/callback", mock.AnythingOfType("string")).
		RunAndReturn(func(_ *entity.ProviderCredential, redirectURI, state string) string {
			assert.Equal(t, issuedState, state)

			return "https://api.sumup.com/authorize?state=" + state
		})

	result, err := fx.service.InitiateConnect(ctx, userID)
	require.NoError(t, err)
	assert.Contains(t, result.AuthorizationURL, issuedState)
}

func TestConnectionService_InitiateConnect_NoCredential(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	fx.credentialRepo.EXPECT().
		GetCredential(ctx, entity.ProviderSumUp).
		Return(nil, repository.ErrCredentialNotFound)

	result, err := fx.service.InitiateConnect(ctx, uuid.New())
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROVIDER_NOT_CONFIGURED", appErr.ErrorCode())
}

func TestConnectionService_InitiateConnect_MissingClientID(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	fx.credentialRepo.EXPECT().
		GetCredential(ctx, entity.ProviderSumUp).
		Return(&entity.ProviderCredential{Provider: entity.ProviderSumUp, APIKey: "sup_sk_key"}, nil)

	result, err := fx.service.InitiateConnect(ctx, uuid.New())
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROVIDER_NOT_CONFIGURED", appErr.ErrorCode())
}

func TestConnectionService_HandleCallback_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	cred := testClientCredential()
	expiresAt := time.Now().Add(time.Hour)

	fx.stateRepo.EXPECT().
		FindLatestByValue(ctx, "state-value").
		Return(&entity.OAuthState{ID: uuid.New(), UserID: userID, Value: "state-value"}, nil)

	fx.stateRepo.EXPECT().
		DeleteByValue(ctx, "state-value").
		Return(nil)

	fx.credentialRepo.EXPECT().
		GetCredential(ctx, entity.ProviderSumUp).
		Return(cred, nil)

	fx.provider.EXPECT().
		ExchangeCode(ctx, cred, "auth-code", "https://api.example.com/oauth/sumup/callback").
		Return(&service.TokenGrant{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			TokenType:    "Bearer",
			ExpiresAt:    &expiresAt,
			Scope:        "transactions.history payments",
		}, nil)

	fx.tokenRepo.EXPECT().
		UpsertToken(ctx, mock.AnythingOfType("*entity.ProviderToken")).
		Run(func(_ context.Context, token *entity.ProviderToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, entity.ProviderSumUp, token.Provider)
			assert.Equal(t, "access-token", token.AccessToken)
			assert.Equal(t, "refresh-token", token.RefreshToken)
		}).
		Return(nil)

	result := fx.service.HandleCallback(ctx, &usecase.CallbackParams{
		Code:  "auth-code",
		State: "state-value",
	})
	assert.Equal(t, "https://app.example.com/connections?sumup=connected", result.RedirectURL)
}

func TestConnectionService_HandleCallback_ProviderDenied(t *testing.T) {
	fx := createTestConnectionService(t)

	result := fx.service.HandleCallback(context.Background(), &usecase.CallbackParams{
		ErrorParam: "access_denied",
	})
	assert.Contains(t, result.RedirectURL, "https://app.example.com/connections?sumup=error")
	assertRedirectMessage(t, result.RedirectURL, domainerrors.ErrProviderDenied.Message())
}

func TestConnectionService_HandleCallback_MissingParams(t *testing.T) {
	fx := createTestConnectionService(t)

	result := fx.service.HandleCallback(context.Background(), &usecase.CallbackParams{
		Code: "auth-code",
	})
	assert.Contains(t, result.RedirectURL, "sumup=error")
	assertRedirectMessage(t, result.RedirectURL, domainerrors.ErrMissingCallbackParams.Message())
}

func TestConnectionService_HandleCallback_TamperedState(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	// An unknown state must short-circuit before any token exchange happens;
	// no credential lookup and no provider call are expected.
	fx.stateRepo.EXPECT().
		FindLatestByValue(ctx, "forged-state").
		Return(nil, repository.ErrStateNotFound)

	result := fx.service.HandleCallback(ctx, &usecase.CallbackParams{
		Code:  "auth-code",
		State: "forged-state",
	})
	assert.Contains(t, result.RedirectURL, "sumup=error")
	assertRedirectMessage(t, result.RedirectURL, domainerrors.ErrInvalidState.Message())
	fx.provider.AssertNotCalled(t, "ExchangeCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConnectionService_HandleCallback_ExchangeFails_StateStillConsumed(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	cred := testClientCredential()

	fx.stateRepo.EXPECT().
		FindLatestByValue(ctx, "state-value").
		Return(&entity.OAuthState{ID: uuid.New(), UserID: userID, Value: "state-value"}, nil)

	fx.stateRepo.EXPECT().
		DeleteByValue(ctx, "state-value").
		Return(nil)

	fx.credentialRepo.EXPECT().
		GetCredential(ctx, entity.ProviderSumUp).
		Return(cred, nil)

	fx.provider.EXPECT().
		ExchangeCode(ctx, cred, "bad-code", "https://api.example.com/oauth/sumup/callback").
		Return(nil, domainerrors.ErrTokenExchangeFailed)

	result := fx.service.HandleCallback(ctx, &usecase.CallbackParams{
		Code:  "bad-code",
		State: "state-value",
	})
	assert.Contains(t, result.RedirectURL, "sumup=error")
	assertRedirectMessage(t, result.RedirectURL, domainerrors.ErrTokenExchangeFailed.Message())
}

func TestConnectionService_GetStatus(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		HasToken(ctx, userID, entity.ProviderSumUp).
		Return(true, nil)

	status, err := fx.service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.Connected)
}

func TestConnectionService_GetStatus_RepoError(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		HasToken(ctx, userID, entity.ProviderSumUp).
		Return(false, errors.New("database error"))

	status, err := fx.service.GetStatus(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, status)
}

func TestConnectionService_Disconnect(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().
		DeleteTokens(ctx, userID, entity.ProviderSumUp).
		Return(nil)

	err := fx.service.Disconnect(ctx, userID)
	require.NoError(t, err)
}

// assertRedirectMessage decodes the message query parameter of an error
// redirect and compares it against the expected user-facing message.
func assertRedirectMessage(t *testing.T, redirectURL, expected string) {
	t.Helper()

	parsed, err := url.Parse(redirectURL)
	require.NoError(t, err)
	assert.Equal(t, expected, parsed.Query().Get("message"))
}
