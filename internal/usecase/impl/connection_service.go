package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"finboard/config"
	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	"finboard/internal/errors"
	"finboard/internal/usecase"

	"github.com/google/uuid"
)

type connectionService struct {
	cfg            *config.Config
	credentialRepo repository.CredentialRepository
	tokenRepo      repository.ProviderTokenRepository
	stateRepo      repository.OAuthStateRepository
	provider       service.PaymentProviderService
	logger         *slog.Logger
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(
	cfg *config.Config,
	credentialRepo repository.CredentialRepository,
	tokenRepo repository.ProviderTokenRepository,
	stateRepo repository.OAuthStateRepository,
	provider service.PaymentProviderService,
	logger *slog.Logger,
) usecase.ConnectionUsecase {
	return &connectionService{
		cfg:            cfg,
		credentialRepo: credentialRepo,
		tokenRepo:      tokenRepo,
		stateRepo:      stateRepo,
		provider:       provider,
		logger:         logger,
	}
}

// InitiateConnect starts the OAuth flow for a user.
func (srv *connectionService) InitiateConnect(ctx context.Context, userID uuid.UUID) (*usecase.ConnectResult, error) {
	cred, err := srv.loadCredential(ctx)
	if err != nil {
		return nil, err
	}
	if cred.ClientID == "" {
		return nil, domainerrors.ErrProviderNotConfigured.WithDetails("credential has no client id")
	}

	state := &entity.OAuthState{
		ID:     uuid.New(),
		UserID: userID,
		Value:  uuid.NewString(),
	}
	if err := srv.stateRepo.CreateState(ctx, state); err != nil {
		return nil, errors.Wrap(err, "failed to create oauth state")
	}

	authURL := srv.provider.AuthorizationURL(cred, srv.cfg.RedirectURI(), state.Value)
	srv.logger.Info("oauth flow initiated", "userID", userID)

	return &usecase.ConnectResult{AuthorizationURL: authURL}, nil
}

// HandleCallback completes the OAuth flow. Every outcome ends in a frontend
// redirect; nothing here returns an error to the browser directly.
func (srv *connectionService) HandleCallback(ctx context.Context, params *usecase.CallbackParams) *usecase.CallbackResult {
	if params.ErrorParam != "" {
		srv.logger.Warn("provider denied authorization", "error", params.ErrorParam)

		return srv.errorRedirect(domainerrors.ErrProviderDenied.Message())
	}
	if params.Code == "" || params.State == "" {
		return srv.errorRedirect(domainerrors.ErrMissingCallbackParams.Message())
	}

	state, err := srv.stateRepo.FindLatestByValue(ctx, params.State)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			srv.logger.Warn("callback with unknown state value")

			return srv.errorRedirect(domainerrors.ErrInvalidState.Message())
		}
		srv.logger.Error("failed to look up oauth state", "error", err)

		return srv.errorRedirect(domainerrors.ErrInternalError.Message())
	}

	// Consume the state regardless of how the rest of the exchange goes.
	defer func() {
		if err := srv.stateRepo.DeleteByValue(ctx, params.State); err != nil {
			srv.logger.Warn("failed to delete consumed oauth state", "error", err)
		}
	}()

	cred, err := srv.loadCredential(ctx)
	if err != nil {
		srv.logger.Error("failed to load provider credential", "error", err)

		return srv.errorRedirect(domainerrors.ErrProviderNotConfigured.Message())
	}

	grant, err := srv.provider.ExchangeCode(ctx, cred, params.Code, srv.cfg.RedirectURI())
	if err != nil {
		srv.logger.Error("token exchange failed", "userID", state.UserID, "error", err)

		return srv.errorRedirect(callbackErrorMessage(err))
	}

	token := &entity.ProviderToken{
		ID:           uuid.New(),
		UserID:       state.UserID,
		Provider:     entity.ProviderSumUp,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		TokenType:    grant.TokenType,
		ExpiresAt:    grant.ExpiresAt,
		Scope:        grant.Scope,
	}
	if err := srv.tokenRepo.UpsertToken(ctx, token); err != nil {
		srv.logger.Error("failed to store provider token", "userID", state.UserID, "error", err)

		return srv.errorRedirect(domainerrors.ErrInternalError.Message())
	}

	srv.logger.Info("provider connected", "userID", state.UserID)

	return srv.successRedirect()
}

// GetStatus reports whether the user currently has a provider connection.
func (srv *connectionService) GetStatus(ctx context.Context, userID uuid.UUID) (*usecase.ConnectionStatus, error) {
	connected, err := srv.tokenRepo.HasToken(ctx, userID, entity.ProviderSumUp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check provider token")
	}

	return &usecase.ConnectionStatus{Connected: connected}, nil
}

// Disconnect removes every stored token for the user.
func (srv *connectionService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	if err := srv.tokenRepo.DeleteTokens(ctx, userID, entity.ProviderSumUp); err != nil {
		return errors.Wrap(err, "failed to delete provider tokens")
	}
	srv.logger.Info("provider disconnected", "userID", userID)

	return nil
}

func (srv *connectionService) loadCredential(ctx context.Context) (*entity.ProviderCredential, error) {
	cred, err := srv.credentialRepo.GetCredential(ctx, entity.ProviderSumUp)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrProviderNotConfigured
		}

		return nil, errors.Wrap(err, "failed to load provider credential")
	}

	return cred, nil
}

func (srv *connectionService) successRedirect() *usecase.CallbackResult {
	return &usecase.CallbackResult{
		RedirectURL: srv.frontendBase() + "/connections?sumup=connected",
	}
}

func (srv *connectionService) errorRedirect(message string) *usecase.CallbackResult {
	return &usecase.CallbackResult{
		RedirectURL: srv.frontendBase() + "/connections?sumup=error&message=" + url.QueryEscape(message),
	}
}

func (srv *connectionService) frontendBase() string {
	return strings.TrimRight(srv.cfg.App.FrontendURL, "/")
}

// callbackErrorMessage picks the user-facing message for a failed exchange.
// AppErrors carry their own message; anything else collapses to the generic one.
func callbackErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return domainerrors.ErrTokenExchangeFailed.Message()
}
