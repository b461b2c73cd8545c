// Package sumup implements the outbound client for SumUp's OAuth and
// transaction APIs.
package sumup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finboard/config"
	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	authorizePath  = "/authorize"
	tokenPath      = "/token"
	profilePath    = "/v0.1/me"
	historyPathFmt = "/v0.1/merchants/%s/transactions/history"

	// Scope granting read access to payment and transaction history.
	oauthScope = "transactions.history payments"

	defaultTokenType = "Bearer"
)

// Client talks to the SumUp API. One instance is shared across requests;
// it holds no per-user state.
type Client struct {
	authBaseURL string
	apiBaseURL  string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient is the constructor for the SumUp client, injected by Fx.
func NewClient(cfg *config.Config, logger *slog.Logger) service.PaymentProviderService {
	return &Client{
		authBaseURL: strings.TrimRight(cfg.SumUp.AuthBaseURL, "/"),
		apiBaseURL:  strings.TrimRight(cfg.SumUp.APIBaseURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.SumUp.HTTPTimeout},
		logger:      logger,
	}
}

// AuthorizationURL builds the provider authorization URL. No network call is
// made; the state value must already be persisted by the caller.
func (c *Client) AuthorizationURL(cred *entity.ProviderCredential, redirectURI, state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", cred.ClientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", oauthScope)
	params.Set("state", state)

	// SumUp expects %20 between scope tokens; url.Values encodes spaces as
	// '+', which the authorize endpoint does not decode back.
	query := strings.ReplaceAll(params.Encode(), "+", "%20")

	return c.authBaseURL + authorizePath + "?" + query
}

// tokenResponse mirrors the provider's token endpoint JSON.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// ExchangeCode swaps an authorization code for an access token with a single
// POST to the token endpoint. Credentials are presented as HTTP Basic auth of
// (client_id, client_secret); when only an API key is configured it is sent
// as a bearer credential instead.
func (c *Client) ExchangeCode(ctx context.Context, cred *entity.ProviderCredential, code, redirectURI string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authBaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if cred.HasClientPair() {
		req.SetBasicAuth(cred.ClientID, cred.ClientSecret)
	} else {
		req.Header.Set("Authorization", defaultTokenType+" "+cred.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("SumUp token exchange failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, domainerrors.ErrTokenExchangeFailed.WithDetails(
			fmt.Sprintf("token endpoint returned %d: %s", resp.StatusCode, string(body)))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, domainerrors.ErrTokenParseFailed.WithDetails(err.Error())
	}
	if token.AccessToken == "" {
		return nil, domainerrors.ErrTokenParseFailed.WithDetails("token response contained no access_token")
	}

	grant := &service.TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Scope:        token.Scope,
	}
	if grant.TokenType == "" {
		grant.TokenType = defaultTokenType
	}
	if token.ExpiresIn > 0 {
		expiresAt := time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
		grant.ExpiresAt = &expiresAt
	}

	return grant, nil
}

// FetchMerchantCode resolves the merchant identifier via the profile endpoint.
func (c *Client) FetchMerchantCode(ctx context.Context, token *entity.ProviderToken) (string, error) {
	body, err := c.getJSON(ctx, c.apiBaseURL+profilePath, token)
	if err != nil {
		return "", err
	}

	var profile map[string]any
	if err := json.Unmarshal(body, &profile); err != nil {
		return "", domainerrors.ErrUpstreamSchema.WithDetails("profile response is not a JSON object")
	}

	code, ok := extractMerchantCode(profile)
	if !ok {
		c.logger.Error("SumUp profile response carried no merchant code")

		return "", domainerrors.ErrUpstreamSchema.WithDetails("merchant code not found in profile response")
	}

	return code, nil
}

// FetchTransactionHistory fetches and unwraps the merchant's transaction list.
func (c *Client) FetchTransactionHistory(ctx context.Context, token *entity.ProviderToken, merchantCode string) ([]map[string]any, error) {
	endpoint := c.apiBaseURL + fmt.Sprintf(historyPathFmt, url.PathEscape(merchantCode))

	body, err := c.getJSON(ctx, endpoint, token)
	if err != nil {
		return nil, err
	}

	items, ok := unwrapTransactionList(body)
	if !ok {
		return nil, domainerrors.ErrUpstreamSchema.WithDetails("transaction history response matched no known shape")
	}

	return items, nil
}

// NormalizeTransaction maps one raw upstream object into a ProviderTransaction
// by applying the ordered field-fallback rules. A record missing a usable id,
// amount or timestamp is rejected; the caller decides whether to skip it.
func (c *Client) NormalizeTransaction(raw map[string]any) (*service.ProviderTransaction, error) {
	id, ok := firstString(raw, transactionIDKeys)
	if !ok {
		return nil, errors.New("transaction has no usable identifier")
	}

	amount, ok := firstNumber(raw, amountKeys)
	if !ok {
		return nil, errors.Errorf("transaction %s has no parsable amount", id)
	}

	timestamp, ok := firstTimestamp(raw, timestampKeys)
	if !ok {
		return nil, errors.Errorf("transaction %s has no parsable timestamp", id)
	}

	tx := &service.ProviderTransaction{
		TransactionID: id,
		Amount:        amount,
		Currency:      defaultCurrency,
		Status:        defaultStatus,
		Timestamp:     timestamp,
		Raw:           raw,
	}
	if currency, ok := firstString(raw, currencyKeys); ok {
		tx.Currency = currency
	}
	if status, ok := firstString(raw, statusKeys); ok {
		tx.Status = status
	}
	if description, ok := firstString(raw, descriptionKeys); ok {
		tx.Description = description
	}
	if merchant, ok := firstString(raw, merchantNameKeys); ok {
		tx.MerchantName = merchant
	}

	return tx, nil
}

// getJSON performs an authenticated GET and returns the body on 2xx.
func (c *Client) getJSON(ctx context.Context, endpoint string, token *entity.ProviderToken) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = defaultTokenType
	}
	req.Header.Set("Authorization", tokenType+" "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("SumUp API call failed",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return nil, domainerrors.ErrUpstreamFailed.WithDetails(
			fmt.Sprintf("%s returned %d: %s", endpoint, resp.StatusCode, string(body)))
	}

	return body, nil
}
