package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/drazenc/fittrack/internal/telemetry/tracing"
)

// Client talks to the identity provider. The provider owns user
// credentials and tokens, we only store profile data locally.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*TokenInfo, error)
	VerifyToken(ctx context.Context, idToken string) (uid string, err error)
	CreateUser(ctx context.Context, email, password string) (uid string, err error)
	DeleteUser(ctx context.Context, idToken string) error
}

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type TokenInfo struct {
	UID       string `json:"localId"`
	IDToken   string `json:"idToken"`
	ExpiresIn string `json:"expiresIn"`
}

// HTTPClient implements Client against an identity-toolkit style
// REST API (Firebase Auth or its emulator).
type HTTPClient struct {
	baseURL    string // e.g. https://identitytoolkit.googleapis.com
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey string, httpClient *http.Client) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (_ *TokenInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.signIn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	tokenInfo := &TokenInfo{}
	if err := json.Unmarshal(respBytes, tokenInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sign in response: %w", err)
	}
	return tokenInfo, nil
}

func (c *HTTPClient) VerifyToken(ctx context.Context, idToken string) (uid string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.verifyToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.post(ctx, "accounts:lookup", map[string]any{
		"idToken": idToken,
	})
	if err != nil {
		return "", err
	}

	var lookupResp struct {
		Users []struct {
			LocalID string `json:"localId"`
		} `json:"users"`
	}
	if err := json.Unmarshal(respBytes, &lookupResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal lookup response: %w", err)
	}
	if len(lookupResp.Users) == 0 {
		return "", ErrInvalidToken
	}
	return lookupResp.Users[0].LocalID, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, email, password string) (uid string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.createUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	tokenInfo := &TokenInfo{}
	if err := json.Unmarshal(respBytes, tokenInfo); err != nil {
		return "", fmt.Errorf("failed to unmarshal sign up response: %w", err)
	}
	return tokenInfo.UID, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, idToken string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.deleteUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = c.post(ctx, "accounts:delete", map[string]any{
		"idToken": idToken,
	})
	return err
}

func (c *HTTPClient) post(ctx context.Context, action string, payload map[string]any) ([]byte, error) {
	reqBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", action, err)
	}

	url := fmt.Sprintf("%s/v1/%s?key=%s", c.baseURL, action, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response bytes: %w", action, err)
	}

	if resp.StatusCode >= 400 {
		return nil, apiError(action, resp.StatusCode, respBytes)
	}
	return respBytes, nil
}

func apiError(action string, statusCode int, respBytes []byte) error {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &errResp); err != nil {
		log.Tracef("identity %s error response not json: %s", action, err)
		return fmt.Errorf("identity %s failed with status %d", action, statusCode)
	}

	switch errResp.Error.Message {
	case "EMAIL_EXISTS":
		return ErrUserExists
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return ErrInvalidCredentials
	case "INVALID_ID_TOKEN", "USER_NOT_FOUND", "TOKEN_EXPIRED":
		return ErrInvalidToken
	}
	return fmt.Errorf("identity %s failed with status %d: %s", action, statusCode, errResp.Error.Message)
}
