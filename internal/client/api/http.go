package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/psemenov/raclient/internal/client/models"
	"github.com/psemenov/raclient/internal/common"
	"github.com/psemenov/raclient/internal/logging"
)

// HTTPClient is the Client implementation speaking JSON over HTTP to the
// backend. It is stateless: the bearer token is passed in by the caller on
// every request, never cached here.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	return &HTTPClient{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "api"),
	}, nil
}

// do performs a single JSON round trip and returns the status code and raw
// response body. Transport failures and request construction errors come
// back wrapped in common.ErrUpstream; callers classify non-success statuses
// per endpoint.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	full := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, full.String(), body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	c.logger.Debug(ctx, "request completed",
		"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	return resp.StatusCode, data, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}

// detail extracts the backend-provided failure reason, if any.
func detail(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return ""
	}
	return er.Detail
}

// classify wraps kind with the server detail when one was given.
func classify(kind error, body []byte) error {
	if d := detail(body); d != "" {
		return fmt.Errorf("%w: %s", kind, d)
	}
	return kind
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	// Uniform on purpose: never reveal which of email/password was wrong,
	// or whether the account exists at all.
	if !success(status) {
		return "", common.ErrInvalidCredentials
	}
	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", common.ErrUpstream)
	}
	return tr.AccessToken, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/auth/signup", "", signupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}
	if !success(status) {
		return models.User{}, classify(common.ErrUpstream, body)
	}
	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	return user, nil
}

func (c *HTTPClient) ResolveIdentity(ctx context.Context, token string) (models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/auth/me", token, nil)
	if err != nil {
		return models.User{}, err
	}
	if !success(status) {
		return models.User{}, common.ErrUnauthorized
	}
	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	return user, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/users", token, nil)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, common.ErrForbidden
	}
	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	return users, nil
}

func (c *HTTPClient) SetUserActive(ctx context.Context, token string, userID int64) (models.User, error) {
	path := fmt.Sprintf("/users/%d/active", userID)
	status, body, err := c.do(ctx, http.MethodPatch, path, token, nil)
	if err != nil {
		return models.User{}, err
	}
	if !success(status) {
		return models.User{}, classify(common.ErrActionDenied, body)
	}
	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	return user, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, token, name, email, password string, isAdmin bool) (models.User, error) {
	req := createUserRequest{Name: name, Email: email, Password: password, IsAdmin: isAdmin}
	status, body, err := c.do(ctx, http.MethodPost, "/users", token, req)
	if err != nil {
		return models.User{}, err
	}
	if !success(status) {
		return models.User{}, classify(common.ErrActionDenied, body)
	}
	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	return user, nil
}

func (c *HTTPClient) SubmitQuestion(ctx context.Context, token, question string) (models.Answer, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/rag/query", token, queryRequest{Question: question})
	if err != nil {
		return models.Answer{}, err
	}
	if !success(status) {
		return models.Answer{}, classify(common.ErrUpstream, body)
	}
	var qr queryResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return models.Answer{}, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	return qr.toModel(), nil
}

func (c *HTTPClient) RequestMagicLink(ctx context.Context, email string) error {
	status, body, err := c.do(ctx, http.MethodPost, "/auth/magic/request", "", magicLinkRequest{Email: email})
	if err != nil {
		return err
	}
	if !success(status) {
		return classify(common.ErrLinkRequestFailed, body)
	}
	return nil
}

func (c *HTTPClient) VerifyMagicLink(ctx context.Context, code string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/auth/magic/verify", "", magicVerifyRequest{Token: code})
	if err != nil {
		return "", err
	}
	if !success(status) {
		return "", classify(common.ErrVerificationFailed, body)
	}
	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", common.ErrUpstream)
	}
	return tr.AccessToken, nil
}
