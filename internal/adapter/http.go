// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/fin-tracker-client/internal/config"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/utils"
	"github.com/MKhiriev/fin-tracker-client/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. A 2xx body without access_token is
// reported as [ErrDecode]; the identity is read later from /auth/me.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthToken, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/auth/login")
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("login request: %w: %w", ErrNetwork, err)
	}
	if err = h.checkResponse(resp, "httpServerAdapter.Login"); err != nil {
		return models.AuthToken{}, err
	}

	return decodeAuthToken(resp, "login", false)
}

// Register implements [ServerAdapter]. The body must carry user_id as well,
// since the new session is built from it without a lookup.
func (h *httpServerAdapter) Register(ctx context.Context, registration models.Registration) (models.AuthToken, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registration).
		Post("/auth/register")
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("register request: %w: %w", ErrNetwork, err)
	}
	if err = h.checkResponse(resp, "httpServerAdapter.Register"); err != nil {
		return models.AuthToken{}, err
	}

	return decodeAuthToken(resp, "register", true)
}

// Me implements [ServerAdapter]. The identity must carry a non-empty id.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w: %w", ErrNetwork, err)
	}
	if err = h.checkResponse(resp, "httpServerAdapter.Me"); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w: %w", ErrDecode, err)
	}
	if strings.TrimSpace(user.ID) == "" {
		return models.User{}, fmt.Errorf("decode me response: %w: missing id", ErrDecode)
	}

	return user, nil
}

// OnboardingStatus implements [ServerAdapter]. A body without has_profile is
// reported as [ErrDecode].
func (h *httpServerAdapter) OnboardingStatus(ctx context.Context) (models.OnboardingStatus, error) {
	resp, err := h.authedRequest(ctx).Get("/onboarding/status")
	if err != nil {
		return models.OnboardingStatus{}, fmt.Errorf("onboarding status request: %w: %w", ErrNetwork, err)
	}
	if err = h.checkResponse(resp, "httpServerAdapter.OnboardingStatus"); err != nil {
		return models.OnboardingStatus{}, err
	}

	var status models.OnboardingStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.OnboardingStatus{}, fmt.Errorf("decode onboarding status: %w: %w", ErrDecode, err)
	}
	if status.HasProfile == nil {
		return models.OnboardingStatus{}, fmt.Errorf("decode onboarding status: %w: missing has_profile", ErrDecode)
	}

	return status, nil
}

// SubmitOnboarding implements [ServerAdapter].
func (h *httpServerAdapter) SubmitOnboarding(ctx context.Context, profile models.OnboardingProfile) (models.OnboardingResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post("/onboarding/")
	if err != nil {
		return models.OnboardingResult{}, fmt.Errorf("submit onboarding request: %w: %w", ErrNetwork, err)
	}
	if err = h.checkResponse(resp, "httpServerAdapter.SubmitOnboarding"); err != nil {
		return models.OnboardingResult{}, err
	}

	var result models.OnboardingResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.OnboardingResult{}, fmt.Errorf("decode onboarding result: %w: %w", ErrDecode, err)
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	token, ok := utils.GetBearerTokenFromContext(ctx)
	if !ok {
		token = h.Token()
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// checkResponse maps a non-2xx response to an error and logs it without
// touching the body of the request (which may hold a password).
func (h *httpServerAdapter) checkResponse(resp *resty.Response, fn string) error {
	err := mapHTTPError(resp)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("func", fn).
			Int("status", resp.StatusCode()).
			Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
			Msg("request rejected by server")
	}
	return err
}

func decodeAuthToken(resp *resty.Response, op string, requireUserID bool) (models.AuthToken, error) {
	var token models.AuthToken
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return models.AuthToken{}, fmt.Errorf("decode %s response: %w: %w", op, ErrDecode, err)
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return models.AuthToken{}, fmt.Errorf("decode %s response: %w: missing access_token", op, ErrDecode)
	}
	if requireUserID && strings.TrimSpace(token.UserID) == "" {
		return models.AuthToken{}, fmt.Errorf("decode %s response: %w: missing user_id", op, ErrDecode)
	}
	return token, nil
}
