// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/fin-tracker-client/internal/adapter"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/store"
	"github.com/MKhiriev/fin-tracker-client/internal/utils"
	"github.com/MKhiriev/fin-tracker-client/internal/validators"
	"github.com/MKhiriev/fin-tracker-client/models"
)

// Authority is the single owner of the client session. It is created once in
// main and injected into the UI; all mutations go through its methods.
//
// The persisted token is touched only by Bootstrap (read, and clear on a
// failed lookup), Login, Register, Logout and HandleUnauthorized.
type Authority struct {
	adapter   adapter.ServerAdapter
	tokens    store.TokenStorage
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time

	mu          sync.Mutex
	session     Session
	subscribers map[int]chan Session
	nextSubID   int

	// authMu serialises writes of the token, in the slot and on the adapter,
	// with the sign-in generation. It is always taken before mu.
	authMu  sync.Mutex
	authGen uint64

	// bootDone is created by the first Bootstrap call and closed when it
	// finishes; bootResult is valid once it is closed.
	bootDone   chan struct{}
	bootResult Session
}

// NewAuthority returns an Authority in the Uninitialized state.
func NewAuthority(serverAdapter adapter.ServerAdapter, tokens store.TokenStorage, logger *logger.Logger) *Authority {
	return &Authority{
		adapter:     serverAdapter,
		tokens:      tokens,
		validator:   validators.NewCredentialsValidator(),
		logger:      logger,
		now:         time.Now,
		subscribers: make(map[int]chan Session),
	}
}

// Snapshot returns the current session.
func (a *Authority) Snapshot() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.clone()
}

// State returns the current lifecycle state.
func (a *Authority) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.State()
}

// Bootstrap restores the session from the persisted token. Only the first
// call does any work; calls made while it runs wait for it and every call
// returns its result. The returned error is non-nil only when ctx ends while
// waiting for the first call.
//
// Bootstrap never fails the session into a stuck state: if the persisted
// token is missing or the identity lookup fails for any reason, it ends
// Anonymous with the persisted token removed.
func (a *Authority) Bootstrap(ctx context.Context) (Session, error) {
	a.mu.Lock()
	if a.bootDone != nil {
		done := a.bootDone
		a.mu.Unlock()

		select {
		case <-done:
			a.mu.Lock()
			defer a.mu.Unlock()
			return a.bootResult.clone(), nil
		case <-ctx.Done():
			return a.Snapshot(), ctx.Err()
		}
	}

	done := make(chan struct{})
	a.bootDone = done
	a.publishLocked(initializingSession())
	a.mu.Unlock()

	ctx, log := a.traced(ctx)

	result := anonymousSession()
	defer func() {
		a.mu.Lock()
		a.bootResult = result
		a.publishLocked(result)
		a.mu.Unlock()
		close(done)

		log.Info().
			Str("func", "Authority.Bootstrap").
			Stringer("state", result.State()).
			Msg("session bootstrap finished")
	}()

	result = a.restore(ctx, log)
	return result.clone(), nil
}

func (a *Authority) restore(ctx context.Context, log *logger.Logger) Session {
	token, err := a.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			log.Err(err).Str("func", "Authority.restore").Msg("failed to read persisted token")
		}
		return anonymousSession()
	}

	a.logTokenClaims(log, token)
	a.adapter.SetToken(token)

	user, profile, err := a.lookup(ctx, token)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "Authority.restore").
			Msg("persisted token rejected, discarding it")
		a.discardToken(ctx, log)
		return anonymousSession()
	}

	return authenticatedSession(token, user, profile)
}

// Login signs the user in and reports whether their profile is complete.
//
// Rejected credentials leave the session untouched and persist nothing. If
// the token is issued but the identity lookup that follows fails, the
// session is cleared and a generic [ErrLoginFailed] is returned.
//
// Login and Register are refused with [ErrBusy] until Bootstrap has settled
// the session. When sign-ins overlap, the one started last wins; an earlier
// one that finishes after it is dropped with [ErrLoginFailed].
func (a *Authority) Login(ctx context.Context, email, password string) (bool, error) {
	if a.State().IsPending() {
		return false, ErrBusy
	}

	ctx, log := a.traced(ctx)

	credentials := models.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return false, mapLoginError(err)
	}

	gen := a.beginSignIn()

	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		log.Info().Err(err).Str("func", "Authority.Login").Msg("login rejected")
		return false, mapLoginError(err)
	}

	if err = a.attach(ctx, gen, token.AccessToken); err != nil {
		log.Err(err).Str("func", "Authority.Login").Msg("failed to attach token")
		return false, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	user, profile, err := a.lookup(ctx, token.AccessToken)
	if err != nil {
		log.Warn().Err(err).Str("func", "Authority.Login").Msg("identity lookup after login failed")
		a.abandon(ctx, gen, log)
		// the cause may be ErrSessionExpired, which must not reach the form
		return false, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	next := authenticatedSession(token.AccessToken, user, profile)
	if !a.commit(gen, next) {
		log.Info().Str("func", "Authority.Login").Msg("sign-in superseded, result dropped")
		return false, fmt.Errorf("%w: %w", ErrLoginFailed, errSuperseded)
	}

	log.Info().
		Str("func", "Authority.Login").
		Str("user_id", user.ID).
		Stringer("state", next.State()).
		Msg("user signed in")

	return profile == ProfileComplete, nil
}

// Register creates an account and signs it in. The new session is always
// AuthenticatedIncomplete: the profile status endpoint is not queried.
//
// CurrentUser is assembled from the register response (user_id, username)
// and the submitted e-mail, so it carries no creation timestamp.
func (a *Authority) Register(ctx context.Context, email, username, password string) error {
	if a.State().IsPending() {
		return ErrBusy
	}

	ctx, log := a.traced(ctx)

	registration := models.Registration{
		Email:    strings.TrimSpace(email),
		Username: strings.TrimSpace(username),
		Password: password,
	}
	if err := a.validator.Validate(ctx, registration); err != nil {
		return mapRegisterError(err)
	}

	gen := a.beginSignIn()

	token, err := a.adapter.Register(ctx, registration)
	if err != nil {
		log.Info().Err(err).Str("func", "Authority.Register").Msg("registration rejected")
		return mapRegisterError(err)
	}

	if err = a.attach(ctx, gen, token.AccessToken); err != nil {
		log.Err(err).Str("func", "Authority.Register").Msg("failed to attach token")
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	user := models.User{
		ID:       token.UserID,
		Email:    registration.Email,
		Username: token.Username,
		IsActive: true,
	}
	if user.Username == "" {
		user.Username = registration.Username
	}

	next := authenticatedSession(token.AccessToken, user, ProfileIncomplete)
	if !a.commit(gen, next) {
		log.Info().Str("func", "Authority.Register").Msg("sign-in superseded, result dropped")
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, errSuperseded)
	}

	log.Info().
		Str("func", "Authority.Register").
		Str("user_id", user.ID).
		Msg("account registered")

	return nil
}

// Logout clears the persisted token and the in-memory session without any
// network call. It is a no-op on an already empty session and returns
// [ErrBusy] without side effects while Bootstrap runs.
func (a *Authority) Logout(ctx context.Context) error {
	if a.State() == Initializing {
		return ErrBusy
	}

	ctx, log := a.traced(ctx)
	a.clear(ctx, log)

	log.Info().Str("func", "Authority.Logout").Msg("user signed out")
	return nil
}

// MarkProfileComplete moves AuthenticatedIncomplete to AuthenticatedComplete.
// It does nothing in any other state.
func (a *Authority) MarkProfileComplete() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.State() != AuthenticatedIncomplete {
		return
	}

	next := a.session.clone()
	next.HasCompletedProfile = ProfileComplete
	a.publishLocked(next)
}

// HandleUnauthorized is called when an authenticated request made on behalf
// of the current session is rejected with 401. It clears the session; outside
// the authenticated states it does nothing.
func (a *Authority) HandleUnauthorized(ctx context.Context) {
	if !a.State().IsAuthenticated() {
		return
	}

	ctx, log := a.traced(ctx)
	log.Warn().Str("func", "Authority.HandleUnauthorized").Msg("token rejected by server, signing out")
	a.clear(ctx, log)
}

// lookup resolves the identity and then the profile completeness of token.
// Both reads carry token itself, whatever the adapter holds meanwhile.
// Either read failing fails the whole lookup.
func (a *Authority) lookup(ctx context.Context, token string) (models.User, ProfileStatus, error) {
	ctx = utils.WithBearerToken(ctx, token)

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.User{}, ProfileUnknown, fmt.Errorf("identity lookup: %w", mapLookupError(err))
	}

	status, err := a.adapter.OnboardingStatus(ctx)
	if err != nil {
		return models.User{}, ProfileUnknown, fmt.Errorf("profile lookup: %w", mapLookupError(err))
	}
	if status.HasProfile == nil {
		return models.User{}, ProfileUnknown, fmt.Errorf("profile lookup: %w", ErrNetworkUnavailable)
	}

	return user, profileStatusOf(*status.HasProfile), nil
}

// beginSignIn starts a sign-in and returns its generation. Any later sign-in
// or sign-out makes it stale.
func (a *Authority) beginSignIn() uint64 {
	a.authMu.Lock()
	defer a.authMu.Unlock()

	a.authGen++
	return a.authGen
}

// attach persists token and attaches it to the adapter, unless the sign-in
// gen has been superseded.
func (a *Authority) attach(ctx context.Context, gen uint64, token string) error {
	a.authMu.Lock()
	defer a.authMu.Unlock()

	if gen != a.authGen {
		return errSuperseded
	}
	if err := a.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	a.adapter.SetToken(token)
	return nil
}

// commit publishes next if gen is still the latest sign-in.
func (a *Authority) commit(gen uint64, next Session) bool {
	a.authMu.Lock()
	defer a.authMu.Unlock()

	if gen != a.authGen {
		return false
	}

	a.mu.Lock()
	a.publishLocked(next)
	a.mu.Unlock()
	return true
}

// abandon clears the token attached by sign-in gen. A newer sign-in owns the
// token by then and is left alone.
func (a *Authority) abandon(ctx context.Context, gen uint64, log *logger.Logger) {
	a.authMu.Lock()
	defer a.authMu.Unlock()

	if gen != a.authGen {
		return
	}
	a.clearLocked(ctx, log)
}

// clear detaches and removes the token and publishes the anonymous session.
// Sign-ins still in flight become stale.
func (a *Authority) clear(ctx context.Context, log *logger.Logger) {
	a.authMu.Lock()
	defer a.authMu.Unlock()

	a.authGen++
	a.clearLocked(ctx, log)
}

func (a *Authority) clearLocked(ctx context.Context, log *logger.Logger) {
	a.discardToken(ctx, log)

	a.mu.Lock()
	a.publishLocked(anonymousSession())
	a.mu.Unlock()
}

func (a *Authority) discardToken(ctx context.Context, log *logger.Logger) {
	a.adapter.SetToken("")

	// the slot must be emptied even when the caller's context is done
	if err := a.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		log.Err(err).Str("func", "Authority.discardToken").Msg("failed to clear persisted token")
	}
}

// traced returns ctx carrying a trace id (reusing one already present) and
// a logger bound to it.
func (a *Authority) traced(ctx context.Context) (context.Context, *logger.Logger) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = utils.NewTraceID()
		ctx = utils.WithTraceID(ctx, traceID)
	}
	return a.logger.WithTraceID(ctx, traceID)
}

// logTokenClaims logs the unverified subject and expiry of a JWT token.
// Opaque tokens are accepted as they are.
func (a *Authority) logTokenClaims(log *logger.Logger, token string) {
	claims, err := utils.InspectToken(token)
	if err != nil {
		log.Debug().Str("func", "Authority.logTokenClaims").Msg("persisted token is opaque")
		return
	}

	log.Debug().
		Str("func", "Authority.logTokenClaims").
		Str("subject", claims.Subject).
		Time("expires_at", claims.ExpiresAt).
		Bool("expired", claims.Expired(a.now())).
		Msg("persisted token claims")
}
