// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/fin-tracker-client/internal/guard"
	"github.com/MKhiriev/fin-tracker-client/internal/logger"
	"github.com/MKhiriev/fin-tracker-client/internal/service"
	"github.com/MKhiriev/fin-tracker-client/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// sessionAware is implemented by pages that render the signed-in user.
type sessionAware interface {
	SetSession(s session.Session)
}

// RootModel is the TUI router:
//  1. follows the session stream and lets the route guard pick the screen
//  2. handles global ctrl+c quit and the build info window
//  3. handles NavigateTo and logout requests
//  4. delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	auth    SessionAuthority
	appInfo service.AppInfoService
	logger  *logger.Logger

	updates   <-chan session.Session
	navigator *guard.Navigator
	pages     map[guard.Screen]tea.Model
	loading   *LoadingModel

	snapshot session.Session
	screen   guard.Screen
	deferred bool

	showBuildInfo bool
	showConfirm   bool
	confirm       confirmModel
	showError     bool
	errorOverlay  errorOverlayModel

	quitByUser bool
}

// NewRootModel builds the router over pages. updates is the subscription to
// the session authority; the model keeps reading it until the program ends.
func NewRootModel(
	ctx context.Context,
	auth SessionAuthority,
	appInfo service.AppInfoService,
	pages map[guard.Screen]tea.Model,
	updates <-chan session.Session,
	logger *logger.Logger,
) RootModel {
	r := RootModel{
		ctx:       ctx,
		auth:      auth,
		appInfo:   appInfo,
		logger:    logger,
		updates:   updates,
		navigator: guard.NewNavigator(),
		pages:     pages,
		loading:   NewLoadingModel(),
		snapshot:  auth.Snapshot(),
		screen:    guard.ScreenRoot,
		deferred:  true,
	}

	r.setSession(r.snapshot)
	r, _ = r.apply(r.navigator.Navigate(r.snapshot.State(), guard.ScreenRoot))
	return r
}

// Init starts the session bootstrap and begins following the session stream.
func (r RootModel) Init() tea.Cmd {
	return tea.Batch(
		r.waitForSession(),
		r.cmdBootstrap(),
		r.loading.Init(),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.updateKey(msg)

	case sessionChangedMsg:
		r.snapshot = msg.session
		r.setSession(msg.session)

		var cmd tea.Cmd
		r, cmd = r.apply(r.navigator.Reconcile(msg.session.State()))
		return r, tea.Batch(cmd, r.waitForSession())

	case subscriptionClosedMsg:
		return r, nil

	case bootstrapDoneMsg:
		if msg.err != nil {
			r.logger.Err(msg.err).Str("func", "RootModel.Update").Msg("session bootstrap interrupted")
		}
		return r, nil

	case NavigateTo:
		r.showBuildInfo = false
		next, cmd := r.apply(r.navigator.Navigate(r.snapshot.State(), msg.Screen))
		return next, cmd

	case logoutRequestMsg:
		r.showConfirm = true
		r.confirm = confirmModel{question: "Выйти из аккаунта?"}
		return r, nil

	case logoutDoneMsg:
		if msg.err != nil {
			r.raise(msg.err)
		}
		return r, nil

	// Results are owned by the page that started the operation, which may
	// no longer be shown once the session changed.
	case loginResultMsg:
		r.logger.Debug().
			Str("func", "RootModel.Update").
			Bool("profile_complete", msg.profileComplete).
			Bool("ok", msg.err == nil).
			Msg("login finished")
		return r.updatePage(guard.ScreenLogin, msg)
	case registerResultMsg:
		return r.updatePage(guard.ScreenRegister, msg)
	case onboardingSubmittedMsg:
		return r.updatePage(guard.ScreenOnboarding, msg)

	case spinner.TickMsg:
		if !r.showsLoading() {
			return r, nil
		}
		_, cmd := r.loading.Update(msg)
		return r, cmd
	}

	if r.showsLoading() {
		return r, nil
	}
	return r.updatePage(r.screen, msg)
}

func (r RootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		r.quitByUser = true
		return r, tea.Quit
	}

	switch {
	case r.showError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			r.showError = false
			r.errorOverlay.message = ""
		}
		return r, nil

	case r.showConfirm:
		if key.Matches(msg, keys.yes) {
			r.showConfirm = false
			return r, r.cmdLogout()
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			r.showConfirm = false
		}
		return r, nil

	case r.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			r.showBuildInfo = false
		}
		return r, nil

	case r.showsLoading():
		return r, nil
	}

	if key.Matches(msg, keys.version) && r.acceptsHotKeys() {
		r.showBuildInfo = true
		return r, nil
	}

	return r.updatePage(r.screen, msg)
}

func (r RootModel) updatePage(screen guard.Screen, msg tea.Msg) (tea.Model, tea.Cmd) {
	p, ok := r.pages[screen]
	if !ok {
		return r, nil
	}

	updated, cmd := p.Update(msg)
	r.pages[screen] = updated
	return r, cmd
}

// apply switches to the screen a navigation attempt ended on.
func (r RootModel) apply(outcome guard.Outcome, err error) (RootModel, tea.Cmd) {
	if err != nil {
		r.logger.Err(err).
			Str("func", "RootModel.apply").
			Stringer("state", r.snapshot.State()).
			Msg("navigation failed")
		r.raise(err)
	}

	wasLoading := r.showsLoading()
	previous := r.screen

	r.screen = outcome.Screen
	r.deferred = outcome.Deferred

	if r.showsLoading() {
		if wasLoading {
			return r, nil
		}
		return r, r.loading.Init()
	}

	if previous == r.screen && !wasLoading {
		return r, nil
	}

	r.logger.Debug().
		Str("func", "RootModel.apply").
		Str("screen", string(r.screen)).
		Stringer("state", r.snapshot.State()).
		Msg("screen changed")

	if p, ok := r.pages[r.screen]; ok {
		return r, p.Init()
	}
	return r, nil
}

func (r *RootModel) raise(err error) {
	r.showError = true
	r.errorOverlay = errorOverlayModel{message: humanizeError(err)}
}

func (r RootModel) setSession(s session.Session) {
	for _, p := range r.pages {
		if aware, ok := p.(sessionAware); ok {
			aware.SetSession(s)
		}
	}
}

func (r RootModel) showsLoading() bool {
	if r.deferred {
		return true
	}
	_, ok := r.pages[r.screen]
	return !ok
}

// acceptsHotKeys is false on screens whose keys go to text inputs.
func (r RootModel) acceptsHotKeys() bool {
	return r.screen == guard.ScreenDashboard || r.screen == guard.ScreenProfile
}

func (r RootModel) View() string {
	var view string
	switch {
	case r.showBuildInfo:
		view = renderBuildInfoWindow(r.appInfo.GetAppVersion(r.ctx), r.appInfo.BuildInfo())
	case r.showsLoading():
		view = r.loading.View()
	default:
		view = r.pages[r.screen].View()
	}

	switch {
	case r.showError:
		view += "\n\n" + r.errorOverlay.View()
	case r.showConfirm:
		view += "\n\n" + r.confirm.View()
	}
	return view
}

// waitForSession reads the next snapshot of the subscription.
func (r RootModel) waitForSession() tea.Cmd {
	updates := r.updates
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return sessionChangedMsg{session: s}
	}
}

func (r RootModel) cmdBootstrap() tea.Cmd {
	ctx := r.ctx
	auth := r.auth
	return func() tea.Msg {
		_, err := auth.Bootstrap(ctx)
		return bootstrapDoneMsg{err: err}
	}
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	auth := r.auth
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}
