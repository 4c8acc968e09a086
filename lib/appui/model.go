// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campusvibes/campusvibes/lib/registration"
	"github.com/campusvibes/campusvibes/lib/session"
)

// noticeFadeDelay is how long a status bar notice stays visible.
const noticeFadeDelay = 3 * time.Second

// listPageStride is how far PageUp/PageDown move the cursor in the
// event lists.
const listPageStride = 10

// Model is the top-level bubbletea model for the CampusVibes client.
type Model struct {
	backend Backend
	store   *session.Store
	theme   Theme
	keys    KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Authenticated session, cached from the store. authed mirrors
	// whether the cache holds a live session.
	authed  bool
	session session.Session
	tracker *registration.Tracker

	// Active screen. seq is the request sequence number: bumped on
	// every navigation so that results from a screen the user has
	// left are discarded when they arrive.
	screen Screen
	seq    int

	// Transient status bar notice.
	notice        string
	noticeIsError bool
	noticeSeq     int

	// Per-screen state.
	signin    signinState
	signup    signupState
	reset     resetState
	home      homeState
	detail    detailState
	dashboard dashboardState
	eventForm eventFormState
	profile   profileState
}

// NewModel creates a Model over the given backend and session store.
// When the store holds a session the model starts signed in on the
// role's landing screen; otherwise it starts at the signin form.
func NewModel(backend Backend, store *session.Store) Model {
	model := Model{
		backend: backend,
		store:   store,
		theme:   DefaultTheme,
		keys:    DefaultKeyMap,
		screen:  ScreenSignin,
		signin:  newSigninState(),
	}

	if current, ok := store.Current(); ok {
		model.authed = true
		model.session = current
		model.tracker = registration.NewTracker(current.UserID)
		model.screen = landingScreen(current.Role, "")
	}

	return model
}

// landingScreen maps a role and redirect route to the screen shown
// after authentication. Campus accounts always land on their
// dashboard; students follow the backend's redirect.
func landingScreen(role session.Role, redirectURL string) Screen {
	if role == session.RoleCampus {
		return ScreenDashboard
	}
	if redirectURL == session.UserDashboardRoute {
		return ScreenDashboard
	}
	return ScreenHome
}

// Init implements tea.Model. Starts the initial screen's data load
// when the model begins signed in.
func (model Model) Init() tea.Cmd {
	if !model.authed {
		return nil
	}
	return model.enterScreen(model.screen)
}

// enterScreen returns the data load command for a screen. The caller
// has already set model.screen and bumped model.seq.
func (model *Model) enterScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenHome:
		model.home = newHomeState()
		return model.loadSections()
	case ScreenDashboard:
		model.dashboard = newDashboardState()
		return model.loadDashboard()
	case ScreenProfile:
		model.profile = newProfileState(model.session.Role)
		return model.loadProfile()
	}
	return nil
}

// navigate switches to a screen, invalidating any fetches issued by
// the previous one.
func (model *Model) navigate(screen Screen) tea.Cmd {
	model.seq++
	model.screen = screen
	return model.enterScreen(screen)
}

// setNotice shows a transient message in the status bar and schedules
// its fade.
func (model *Model) setNotice(text string, isError bool) tea.Cmd {
	model.notice = text
	model.noticeIsError = isError
	model.noticeSeq++
	seq := model.noticeSeq
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{seq: seq}
	})
}

// completeAuth installs a successful signin or signup result: the
// session is persisted, a fresh registration tracker created, and the
// role's landing screen entered.
func (model *Model) completeAuth(userID, name string, role session.Role, token, redirectURL string) tea.Cmd {
	newSession := session.Session{UserID: userID, Name: name, Role: role, Token: token}
	if err := model.store.SetSession(newSession); err != nil {
		return model.setNotice("saving session: "+err.Error(), true)
	}
	model.authed = true
	model.session = newSession
	model.tracker = registration.NewTracker(userID)
	return model.navigate(landingScreen(role, redirectURL))
}

// signOut clears the persisted session and returns to the signin
// form. Clearing is idempotent; signing out twice is harmless.
func (model *Model) signOut() tea.Cmd {
	if err := model.store.Clear(); err != nil {
		return model.setNotice("sign out: "+err.Error(), true)
	}
	model.authed = false
	model.session = session.Session{}
	model.tracker = nil
	model.seq++
	model.screen = ScreenSignin
	model.signin = newSigninState()
	return nil
}

// can reports whether the signed-in role holds a capability.
func (model *Model) can(capability session.Capability) bool {
	for _, held := range session.Capabilities(model.session.Role) {
		if held == capability {
			return true
		}
	}
	return false
}

// Update implements tea.Model. Global keys are handled here; all
// other input routes to the active screen.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		if model.authed && key.Matches(message, model.keys.SignOut) {
			command := model.signOut()
			return model, command
		}
		return model.updateScreenKeys(message)

	case noticeFadeMsg:
		if message.seq == model.noticeSeq {
			model.notice = ""
		}
		return model, nil

	case otpDispatchedMsg:
		return model.handleOTPDispatched(message)
	case authResultMsg:
		return model.handleAuthResult(message)
	case resetRequestedMsg:
		return model.handleResetRequested(message)
	case resetDoneMsg:
		return model.handleResetDone(message)
	case sectionLoadedMsg:
		return model.handleSectionLoaded(message)
	case searchResultMsg:
		return model.handleSearchResult(message)
	case eventLoadedMsg:
		return model.handleEventLoaded(message)
	case registrationResultMsg:
		return model.handleRegistrationResult(message)
	case attendanceLoadedMsg:
		return model.handleAttendanceLoaded(message)
	case dashboardLoadedMsg:
		return model.handleDashboardLoaded(message)
	case eventSavedMsg:
		return model.handleEventSaved(message)
	case eventDeletedMsg:
		return model.handleEventDeleted(message)
	case profileLoadedMsg:
		return model.handleProfileLoaded(message)
	case profileSavedMsg:
		return model.handleProfileSaved(message)
	}
	return model, nil
}

// updateScreenKeys routes a key event to the active screen.
func (model Model) updateScreenKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch model.screen {
	case ScreenSignin:
		return model.updateSignin(message)
	case ScreenSignup:
		return model.updateSignup(message)
	case ScreenReset:
		return model.updateReset(message)
	case ScreenHome:
		return model.updateHome(message)
	case ScreenDetail:
		return model.updateDetail(message)
	case ScreenDashboard:
		return model.updateDashboard(message)
	case ScreenEventForm:
		return model.updateEventForm(message)
	case ScreenProfile:
		return model.updateProfile(message)
	}
	return model, nil
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return ""
	}

	var body string
	switch model.screen {
	case ScreenSignin:
		body = model.viewSignin()
	case ScreenSignup:
		body = model.viewSignup()
	case ScreenReset:
		body = model.viewReset()
	case ScreenHome:
		body = model.viewHome()
	case ScreenDetail:
		body = model.viewDetail()
	case ScreenDashboard:
		body = model.viewDashboard()
	case ScreenEventForm:
		body = model.viewEventForm()
	case ScreenProfile:
		body = model.viewProfile()
	}

	return model.viewHeader() + "\n" + body + "\n" + model.viewStatusBar()
}

// viewHeader renders the top bar: app name, role-gated navigation,
// and the signed-in identity.
func (model Model) viewHeader() string {
	title := lipgloss.NewStyle().
		Foreground(model.theme.Accent).
		Bold(true).
		Render("CampusVibes")

	var items []string
	if model.authed {
		if model.can(session.CapBrowseEvents) {
			items = append(items, "1 events")
		}
		items = append(items, "2 dashboard", "3 profile")
		if model.can(session.CapCreateEvent) {
			items = append(items, "n new event")
		}
		items = append(items, "C-o sign out")
	}

	nav := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(strings.Join(items, "  "))

	identity := ""
	if model.authed {
		identity = lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(model.session.Name + " (" + string(model.session.Role) + ")")
	}

	return title + "  " + nav + "  " + identity
}

// viewStatusBar renders the bottom line: the transient notice when
// one is active, otherwise the screen name.
func (model Model) viewStatusBar() string {
	if model.notice != "" {
		color := model.theme.SuccessText
		if model.noticeIsError {
			color = model.theme.ErrorText
		}
		return lipgloss.NewStyle().Foreground(color).Render(model.notice)
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(model.screen.String())
}
