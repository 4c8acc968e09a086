// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/campusvibes/campusvibes/lib/api"
	"github.com/campusvibes/campusvibes/lib/session"
)

// fakeBackend implements Backend with canned responses and call
// counters. Commands run synchronously in tests, so no locking.
type fakeBackend struct {
	otpCalls int
	otpErr   error

	confirmCalls    int
	confirmRequests []api.SignupRequest

	authResult *api.AuthResponse
	authErr    error

	sections   map[api.Section][]api.Event
	sectionErr error

	searchQueries []string
	searchResults []api.Event

	detail *api.EventDetail

	registerCalls   int
	unregisterCalls int
	attendees       []api.Attendee
	registerErr     error

	report *api.AttendanceReport

	created    []api.Event
	registered []api.Event

	createDrafts []api.EventDraft
	updateCalls  int
	savedEvent   *api.Event
	saveErr      error

	deletedIDs []string
	deleteErr  error

	profile         *api.UserDetails
	profileErr      error
	submittedUser   []api.UserDetails
	submittedCampus []api.CampusDetails

	resetRequestCalls int
	resetCalls        int
}

func (fake *fakeBackend) SendOTP(_ context.Context, email string) (*api.OTPResponse, error) {
	fake.otpCalls++
	if fake.otpErr != nil {
		return nil, fake.otpErr
	}
	return &api.OTPResponse{Success: true}, nil
}

func (fake *fakeBackend) ConfirmSignup(_ context.Context, request api.SignupRequest) (*api.AuthResponse, error) {
	fake.confirmCalls++
	fake.confirmRequests = append(fake.confirmRequests, request)
	return fake.authResult, fake.authErr
}

func (fake *fakeBackend) Signin(_ context.Context, email, password string) (*api.AuthResponse, error) {
	return fake.authResult, fake.authErr
}

func (fake *fakeBackend) RequestPasswordReset(_ context.Context, email string) (*api.OTPResponse, error) {
	fake.resetRequestCalls++
	return &api.OTPResponse{Success: true}, nil
}

func (fake *fakeBackend) ResetPassword(_ context.Context, token, password string) (*api.OTPResponse, error) {
	fake.resetCalls++
	return &api.OTPResponse{Success: true}, nil
}

func (fake *fakeBackend) Events(_ context.Context, section api.Section) ([]api.Event, error) {
	if fake.sectionErr != nil {
		return nil, fake.sectionErr
	}
	return fake.sections[section], nil
}

func (fake *fakeBackend) SearchEvents(_ context.Context, query string) ([]api.Event, error) {
	fake.searchQueries = append(fake.searchQueries, query)
	return fake.searchResults, nil
}

func (fake *fakeBackend) Event(_ context.Context, eventID string) (*api.EventDetail, error) {
	return fake.detail, nil
}

func (fake *fakeBackend) Register(_ context.Context, eventID string) ([]api.Attendee, error) {
	fake.registerCalls++
	return fake.attendees, fake.registerErr
}

func (fake *fakeBackend) Unregister(_ context.Context, eventID string) ([]api.Attendee, error) {
	fake.unregisterCalls++
	return fake.attendees, fake.registerErr
}

func (fake *fakeBackend) Attendance(_ context.Context, eventID string) (*api.AttendanceReport, error) {
	return fake.report, nil
}

func (fake *fakeBackend) CreatedEvents(_ context.Context) ([]api.Event, error) {
	return fake.created, nil
}

func (fake *fakeBackend) RegisteredEvents(_ context.Context) ([]api.Event, error) {
	return fake.registered, nil
}

func (fake *fakeBackend) CreateEvent(_ context.Context, draft api.EventDraft, imagePaths []string) (*api.Event, error) {
	fake.createDrafts = append(fake.createDrafts, draft)
	return fake.savedEvent, fake.saveErr
}

func (fake *fakeBackend) UpdateEvent(_ context.Context, eventID string, draft api.EventDraft, existingImages []api.Image, imagePaths []string) (*api.Event, error) {
	fake.updateCalls++
	return fake.savedEvent, fake.saveErr
}

func (fake *fakeBackend) DeleteEvent(_ context.Context, eventID string) error {
	fake.deletedIDs = append(fake.deletedIDs, eventID)
	return fake.deleteErr
}

func (fake *fakeBackend) UserProfile(_ context.Context, userID string) (*api.UserDetails, error) {
	return fake.profile, fake.profileErr
}

func (fake *fakeBackend) SubmitUserDetails(_ context.Context, details api.UserDetails) error {
	fake.submittedUser = append(fake.submittedUser, details)
	return nil
}

func (fake *fakeBackend) SubmitCampusDetails(_ context.Context, details api.CampusDetails) error {
	fake.submittedCampus = append(fake.submittedCampus, details)
	return nil
}

// testStore opens a session store over a temp path.
func testStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

// authedModel builds a signed-in model for the given role.
func authedModel(t *testing.T, backend Backend, role session.Role) (Model, *session.Store) {
	t.Helper()
	store := testStore(t)
	err := store.SetSession(session.Session{
		UserID: "u1", Name: "Ana", Role: role, Token: "tok",
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	model := NewModel(backend, store)
	model.width = 100
	model.height = 40
	model.ready = true
	return model, store
}

// update applies a message and returns the concrete model.
func update(t *testing.T, model Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, command := model.Update(message)
	return updated.(Model), command
}

// collect runs a command tree synchronously and returns the messages
// it produces. Callers avoid passing notice fade ticks here.
func collect(command tea.Cmd) []tea.Msg {
	if command == nil {
		return nil
	}
	message := command()
	if batch, ok := message.(tea.BatchMsg); ok {
		var messages []tea.Msg
		for _, sub := range batch {
			messages = append(messages, collect(sub)...)
		}
		return messages
	}
	if message == nil {
		return nil
	}
	return []tea.Msg{message}
}

// feed applies every message a command produces.
func feed(t *testing.T, model Model, command tea.Cmd) Model {
	t.Helper()
	for _, message := range collect(command) {
		model, _ = update(t, model, message)
	}
	return model
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(t *testing.T, model Model, text string) Model {
	t.Helper()
	for _, r := range text {
		model, _ = update(t, model, keyRune(r))
	}
	return model
}

func studentAuth() *api.AuthResponse {
	return &api.AuthResponse{
		Success:     true,
		AccessToken: "tok-s",
		User:        api.AuthUser{UserID: "u1", Name: "Ana", Role: session.RoleStudent},
		RedirectURL: "/",
	}
}

func TestStartsAtSigninWithoutSession(t *testing.T) {
	t.Parallel()

	model := NewModel(&fakeBackend{}, testStore(t))
	if model.screen != ScreenSignin {
		t.Errorf("screen = %v, want signin", model.screen)
	}
	if model.Init() != nil {
		t.Error("Init should be a no-op when signed out")
	}
}

func TestSigninStudentLandsOnHome(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{authResult: studentAuth()}
	store := testStore(t)
	model := NewModel(backend, store)

	model.signin.form.SetValue("Email", "ana@example.edu")
	model.signin.form.SetValue("Password", "hunter22")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = feed(t, model, command)

	if model.screen != ScreenHome {
		t.Fatalf("screen = %v, want home", model.screen)
	}
	if current, ok := store.Current(); !ok || current.Token != "tok-s" {
		t.Errorf("store session = %+v, %v; want persisted token", current, ok)
	}
}

func TestSigninCampusLandsOnDashboard(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{authResult: &api.AuthResponse{
		Success:     true,
		AccessToken: "tok-c",
		User:        api.AuthUser{UserID: "c1", Name: "COEP", Role: session.RoleCampus},
		RedirectURL: "/campus-dashboard",
	}}
	model := NewModel(backend, testStore(t))

	model.signin.form.SetValue("Email", "coep@example.edu")
	model.signin.form.SetValue("Password", "hunter22")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = feed(t, model, command)

	if model.screen != ScreenDashboard {
		t.Fatalf("screen = %v, want dashboard", model.screen)
	}
}

func TestSigninFailureShowsInvalidCredentials(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{authErr: api.Auth("signin: status 401")}
	model := NewModel(backend, testStore(t))

	model.signin.form.SetValue("Email", "ana@example.edu")
	model.signin.form.SetValue("Password", "wrong")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	messages := collect(command)
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	model, _ = update(t, model, messages[0])

	if model.screen != ScreenSignin {
		t.Errorf("screen = %v, want signin", model.screen)
	}
	if model.notice != "Invalid credentials" {
		t.Errorf("notice = %q, want Invalid credentials", model.notice)
	}
}

func TestSignupConfirmsExactlyOnce(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{authResult: studentAuth()}
	model := NewModel(backend, testStore(t))

	// Move to the signup form and fill it.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlN})
	if model.screen != ScreenSignup {
		t.Fatalf("screen = %v, want signup", model.screen)
	}
	model.signup.form.SetValue("Name", "Ana")
	model.signup.form.SetValue("Email", "ana@example.edu")
	model.signup.form.SetValue("Password", "correcthorse")

	// Submit dispatches the OTP.
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	messages := collect(command)
	if backend.otpCalls != 1 {
		t.Fatalf("otpCalls = %d, want 1", backend.otpCalls)
	}
	model, _ = update(t, model, messages[0])

	// Type five digits: no confirmation yet.
	model = typeString(t, model, "12345")
	if backend.confirmCalls != 0 {
		t.Fatalf("confirmCalls = %d before completion, want 0", backend.confirmCalls)
	}

	// The sixth digit completes the code and submits immediately.
	model, command = update(t, model, keyRune('6'))
	confirmMessages := collect(command)
	if backend.confirmCalls != 1 {
		t.Fatalf("confirmCalls = %d, want 1", backend.confirmCalls)
	}
	if got := backend.confirmRequests[0].OTP; got != "123456" {
		t.Errorf("confirmed code = %q, want 123456", got)
	}

	// Further digits after completion must not confirm again.
	model, extra := update(t, model, keyRune('7'))
	if extra != nil {
		t.Error("typing after completion should produce no command")
	}
	if backend.confirmCalls != 1 {
		t.Fatalf("confirmCalls = %d after extra input, want 1", backend.confirmCalls)
	}

	// Deliver the confirmation result: signed in, home screen.
	for _, message := range confirmMessages {
		model, _ = update(t, model, message)
	}
	if model.screen != ScreenHome {
		t.Errorf("screen = %v, want home after signup", model.screen)
	}
}

func TestSignupRejectionReturnsToFormWithDraft(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{authErr: api.Request("signup: invalid verification code")}
	model := NewModel(backend, testStore(t))

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlN})
	model.signup.form.SetValue("Name", "Ana")
	model.signup.form.SetValue("Email", "ana@example.edu")
	model.signup.form.SetValue("Password", "correcthorse")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = feed(t, model, command)

	model = typeString(t, model, "12345")
	model, command = update(t, model, keyRune('6'))
	model = feed(t, model, command)

	if model.screen != ScreenSignup {
		t.Fatalf("screen = %v, want signup", model.screen)
	}
	if model.signup.flow.Failure() == "" {
		t.Error("rejection message should be recorded")
	}
	if model.signup.flow.Draft().Email != "ana@example.edu" {
		t.Error("draft should survive a rejected confirmation")
	}
}

func sectionEvents(count int, prefix string) []api.Event {
	events := make([]api.Event, 0, count)
	for i := 0; i < count; i++ {
		events = append(events, api.Event{
			ID:    fmt.Sprintf("%s-%d", prefix, i),
			Title: fmt.Sprintf("%s event %d", prefix, i),
		})
	}
	return events
}

func TestHomeSectionPreviewSlice(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{sections: map[api.Section][]api.Event{
		api.SectionNearYou:     sectionEvents(7, "near"),
		api.SectionRecommended: sectionEvents(2, "rec"),
		api.SectionYourCampus:  sectionEvents(5, "campus"),
	}}
	model, _ := authedModel(t, backend, session.RoleStudent)
	model = feed(t, model, model.Init())

	// 5 of 7, all 2, all 5.
	if got := len(model.home.rows()); got != 12 {
		t.Fatalf("visible rows = %d, want 12", got)
	}
	if !strings.Contains(model.View(), "+2 more") {
		t.Error("view should hint at the hidden events")
	}

	// See-all on the first section reveals the rest without a refetch.
	model, _ = update(t, model, keyRune('a'))
	if got := len(model.home.rows()); got != 14 {
		t.Fatalf("visible rows after see-all = %d, want 14", got)
	}

	// Toggling back restores the slice.
	model, _ = update(t, model, keyRune('a'))
	if got := len(model.home.rows()); got != 12 {
		t.Fatalf("visible rows after collapse = %d, want 12", got)
	}
}

func TestHomeSearchRoundTrip(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sections:      map[api.Section][]api.Event{},
		searchResults: sectionEvents(3, "found"),
	}
	model, _ := authedModel(t, backend, session.RoleStudent)
	model = feed(t, model, model.Init())

	model, _ = update(t, model, keyRune('/'))
	model = typeString(t, model, "tech")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = feed(t, model, command)

	if len(backend.searchQueries) != 1 || backend.searchQueries[0] != "tech" {
		t.Fatalf("searchQueries = %v", backend.searchQueries)
	}
	if !model.home.active || len(model.home.rows()) != 3 {
		t.Fatalf("search results not shown: active=%v rows=%d",
			model.home.active, len(model.home.rows()))
	}
}

func TestLateResponseAfterNavigationIgnored(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{sections: map[api.Section][]api.Event{
		api.SectionNearYou: sectionEvents(3, "near"),
	}}
	model, _ := authedModel(t, backend, session.RoleStudent)

	// Start the section loads but navigate away before they land.
	pending := model.Init()
	model, command := update(t, model, keyRune('2'))
	model = feed(t, model, command)
	if model.screen != ScreenDashboard {
		t.Fatalf("screen = %v, want dashboard", model.screen)
	}

	// The stale section responses arrive now and must be dropped.
	model = feed(t, model, pending)
	if model.screen != ScreenDashboard {
		t.Errorf("screen = %v after stale responses, want dashboard", model.screen)
	}
	if !model.home.sections[api.SectionNearYou].loading {
		t.Error("stale section response should not populate the home screen")
	}
}

func TestRegistrationSerializedPerEvent(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		detail: &api.EventDetail{
			Success:   true,
			Event:     api.Event{ID: "e1", Title: "Tech Fest"},
			Attendees: []api.Attendee{{ID: "u2", Name: "Ben"}},
		},
		attendees: []api.Attendee{{ID: "u2", Name: "Ben"}, {ID: "u1", Name: "Ana"}},
	}
	model, _ := authedModel(t, backend, session.RoleStudent)

	model, command := model.openDetail(api.Event{ID: "e1", Title: "Tech Fest"})
	model = feed(t, model, command)

	// First press issues the register call.
	model, registerCommand := update(t, model, keyRune('r'))
	if backend.registerCalls != 0 {
		t.Fatal("register should not run until the command executes")
	}

	// A second press while in flight is rejected locally.
	model, blocked := update(t, model, keyRune('r'))
	messages := collect(registerCommand)
	if backend.registerCalls != 1 {
		t.Fatalf("registerCalls = %d, want 1", backend.registerCalls)
	}
	_ = blocked // The rejection surfaced as a notice, not a request.
	if !strings.Contains(model.notice, "already in flight") {
		t.Errorf("notice = %q, want in-flight rejection", model.notice)
	}

	// The response replaces the attendee cache and derives the state.
	for _, message := range messages {
		model, _ = update(t, model, message)
	}
	if got := len(model.attendeesForDetail()); got != 2 {
		t.Fatalf("attendees = %d, want server list of 2", got)
	}
	if !strings.Contains(model.View(), "✓ registered") {
		t.Error("view should show the registered state")
	}

	// Now the slot is free again; the next press unregisters.
	backend.attendees = []api.Attendee{{ID: "u2", Name: "Ben"}}
	model, command = update(t, model, keyRune('r'))
	model = feed(t, model, command)
	if backend.unregisterCalls != 1 {
		t.Fatalf("unregisterCalls = %d, want 1", backend.unregisterCalls)
	}
	if got := len(model.attendeesForDetail()); got != 1 {
		t.Fatalf("attendees = %d after unregister, want 1", got)
	}
}

func TestSignOutIdempotent(t *testing.T) {
	t.Parallel()

	model, store := authedModel(t, &fakeBackend{}, session.RoleStudent)

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlO})
	if model.screen != ScreenSignin || model.authed {
		t.Fatalf("screen = %v authed = %v, want signed out", model.screen, model.authed)
	}
	if _, ok := store.Current(); ok {
		t.Error("store should be cleared")
	}

	// Signing out again is harmless.
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlO})
	if model.screen != ScreenSignin {
		t.Errorf("screen = %v, want signin", model.screen)
	}
	_ = command
}

func TestHeaderGatedByRole(t *testing.T) {
	t.Parallel()

	student, _ := authedModel(t, &fakeBackend{}, session.RoleStudent)
	view := student.viewHeader()
	if !strings.Contains(view, "1 events") {
		t.Error("student header should offer event browsing")
	}
	if strings.Contains(view, "n new event") {
		t.Error("student header must not offer event creation")
	}

	campus, _ := authedModel(t, &fakeBackend{}, session.RoleCampus)
	view = campus.viewHeader()
	if strings.Contains(view, "1 events") {
		t.Error("campus header must not offer event browsing")
	}
	if !strings.Contains(view, "n new event") {
		t.Error("campus header should offer event creation")
	}
}

func TestDashboardDeleteRemovesRow(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{created: []api.Event{
		{ID: "e1", Title: "First"},
		{ID: "e2", Title: "Second"},
	}}
	model, _ := authedModel(t, backend, session.RoleCampus)
	model = feed(t, model, model.Init())

	if len(model.dashboard.events) != 2 {
		t.Fatalf("dashboard events = %d, want 2", len(model.dashboard.events))
	}

	model, command := update(t, model, keyRune('x'))
	messages := collect(command)
	if len(backend.deletedIDs) != 1 || backend.deletedIDs[0] != "e1" {
		t.Fatalf("deletedIDs = %v, want [e1]", backend.deletedIDs)
	}
	for _, message := range messages {
		model, _ = update(t, model, message)
	}
	if len(model.dashboard.events) != 1 || model.dashboard.events[0].ID != "e2" {
		t.Fatalf("dashboard events = %+v, want only e2", model.dashboard.events)
	}
}

func TestEventFormCreate(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{savedEvent: &api.Event{ID: "e9", Title: "Hackathon"}}
	model, _ := authedModel(t, backend, session.RoleCampus)
	model = feed(t, model, model.Init())

	model, _ = update(t, model, keyRune('n'))
	if model.screen != ScreenEventForm {
		t.Fatalf("screen = %v, want event form", model.screen)
	}

	model.eventForm.form.SetValue("Title", "Hackathon")

	// Pick the first category via the dropdown.
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlG})
	if model.eventForm.dropdown == nil {
		t.Fatal("C-g should open the category dropdown")
	}
	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.eventForm.category != "technical" {
		t.Fatalf("category = %q, want technical", model.eventForm.category)
	}

	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	messages := collect(command)
	if len(backend.createDrafts) != 1 {
		t.Fatalf("createDrafts = %d, want 1", len(backend.createDrafts))
	}
	if backend.createDrafts[0].Title != "Hackathon" {
		t.Errorf("draft title = %q", backend.createDrafts[0].Title)
	}
	for _, message := range messages {
		model, _ = update(t, model, message)
	}
	if model.screen != ScreenDashboard {
		t.Errorf("screen = %v after save, want dashboard", model.screen)
	}
}

func TestProfileSubmitStudent(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{profile: &api.UserDetails{
		Name:      "Ana",
		Interests: []string{"music"},
	}}
	model, _ := authedModel(t, backend, session.RoleStudent)

	model, command := update(t, model, keyRune('3'))
	if model.screen != ScreenProfile {
		t.Fatalf("screen = %v, want profile", model.screen)
	}
	model = feed(t, model, command)

	if model.profile.form.Value("Name") != "Ana" {
		t.Fatalf("prefill name = %q, want Ana", model.profile.form.Value("Name"))
	}

	model.profile.form.SetValue("City", "Pune")
	model.profile.form.SetValue("Interests", "music, tech")
	model, command = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	messages := collect(command)
	if len(backend.submittedUser) != 1 {
		t.Fatalf("submittedUser = %d, want 1", len(backend.submittedUser))
	}
	details := backend.submittedUser[0]
	if details.City != "Pune" || len(details.Interests) != 2 {
		t.Errorf("submitted details = %+v", details)
	}
	for _, message := range messages {
		model, _ = update(t, model, message)
	}
	if model.profile.pending {
		t.Error("pending should clear after the save lands")
	}
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{}
	model := NewModel(backend, testStore(t))

	model, _ = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlR})
	if model.screen != ScreenReset {
		t.Fatalf("screen = %v, want reset", model.screen)
	}

	// Step one: request the token by email.
	model = typeString(t, model, "ana@example.edu")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	messages := collect(command)
	if backend.resetRequestCalls != 1 {
		t.Fatalf("resetRequestCalls = %d, want 1", backend.resetRequestCalls)
	}
	model, _ = update(t, model, messages[0])
	if !model.reset.requested {
		t.Fatal("request step should advance to the token form")
	}

	// Step two: submit the token with the new password.
	model.reset.form.SetValue("Reset token", "tok-reset")
	model.reset.form.SetValue("New password", "correcthorse")
	model, command = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	messages = collect(command)
	if backend.resetCalls != 1 {
		t.Fatalf("resetCalls = %d, want 1", backend.resetCalls)
	}
	model, _ = update(t, model, messages[0])

	if model.screen != ScreenSignin {
		t.Errorf("screen = %v, want signin after reset", model.screen)
	}
	if !strings.Contains(model.notice, "password updated") {
		t.Errorf("notice = %q, want confirmation", model.notice)
	}
}

func TestDeleteFromDetailReturnsToDashboard(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		created: []api.Event{{ID: "e1", Title: "First"}},
		detail: &api.EventDetail{
			Success: true,
			Event:   api.Event{ID: "e1", Title: "First"},
		},
	}
	model, _ := authedModel(t, backend, session.RoleCampus)
	model = feed(t, model, model.Init())

	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = feed(t, model, command)
	if model.screen != ScreenDetail {
		t.Fatalf("screen = %v, want detail", model.screen)
	}

	model, command = update(t, model, keyRune('x'))
	messages := collect(command)
	if len(backend.deletedIDs) != 1 || backend.deletedIDs[0] != "e1" {
		t.Fatalf("deletedIDs = %v, want [e1]", backend.deletedIDs)
	}
	for _, message := range messages {
		model, _ = update(t, model, message)
	}
	if model.screen != ScreenDashboard {
		t.Errorf("screen = %v, want dashboard after delete", model.screen)
	}
}

func TestSigninTransportFailureShowsCause(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		authErr: api.Transport("sign in: connect: connection refused"),
	}
	model := NewModel(backend, testStore(t))

	model.signin.form.SetValue("Email", "ana@example.edu")
	model.signin.form.SetValue("Password", "hunter22")
	model, command := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	for _, message := range collect(command) {
		model, _ = update(t, model, message)
	}

	if model.notice == "Invalid credentials" {
		t.Fatal("a connection failure must not read as rejected credentials")
	}
	if !strings.Contains(model.notice, "connection refused") {
		t.Errorf("notice = %q, want the underlying transport error", model.notice)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	t.Parallel()

	got := truncate("技術祭 2026 キャンパスフェス", 12)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if width := ansi.StringWidth(got); width > 12 {
		t.Errorf("display width = %d, want at most 12", width)
	}
	if got := truncate("short", 32); got != "short" {
		t.Errorf("text within the width was altered: %q", got)
	}
}

func TestFormValuePreservesPasswordWhitespace(t *testing.T) {
	t.Parallel()

	f := newForm(
		textField("Email", "you@campus.edu"),
		passwordField("Password"),
	)
	f.SetValue("Email", "  ana@example.edu  ")
	f.SetValue("Password", "  hunter 2  ")

	if got := f.Value("Email"); got != "ana@example.edu" {
		t.Errorf("email = %q, want trimmed", got)
	}
	if got := f.Value("Password"); got != "  hunter 2  " {
		t.Errorf("password = %q, want verbatim", got)
	}
}
