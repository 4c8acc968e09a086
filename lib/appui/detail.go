// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campusvibes/campusvibes/lib/api"
	"github.com/campusvibes/campusvibes/lib/registration"
	"github.com/campusvibes/campusvibes/lib/session"
)

// detailState is one event's full view: the event record, the
// attendee list, and optionally the attendance report overlay.
type detailState struct {
	event    api.Event
	returnTo Screen

	loading bool
	err     error

	// attendance is non-nil while the report overlay is open.
	attendance        *api.AttendanceReport
	attendanceLoading bool
}

// newDetailState seeds the screen with the list row's event so the
// title renders immediately while the full record loads.
func newDetailState(event api.Event, returnTo Screen) detailState {
	return detailState{
		event:    event,
		returnTo: returnTo,
		loading:  true,
	}
}

func (model Model) handleEventLoaded(message eventLoadedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenDetail {
		return model, nil
	}
	model.detail.loading = false
	if message.err != nil {
		model.detail.err = message.err
		return model, nil
	}
	model.detail.event = message.detail.Event
	model.tracker.Resolve(message.detail.Event.ID, message.detail.Attendees)
	return model, nil
}

func (model Model) updateDetail(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.detail.attendance != nil || model.detail.attendanceLoading {
		// The attendance overlay swallows input until dismissed.
		if key.Matches(message, model.keys.Back) {
			model.detail.attendance = nil
			model.detail.attendanceLoading = false
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Back):
		command := model.navigate(model.detail.returnTo)
		return model, command

	case key.Matches(message, model.keys.Register):
		if model.can(session.CapBrowseEvents) {
			return model.toggleRegistration()
		}
		return model, nil

	case key.Matches(message, model.keys.Attendance):
		if model.can(session.CapCreateEvent) {
			return model.openAttendance()
		}
		return model, nil

	case key.Matches(message, model.keys.EditEvent):
		if model.can(session.CapCreateEvent) {
			event := model.detail.event
			return model.openEventForm(&event)
		}
		return model, nil

	case key.Matches(message, model.keys.Delete):
		if model.can(session.CapCreateEvent) {
			return model.deleteEvent(model.detail.event)
		}
		return model, nil

	case key.Matches(message, model.keys.GoHome):
		if model.can(session.CapBrowseEvents) {
			command := model.navigate(ScreenHome)
			return model, command
		}
		return model, nil

	case key.Matches(message, model.keys.GoDashboard):
		command := model.navigate(ScreenDashboard)
		return model, command
	}
	return model, nil
}

// toggleRegistration issues a register or unregister depending on the
// current standing. The tracker rejects overlapping mutations for the
// same event; the first response releases the slot.
func (model Model) toggleRegistration() (tea.Model, tea.Cmd) {
	eventID := model.detail.event.ID

	kind := registration.KindRegister
	if model.tracker.State(eventID) == registration.StateRegistered {
		kind = registration.KindUnregister
	}
	if !model.tracker.Begin(eventID, kind) {
		command := model.setNotice("a registration request is already in flight", true)
		return model, command
	}

	backend := model.backend
	return model, func() tea.Msg {
		var attendees []api.Attendee
		var err error
		if kind == registration.KindRegister {
			attendees, err = backend.Register(context.Background(), eventID)
		} else {
			attendees, err = backend.Unregister(context.Background(), eventID)
		}
		return registrationResultMsg{eventID: eventID, attendees: attendees, err: err}
	}
}

// handleRegistrationResult settles the tracker regardless of which
// screen is showing; the notice only appears when the user is still
// looking at the event.
func (model Model) handleRegistrationResult(message registrationResultMsg) (tea.Model, tea.Cmd) {
	onThisEvent := model.screen == ScreenDetail && model.detail.event.ID == message.eventID

	if message.err != nil {
		model.tracker.Fail(message.eventID)
		if onThisEvent {
			command := model.setNotice(message.err.Error(), true)
			return model, command
		}
		return model, nil
	}

	state := model.tracker.Resolve(message.eventID, message.attendees)
	if !onThisEvent {
		return model, nil
	}
	if state == registration.StateRegistered {
		command := model.setNotice("registered for "+model.detail.event.Title, false)
		return model, command
	}
	command := model.setNotice("registration cancelled", false)
	return model, command
}

func (model Model) openAttendance() (tea.Model, tea.Cmd) {
	model.detail.attendanceLoading = true
	model.seq++
	seq := model.seq
	backend := model.backend
	eventID := model.detail.event.ID
	return model, func() tea.Msg {
		report, err := backend.Attendance(context.Background(), eventID)
		return attendanceLoadedMsg{seq: seq, report: report, err: err}
	}
}

func (model Model) handleAttendanceLoaded(message attendanceLoadedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenDetail {
		return model, nil
	}
	model.detail.attendanceLoading = false
	if message.err != nil {
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}
	model.detail.attendance = message.report
	return model, nil
}

func (model Model) viewDetail() string {
	detail := &model.detail
	event := detail.event

	if detail.err != nil {
		return lipgloss.NewStyle().
			Foreground(model.theme.ErrorText).
			Render(detail.err.Error()) + "\n\nEsc back"
	}

	var builder strings.Builder
	builder.WriteString(lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render(event.Title) + "\n\n")

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	fields := [][2]string{
		{"When", event.DateTime},
		{"Where", event.Location},
		{"Organizer", event.Organizer},
		{"Category", event.Category},
		{"Capacity", event.Capacity},
		{"Deadline", event.RegistrationDeadline},
		{"Price", event.Price},
		{"Status", event.Status},
	}
	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		builder.WriteString(faint.Render(fmt.Sprintf("%-10s", field[0])) + " " + field[1] + "\n")
	}

	if event.Description != "" {
		builder.WriteString("\n" + event.Description + "\n")
	}

	if detail.loading {
		builder.WriteString("\n" + faint.Render("loading...") + "\n")
	}

	attendees := model.attendeesForDetail()
	builder.WriteString("\n" + lipgloss.NewStyle().
		Foreground(model.theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Attendees (%d)", len(attendees))) + "\n")
	for _, attendee := range attendees {
		builder.WriteString("  " + attendee.Name + "\n")
	}

	builder.WriteString("\n" + model.viewRegistrationLine())
	builder.WriteString("\n" + lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(model.detailHelp()))

	if detail.attendance != nil {
		builder.WriteString("\n\n" + model.viewAttendance())
	} else if detail.attendanceLoading {
		builder.WriteString("\n\n" + faint.Render("loading attendance..."))
	}

	return builder.String()
}

// attendeesForDetail reads the tracker's cache, which holds the
// server's latest list for this event.
func (model Model) attendeesForDetail() []api.Attendee {
	if model.tracker == nil {
		return nil
	}
	return model.tracker.Attendees(model.detail.event.ID)
}

func (model Model) viewRegistrationLine() string {
	if !model.can(session.CapBrowseEvents) {
		return ""
	}
	eventID := model.detail.event.ID
	if model.tracker.Busy(eventID) {
		return lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("updating registration...")
	}
	if model.tracker.State(eventID) == registration.StateRegistered {
		return lipgloss.NewStyle().
			Foreground(model.theme.Registered).
			Render("✓ registered (r to cancel)")
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.NotRegistered).
		Render("not registered (r to register)")
}

func (model Model) detailHelp() string {
	parts := []string{"Esc back"}
	if model.can(session.CapCreateEvent) {
		parts = append(parts, "t attendance", "e edit", "x delete")
	}
	return strings.Join(parts, "  ")
}

func (model Model) viewAttendance() string {
	report := model.detail.attendance
	var builder strings.Builder
	builder.WriteString(lipgloss.NewStyle().
		Foreground(model.theme.Accent).
		Bold(true).
		Render("Attendance") + "\n")
	builder.WriteString(fmt.Sprintf("total %d  attended %d  cancelled %d  waitlisted %d\n",
		report.Statistics.Total,
		report.Statistics.Attended,
		report.Statistics.Cancelled,
		report.Statistics.Waitlist))
	for _, entry := range report.Entries {
		builder.WriteString(fmt.Sprintf("  %-24s %-12s %s\n",
			truncate(entry.Name, 24), entry.Status, entry.Email))
	}
	builder.WriteString(lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("Esc close"))
	return builder.String()
}
