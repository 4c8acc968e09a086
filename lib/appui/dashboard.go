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
	"github.com/campusvibes/campusvibes/lib/session"
	"github.com/campusvibes/campusvibes/lib/tui"
)

// dashboardState lists the user's own events: created events for a
// campus account, registered events for a student.
type dashboardState struct {
	loading bool
	err     error
	events  []api.Event
	cursor  int
}

func newDashboardState() dashboardState {
	return dashboardState{loading: true}
}

func (model *Model) loadDashboard() tea.Cmd {
	seq := model.seq
	backend := model.backend
	role := model.session.Role
	return func() tea.Msg {
		var events []api.Event
		var err error
		if role == session.RoleCampus {
			events, err = backend.CreatedEvents(context.Background())
		} else {
			events, err = backend.RegisteredEvents(context.Background())
		}
		return dashboardLoadedMsg{seq: seq, events: events, err: err}
	}
}

func (model Model) handleDashboardLoaded(message dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenDashboard {
		return model, nil
	}
	model.dashboard.loading = false
	model.dashboard.err = message.err
	model.dashboard.events = message.events
	if model.dashboard.cursor >= len(message.events) {
		model.dashboard.cursor = 0
	}
	return model, nil
}

func (model Model) updateDashboard(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	dashboard := &model.dashboard

	switch {
	case key.Matches(message, model.keys.Up):
		if dashboard.cursor > 0 {
			dashboard.cursor--
		}
		return model, nil

	case key.Matches(message, model.keys.Down):
		if dashboard.cursor < len(dashboard.events)-1 {
			dashboard.cursor++
		}
		return model, nil

	case key.Matches(message, model.keys.PageUp):
		dashboard.cursor -= listPageStride
		if dashboard.cursor < 0 {
			dashboard.cursor = 0
		}
		return model, nil

	case key.Matches(message, model.keys.PageDown):
		dashboard.cursor += listPageStride
		if dashboard.cursor >= len(dashboard.events) {
			dashboard.cursor = len(dashboard.events) - 1
		}
		if dashboard.cursor < 0 {
			dashboard.cursor = 0
		}
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		if len(dashboard.events) > 0 {
			return model.openDetail(dashboard.events[dashboard.cursor])
		}
		return model, nil

	case key.Matches(message, model.keys.NewEvent):
		if model.can(session.CapCreateEvent) {
			return model.openEventForm(nil)
		}
		return model, nil

	case key.Matches(message, model.keys.EditEvent):
		if model.can(session.CapCreateEvent) && len(dashboard.events) > 0 {
			event := dashboard.events[dashboard.cursor]
			return model.openEventForm(&event)
		}
		return model, nil

	case key.Matches(message, model.keys.Delete):
		if model.can(session.CapCreateEvent) && len(dashboard.events) > 0 {
			return model.deleteEvent(dashboard.events[dashboard.cursor])
		}
		return model, nil

	case key.Matches(message, model.keys.GoHome):
		if model.can(session.CapBrowseEvents) {
			command := model.navigate(ScreenHome)
			return model, command
		}
		return model, nil

	case key.Matches(message, model.keys.GoProfile):
		command := model.navigate(ScreenProfile)
		return model, command
	}
	return model, nil
}

func (model Model) deleteEvent(event api.Event) (tea.Model, tea.Cmd) {
	backend := model.backend
	eventID := event.ID
	return model, func() tea.Msg {
		err := backend.DeleteEvent(context.Background(), eventID)
		return eventDeletedMsg{eventID: eventID, err: err}
	}
}

func (model Model) handleEventDeleted(message eventDeletedMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}

	// Deleting from the detail screen returns to the dashboard, which
	// refetches its list.
	if model.screen == ScreenDetail && model.detail.event.ID == message.eventID {
		navigateCommand := model.navigate(ScreenDashboard)
		noticeCommand := model.setNotice("event deleted", false)
		return model, tea.Batch(navigateCommand, noticeCommand)
	}

	// Drop the event from the dashboard list if it is still shown.
	if model.screen == ScreenDashboard {
		events := model.dashboard.events
		for i := range events {
			if events[i].ID == message.eventID {
				model.dashboard.events = append(events[:i], events[i+1:]...)
				break
			}
		}
		if model.dashboard.cursor >= len(model.dashboard.events) && model.dashboard.cursor > 0 {
			model.dashboard.cursor--
		}
	}
	command := model.setNotice("event deleted", false)
	return model, command
}

func (model Model) viewDashboard() string {
	dashboard := model.dashboard

	title := "Registered events"
	if model.session.Role == session.RoleCampus {
		title = "Your events"
	}

	var builder strings.Builder
	builder.WriteString(lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render(title) + "\n\n")

	switch {
	case dashboard.loading:
		builder.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("loading...") + "\n")
	case dashboard.err != nil:
		builder.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.ErrorText).
			Render(dashboard.err.Error()) + "\n")
	case len(dashboard.events) == 0:
		builder.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("nothing here yet") + "\n")
	default:
		// Window the list to the viewport and keep the cursor visible.
		visible := model.height - 8
		if visible < 5 {
			visible = 5
		}
		offset := 0
		if dashboard.cursor >= visible {
			offset = dashboard.cursor - visible + 1
		}
		end := offset + visible
		if end > len(dashboard.events) {
			end = len(dashboard.events)
		}

		var rows []string
		for i := offset; i < end; i++ {
			event := dashboard.events[i]
			line := fmt.Sprintf("  %-32s %-16s %s",
				truncate(event.Title, 32), truncate(event.DateTime, 16), event.Status)
			style := lipgloss.NewStyle().Foreground(model.theme.NormalText)
			if i == dashboard.cursor {
				style = lipgloss.NewStyle().
					Foreground(model.theme.SelectedForeground).
					Background(model.theme.SelectedBackground)
			}
			rows = append(rows, style.Render(line))
		}

		list := strings.Join(rows, "\n")
		if len(dashboard.events) > visible {
			bar := tui.RenderScrollbar(model.theme, len(rows),
				len(dashboard.events), visible, offset, true)
			list = lipgloss.JoinHorizontal(lipgloss.Top, list, " ", bar)
		}
		builder.WriteString(list + "\n")
	}

	help := []string{"Enter open"}
	if model.can(session.CapCreateEvent) {
		help = append(help, "n new", "e edit", "x delete")
	}
	builder.WriteString("\n" + lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(strings.Join(help, "  ")))
	return builder.String()
}
