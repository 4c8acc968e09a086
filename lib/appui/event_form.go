// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campusvibes/campusvibes/lib/api"
	"github.com/campusvibes/campusvibes/lib/tui"
)

// eventCategories are the category picker options.
var eventCategories = []tui.DropdownOption{
	{Label: "Technical", Value: "technical"},
	{Label: "Cultural", Value: "cultural"},
	{Label: "Sports", Value: "sports"},
	{Label: "Workshop", Value: "workshop"},
	{Label: "Seminar", Value: "seminar"},
	{Label: "Other", Value: "other"},
}

// eventStatuses are the status picker options, shown on edit only.
var eventStatuses = []tui.DropdownOption{
	{Label: "Upcoming", Value: "upcoming"},
	{Label: "Ongoing", Value: "ongoing"},
	{Label: "Completed", Value: "completed"},
	{Label: "Cancelled", Value: "cancelled"},
}

// eventFormState is the create/edit event form. editingID is empty
// for a new event. The description lives in its own text modal; the
// category and status fields open dropdown overlays.
type eventFormState struct {
	editingID      string
	existingImages []api.Image
	returnTo       Screen

	form        form
	description string
	category    string
	status      string

	modal    *tui.TextModal
	dropdown *tui.DropdownOverlay
	pending  bool
}

// openEventForm enters the form screen, prefilled when editing.
func (model Model) openEventForm(editing *api.Event) (tea.Model, tea.Cmd) {
	origin := model.screen
	model.seq++
	model.screen = ScreenEventForm

	state := eventFormState{
		returnTo: origin,
		form: newForm(
			textField("Title", ""),
			textField("Location", ""),
			textField("Date/time", "2026-09-12T18:00"),
			textField("Capacity", "100"),
			textField("Deadline", "2026-09-10T23:59"),
			textField("Price", "0"),
			textField("Pin code", ""),
			textField("Campus", ""),
			textField("Images", "poster.png, banner.jpg"),
		),
	}

	if editing != nil {
		state.editingID = editing.ID
		state.existingImages = editing.Images
		state.description = editing.Description
		state.category = editing.Category
		state.status = editing.Status
		state.form.SetValue("Title", editing.Title)
		state.form.SetValue("Location", editing.Location)
		state.form.SetValue("Date/time", editing.DateTime)
		state.form.SetValue("Capacity", editing.Capacity)
		state.form.SetValue("Deadline", editing.RegistrationDeadline)
		state.form.SetValue("Price", editing.Price)
		state.form.SetValue("Pin code", editing.PinCode)
		state.form.SetValue("Campus", editing.Campus)
	}

	model.eventForm = state
	return model, nil
}

func (model Model) updateEventForm(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.eventForm

	if state.modal != nil {
		switch message.Type {
		case tea.KeyEsc:
			state.modal = nil
		case tea.KeyCtrlD:
			state.description = state.modal.Value()
			state.modal = nil
		default:
			state.modal.Update(message)
		}
		return model, nil
	}

	if state.dropdown != nil {
		switch message.Type {
		case tea.KeyEsc:
			state.dropdown = nil
		case tea.KeyUp:
			state.dropdown.MoveUp()
		case tea.KeyDown:
			state.dropdown.MoveDown()
		case tea.KeyEnter:
			selected := state.dropdown.Selected()
			if state.dropdown.Field == "category" {
				state.category = selected.Value
			} else {
				state.status = selected.Value
			}
			state.dropdown = nil
		}
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Back):
		command := model.navigate(state.returnTo)
		return model, command

	case message.Type == tea.KeyCtrlE:
		modal := tui.NewTextModal("Event Description", state.description, model.theme)
		state.modal = &modal
		return model, nil

	case message.String() == "ctrl+g":
		state.dropdown = &tui.DropdownOverlay{
			Options: eventCategories,
			Field:   "category",
		}
		return model, nil

	case message.String() == "ctrl+t" && state.editingID != "":
		state.dropdown = &tui.DropdownOverlay{
			Options: eventStatuses,
			Field:   "status",
		}
		return model, nil

	case message.String() == "ctrl+s":
		return model.submitEventForm()

	case key.Matches(message, model.keys.NextField), message.Type == tea.KeyEnter:
		state.form.Next()
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		state.form.Prev()
		return model, nil
	}

	command := state.form.Update(message)
	return model, command
}

func (model Model) submitEventForm() (tea.Model, tea.Cmd) {
	state := &model.eventForm
	if state.pending {
		return model, nil
	}

	draft := api.EventDraft{
		Title:                state.form.Value("Title"),
		Description:          state.description,
		Location:             state.form.Value("Location"),
		DateTime:             state.form.Value("Date/time"),
		Organizer:            model.session.Name,
		Category:             state.category,
		Capacity:             state.form.Value("Capacity"),
		RegistrationDeadline: state.form.Value("Deadline"),
		Price:                state.form.Value("Price"),
		Status:               state.status,
		PinCode:              state.form.Value("Pin code"),
		Campus:               state.form.Value("Campus"),
	}
	if draft.Title == "" {
		command := model.setNotice("title is required", true)
		return model, command
	}
	if draft.Category == "" {
		command := model.setNotice("pick a category (C-g)", true)
		return model, command
	}

	var imagePaths []string
	for _, path := range strings.Split(state.form.Value("Images"), ",") {
		if path = strings.TrimSpace(path); path != "" {
			imagePaths = append(imagePaths, path)
		}
	}

	state.pending = true
	model.seq++
	seq := model.seq
	backend := model.backend
	editingID := state.editingID
	existingImages := state.existingImages
	return model, func() tea.Msg {
		var event *api.Event
		var err error
		if editingID == "" {
			event, err = backend.CreateEvent(context.Background(), draft, imagePaths)
		} else {
			event, err = backend.UpdateEvent(context.Background(), editingID, draft, existingImages, imagePaths)
		}
		return eventSavedMsg{seq: seq, event: event, err: err}
	}
}

func (model Model) handleEventSaved(message eventSavedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenEventForm {
		return model, nil
	}
	model.eventForm.pending = false
	if message.err != nil {
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}

	verb := "created"
	if model.eventForm.editingID != "" {
		verb = "updated"
	}
	notice := model.setNotice("event "+verb, false)
	return model, tea.Batch(notice, model.navigate(ScreenDashboard))
}

func (model Model) viewEventForm() string {
	state := model.eventForm

	title := "New event"
	if state.editingID != "" {
		title = "Edit event"
	}

	var builder strings.Builder
	builder.WriteString(lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render(title) + "\n\n")

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	builder.WriteString(faint.Render("Category  ") + displayOr(state.category, "(C-g to pick)") + "\n")
	if state.editingID != "" {
		builder.WriteString(faint.Render("Status    ") + displayOr(state.status, "(C-t to pick)") + "\n")
	}
	description := displayOr(firstLine(state.description), "(C-e to edit)")
	builder.WriteString(faint.Render("About     ") + description + "\n\n")

	builder.WriteString(state.form.Render(model.theme))

	if len(state.existingImages) > 0 {
		builder.WriteString(faint.Render("Keeping ") +
			faint.Render(strings.Join(imageURLs(state.existingImages), ", ")) + "\n")
	}

	builder.WriteString("\n" + lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("C-s save  C-e description  C-g category  Esc cancel"))
	if state.pending {
		builder.WriteString("\n" + faint.Render("saving..."))
	}

	view := builder.String()

	if state.modal != nil {
		lines, anchorX, anchorY := state.modal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	if state.dropdown != nil {
		view = tui.SpliceOverlay(view, state.dropdown.Render(model.theme),
			state.dropdown.AnchorX, state.dropdown.AnchorY)
	}
	return view
}

func displayOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i] + "…"
	}
	return text
}

func imageURLs(images []api.Image) []string {
	urls := make([]string, 0, len(images))
	for _, image := range images {
		urls = append(urls, image.URL)
	}
	return urls
}
