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
	"github.com/campusvibes/campusvibes/lib/session"
)

// profileState is the details form, student or campus shaped
// depending on the signed-in role.
type profileState struct {
	role    session.Role
	form    form
	loading bool
	pending bool
}

func newProfileState(role session.Role) profileState {
	if role == session.RoleCampus {
		return profileState{
			role: role,
			form: newForm(
				textField("Name", ""),
				textField("Description", ""),
				textField("City", ""),
				textField("State", ""),
				textField("Pin code", ""),
				textField("Phone", ""),
				textField("Alternate email", ""),
			),
		}
	}
	return profileState{
		role:    role,
		loading: true,
		form: newForm(
			textField("Name", ""),
			textField("City", ""),
			textField("State", ""),
			textField("Date of birth", "2004-01-31"),
			textField("Gender", ""),
			textField("Interests", "music, tech"),
			textField("Campus", ""),
			textField("Passing year", "2027"),
			textField("Phone", ""),
			textField("Alternate email", ""),
			textField("Pin code", ""),
		),
	}
}

// loadProfile fetches the stored student profile to prefill the form.
// Campus accounts have no fetch endpoint; their form starts blank.
func (model *Model) loadProfile() tea.Cmd {
	if model.session.Role == session.RoleCampus {
		model.profile.loading = false
		return nil
	}
	seq := model.seq
	backend := model.backend
	userID := model.session.UserID
	return func() tea.Msg {
		details, err := backend.UserProfile(context.Background(), userID)
		return profileLoadedMsg{seq: seq, details: details, err: err}
	}
}

func (model Model) handleProfileLoaded(message profileLoadedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenProfile {
		return model, nil
	}
	model.profile.loading = false
	if message.err != nil {
		// A profile that was never submitted is not an error worth
		// blocking the form over.
		if api.CategoryOf(message.err) == api.CategoryNotFound {
			return model, nil
		}
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}

	details := message.details
	form := &model.profile.form
	form.SetValue("Name", details.Name)
	form.SetValue("City", details.City)
	form.SetValue("State", details.State)
	form.SetValue("Date of birth", details.DateOfBirth)
	form.SetValue("Gender", details.Gender)
	form.SetValue("Interests", strings.Join(details.Interests, ", "))
	form.SetValue("Campus", details.Education.Campus)
	form.SetValue("Passing year", details.Education.PassingYear)
	form.SetValue("Phone", details.Contact.Phone)
	form.SetValue("Alternate email", details.Contact.AlternateEmail)
	form.SetValue("Pin code", details.PinCode)
	return model, nil
}

func (model Model) updateProfile(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		if model.can(session.CapBrowseEvents) {
			command := model.navigate(ScreenHome)
			return model, command
		}
		command := model.navigate(ScreenDashboard)
		return model, command

	case message.String() == "ctrl+s":
		return model.submitProfile()

	case key.Matches(message, model.keys.NextField), message.Type == tea.KeyEnter:
		model.profile.form.Next()
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		model.profile.form.Prev()
		return model, nil
	}

	command := model.profile.form.Update(message)
	return model, command
}

func (model Model) submitProfile() (tea.Model, tea.Cmd) {
	state := &model.profile
	if state.pending {
		return model, nil
	}
	if state.form.Value("Name") == "" {
		command := model.setNotice("name is required", true)
		return model, command
	}

	state.pending = true
	model.seq++
	seq := model.seq
	backend := model.backend

	if state.role == session.RoleCampus {
		details := api.CampusDetails{
			Name:        state.form.Value("Name"),
			Description: state.form.Value("Description"),
			City:        state.form.Value("City"),
			State:       state.form.Value("State"),
			PinCode:     state.form.Value("Pin code"),
			Contact: api.Contact{
				Phone:          state.form.Value("Phone"),
				AlternateEmail: state.form.Value("Alternate email"),
			},
		}
		return model, func() tea.Msg {
			err := backend.SubmitCampusDetails(context.Background(), details)
			return profileSavedMsg{seq: seq, err: err}
		}
	}

	var interests []string
	for _, interest := range strings.Split(state.form.Value("Interests"), ",") {
		if interest = strings.TrimSpace(interest); interest != "" {
			interests = append(interests, interest)
		}
	}
	details := api.UserDetails{
		Name:        state.form.Value("Name"),
		City:        state.form.Value("City"),
		State:       state.form.Value("State"),
		DateOfBirth: state.form.Value("Date of birth"),
		Gender:      state.form.Value("Gender"),
		Interests:   interests,
		Education: api.Education{
			Campus:      state.form.Value("Campus"),
			PassingYear: state.form.Value("Passing year"),
		},
		Contact: api.Contact{
			Phone:          state.form.Value("Phone"),
			AlternateEmail: state.form.Value("Alternate email"),
		},
		PinCode: state.form.Value("Pin code"),
	}
	return model, func() tea.Msg {
		err := backend.SubmitUserDetails(context.Background(), details)
		return profileSavedMsg{seq: seq, err: err}
	}
}

func (model Model) handleProfileSaved(message profileSavedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenProfile {
		return model, nil
	}
	model.profile.pending = false
	if message.err != nil {
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}
	command := model.setNotice("profile saved", false)
	return model, command
}

func (model Model) viewProfile() string {
	state := model.profile

	title := "Your details"
	if state.role == session.RoleCampus {
		title = "Campus details"
	}

	var builder strings.Builder
	builder.WriteString(lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render(title) + "\n\n")

	if state.loading {
		builder.WriteString(lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("loading...") + "\n\n")
	}

	builder.WriteString(state.form.Render(model.theme))
	builder.WriteString("\n" + lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("C-s save  Esc back"))
	if state.pending {
		builder.WriteString("\n" + lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("saving..."))
	}
	return builder.String()
}
