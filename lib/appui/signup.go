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
	"github.com/campusvibes/campusvibes/lib/authflow"
	"github.com/campusvibes/campusvibes/lib/session"
)

// signupState holds the account form and the signup flow state
// machine. The flow owns the OTP entry while verification is active.
type signupState struct {
	flow    authflow.Flow
	form    form
	role    session.Role
	pending bool
}

func newSignupState() signupState {
	return signupState{
		role: session.RoleStudent,
		form: newForm(
			textField("Name", ""),
			textField("Email", "you@campus.edu"),
			passwordField("Password"),
		),
	}
}

func (model Model) updateSignup(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.signup.flow.Phase() == authflow.PhaseOTP {
		return model.updateSignupOTP(message)
	}

	switch {
	case key.Matches(message, model.keys.Back):
		model.seq++
		model.screen = ScreenSignin
		model.signin = newSigninState()
		return model, nil

	case message.String() == "ctrl+t":
		if model.signup.role == session.RoleStudent {
			model.signup.role = session.RoleCampus
		} else {
			model.signup.role = session.RoleStudent
		}
		return model, nil

	case key.Matches(message, model.keys.NextField):
		model.signup.form.Next()
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		model.signup.form.Prev()
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		return model.submitSignupForm()
	}

	command := model.signup.form.Update(message)
	return model, command
}

// submitSignupForm validates the draft and asks the backend to send a
// verification code to the email address.
func (model Model) submitSignupForm() (tea.Model, tea.Cmd) {
	if model.signup.pending {
		return model, nil
	}

	draft := authflow.SignupDraft{
		Role:     model.signup.role,
		Name:     model.signup.form.Value("Name"),
		Email:    model.signup.form.Value("Email"),
		Password: model.signup.form.Value("Password"),
	}
	if problem := draft.Validate(); problem != "" {
		command := model.setNotice(problem, true)
		return model, command
	}
	model.signup.flow.SetDraft(draft)

	model.signup.pending = true
	model.seq++
	seq := model.seq
	backend := model.backend
	return model, func() tea.Msg {
		_, err := backend.SendOTP(context.Background(), draft.Email)
		return otpDispatchedMsg{seq: seq, err: err}
	}
}

func (model Model) handleOTPDispatched(message otpDispatchedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenSignup {
		return model, nil
	}
	model.signup.pending = false
	if message.err != nil {
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}
	model.signup.flow.BeginOTP()
	command := model.setNotice("verification code sent to "+model.signup.flow.Draft().Email, false)
	return model, command
}

// updateSignupOTP routes input to the six-cell code entry. When the
// final digit lands the code is consumed and the confirmation issued
// immediately; the one-shot consume guarantees a single request even
// if further keys arrive.
func (model Model) updateSignupOTP(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry := model.signup.flow.OTP()

	switch message.Type {
	case tea.KeyEsc:
		model.signup.flow.Cancel()
		return model, nil

	case tea.KeyBackspace:
		entry.Backspace()
		return model, nil

	case tea.KeyRunes:
		if len(message.Runes) > 1 {
			entry.Paste(string(message.Runes))
		} else {
			entry.Input(message.Runes[0])
		}

	case tea.KeyEnter:
		// Explicit submit. Consume below refuses incomplete or
		// already-consumed codes, so holding Enter is harmless.

	default:
		return model, nil
	}

	code, ok := entry.Consume()
	if !ok {
		return model, nil
	}
	return model.confirmSignup(code)
}

func (model Model) confirmSignup(code string) (tea.Model, tea.Cmd) {
	draft := model.signup.flow.Draft()
	request := api.SignupRequest{
		Email:    draft.Email,
		OTP:      code,
		Password: draft.Password,
		Name:     draft.Name,
		Role:     draft.Role,
	}

	model.seq++
	seq := model.seq
	backend := model.backend
	return model, func() tea.Msg {
		result, err := backend.ConfirmSignup(context.Background(), request)
		return authResultMsg{seq: seq, result: result, err: err}
	}
}

func (model Model) viewSignup() string {
	heading := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render("Create account")

	if model.signup.flow.Phase() == authflow.PhaseOTP {
		return heading + "\n\n" + model.viewOTPEntry()
	}

	roleLine := "Role: " + model.viewRoleChoice(session.RoleStudent) + "  " +
		model.viewRoleChoice(session.RoleCampus) + "  " +
		lipgloss.NewStyle().Foreground(model.theme.HelpText).Render("(C-t toggle)")

	help := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("Enter send code  Esc back to sign in")

	body := heading + "\n\n" + roleLine + "\n\n" +
		model.signup.form.Render(model.theme) + "\n" + help

	if failure := model.signup.flow.Failure(); failure != "" {
		body += "\n" + lipgloss.NewStyle().
			Foreground(model.theme.ErrorText).
			Render(failure)
	}
	if model.signup.pending {
		body += "\n" + lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("sending code...")
	}
	return body
}

func (model Model) viewRoleChoice(role session.Role) string {
	style := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	if model.signup.role == role {
		style = lipgloss.NewStyle().
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.Accent).
			Bold(true)
	}
	return style.Render(" " + string(role) + " ")
}

// viewOTPEntry renders the six digit cells with the focused cell
// accented.
func (model Model) viewOTPEntry() string {
	entry := model.signup.flow.OTP()

	cellStyle := lipgloss.NewStyle().
		Foreground(model.theme.NormalText).
		Border(lipgloss.NormalBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1)
	focusedStyle := cellStyle.BorderForeground(model.theme.Accent)

	cells := make([]string, 0, authflow.OTPLength)
	for i := 0; i < authflow.OTPLength; i++ {
		content := " "
		if digit := entry.Cell(i); digit != 0 {
			content = string(digit)
		}
		style := cellStyle
		if i == entry.Focus() && !entry.Consumed() {
			style = focusedStyle
		}
		cells = append(cells, style.Render(content))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	prompt := "Enter the 6-digit code sent to " + model.signup.flow.Draft().Email
	help := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("Esc back to form")

	lines := []string{prompt, "", row, "", help}
	if entry.Consumed() {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("verifying..."))
	}
	return strings.Join(lines, "\n")
}
