// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// resetState holds the two-step password reset: request a token by
// email, then submit the token with a new password.
type resetState struct {
	requested bool
	form      form
	pending   bool
}

func newResetState() resetState {
	return resetState{
		form: newForm(textField("Email", "you@campus.edu")),
	}
}

func (model Model) updateReset(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.seq++
		model.screen = ScreenSignin
		model.signin = newSigninState()
		return model, nil

	case key.Matches(message, model.keys.NextField):
		model.reset.form.Next()
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		model.reset.form.Prev()
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		return model.submitReset()
	}

	command := model.reset.form.Update(message)
	return model, command
}

func (model Model) submitReset() (tea.Model, tea.Cmd) {
	if model.reset.pending {
		return model, nil
	}

	backend := model.backend
	if !model.reset.requested {
		email := model.reset.form.Value("Email")
		if email == "" {
			command := model.setNotice("email is required", true)
			return model, command
		}
		model.reset.pending = true
		model.seq++
		seq := model.seq
		return model, func() tea.Msg {
			_, err := backend.RequestPasswordReset(context.Background(), email)
			return resetRequestedMsg{seq: seq, err: err}
		}
	}

	token := model.reset.form.Value("Reset token")
	password := model.reset.form.Value("New password")
	if token == "" || password == "" {
		command := model.setNotice("reset token and new password are required", true)
		return model, command
	}
	model.reset.pending = true
	model.seq++
	seq := model.seq
	return model, func() tea.Msg {
		_, err := backend.ResetPassword(context.Background(), token, password)
		return resetDoneMsg{seq: seq, err: err}
	}
}

func (model Model) handleResetRequested(message resetRequestedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenReset {
		return model, nil
	}
	model.reset.pending = false
	if message.err != nil {
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}
	model.reset.requested = true
	model.reset.form = newForm(
		textField("Reset token", ""),
		passwordField("New password"),
	)
	command := model.setNotice("reset instructions sent", false)
	return model, command
}

func (model Model) handleResetDone(message resetDoneMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenReset {
		return model, nil
	}
	model.reset.pending = false
	if message.err != nil {
		command := model.setNotice(message.err.Error(), true)
		return model, command
	}
	model.seq++
	model.screen = ScreenSignin
	model.signin = newSigninState()
	command := model.setNotice("password updated, sign in with the new password", false)
	return model, command
}

func (model Model) viewReset() string {
	heading := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render("Reset password")

	step := "Enter the email on the account."
	if model.reset.requested {
		step = "Enter the token from the email and a new password."
	}

	help := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("Enter submit  Esc back to sign in")

	body := heading + "\n\n" + step + "\n\n" +
		model.reset.form.Render(model.theme) + "\n" + help
	if model.reset.pending {
		body += "\n" + lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("working...")
	}
	return body
}
