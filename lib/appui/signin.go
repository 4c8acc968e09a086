// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campusvibes/campusvibes/lib/api"
)

// signinState holds the email/password form.
type signinState struct {
	form    form
	pending bool
}

func newSigninState() signinState {
	return signinState{
		form: newForm(
			textField("Email", "you@campus.edu"),
			passwordField("Password"),
		),
	}
}

func (model Model) updateSignin(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.String() == "ctrl+n":
		model.seq++
		model.screen = ScreenSignup
		model.signup = newSignupState()
		return model, nil

	case message.String() == "ctrl+r":
		model.seq++
		model.screen = ScreenReset
		model.reset = newResetState()
		return model, nil

	case key.Matches(message, model.keys.NextField):
		model.signin.form.Next()
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		model.signin.form.Prev()
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		return model.submitSignin()
	}

	command := model.signin.form.Update(message)
	return model, command
}

func (model Model) submitSignin() (tea.Model, tea.Cmd) {
	if model.signin.pending {
		return model, nil
	}
	email := model.signin.form.Value("Email")
	password := model.signin.form.Value("Password")
	if email == "" || password == "" {
		command := model.setNotice("email and password are required", true)
		return model, command
	}

	model.signin.pending = true
	model.seq++
	seq := model.seq
	backend := model.backend
	return model, func() tea.Msg {
		result, err := backend.Signin(context.Background(), email, password)
		return authResultMsg{seq: seq, result: result, err: err}
	}
}

// handleAuthResult completes a signin or a signup confirmation,
// whichever screen is waiting on it.
func (model Model) handleAuthResult(message authResultMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq {
		return model, nil
	}

	switch model.screen {
	case ScreenSignin:
		model.signin.pending = false
		if message.err != nil {
			command := model.setNotice(signinFailureText(message.err), true)
			return model, command
		}
	case ScreenSignup:
		if message.err != nil {
			// The backend rejected the confirmation. Back to the
			// form with the draft intact; a fresh OTP is required.
			model.signup.flow.Fail(message.err.Error())
			return model, nil
		}
		model.signup.flow.Finish()
	default:
		return model, nil
	}

	result := message.result
	command := model.completeAuth(
		result.User.UserID,
		result.User.Name,
		result.User.Role,
		result.AccessToken,
		result.RedirectURL,
	)
	return model, command
}

// signinFailureText maps a signin error to its display text. Rejected
// credentials show a fixed message; transport problems show what went
// wrong.
func signinFailureText(err error) string {
	switch api.CategoryOf(err) {
	case api.CategoryAuth, api.CategoryRequest:
		return "Invalid credentials"
	}
	return err.Error()
}

func (model Model) viewSignin() string {
	heading := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render("Sign in")

	help := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("Enter sign in  C-n create account  C-r forgot password")

	body := heading + "\n\n" + model.signin.form.Render(model.theme) + "\n" + help
	if model.signin.pending {
		body += "\n" + lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("signing in...")
	}
	return body
}
