// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// Package authflow holds the client-side state machines for signup
// and credential entry. The backend owns all verification; this
// package only sequences the local steps and guards the invariants
// around them, most importantly that a completed OTP entry is
// confirmed with the backend exactly once.
package authflow

import (
	"strings"

	"github.com/campusvibes/campusvibes/lib/session"
)

// Phase is the current step of the signup flow.
type Phase int

const (
	// PhaseForm is the account form: role, name, email, password.
	PhaseForm Phase = iota
	// PhaseOTP is the verification step after the form is submitted
	// and the backend has dispatched a code to the email address.
	PhaseOTP
	// PhaseDone means the backend confirmed the signup.
	PhaseDone
)

// SignupDraft is the account form data. It survives a failed or
// cancelled OTP step so the user never retypes it.
type SignupDraft struct {
	Role     session.Role
	Name     string
	Email    string
	Password string
}

// Validate reports the first problem with the draft, or "" when the
// draft is submittable. Only emptiness is checked locally; the
// backend owns email shape and password strength.
func (draft SignupDraft) Validate() string {
	if draft.Role == "" {
		return "choose a role"
	}
	if strings.TrimSpace(draft.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(draft.Email) == "" {
		return "email is required"
	}
	if draft.Password == "" {
		return "password is required"
	}
	return ""
}

// Flow sequences the signup steps. The zero value starts at the form
// with an empty draft.
type Flow struct {
	phase Phase
	draft SignupDraft
	otp   *OTPEntry
	// failure holds the backend's rejection message after a failed
	// confirmation, shown on return to the form.
	failure string
}

// Phase returns the current step.
func (flow *Flow) Phase() Phase { return flow.phase }

// Draft returns the current form data.
func (flow *Flow) Draft() SignupDraft { return flow.draft }

// SetDraft replaces the form data. Only legal at the form step.
func (flow *Flow) SetDraft(draft SignupDraft) {
	if flow.phase == PhaseForm {
		flow.draft = draft
	}
}

// Failure returns the backend rejection from the last failed
// confirmation, or "".
func (flow *Flow) Failure() string { return flow.failure }

// OTP returns the active code entry, or nil outside the OTP step.
func (flow *Flow) OTP() *OTPEntry { return flow.otp }

// BeginOTP advances to the verification step after the backend
// accepted the draft's email and dispatched a code. A fresh entry is
// created each time so digits from an earlier attempt never leak in.
func (flow *Flow) BeginOTP() {
	flow.phase = PhaseOTP
	flow.otp = NewOTPEntry()
	flow.failure = ""
}

// Cancel abandons the verification step and returns to the form. The
// draft is preserved.
func (flow *Flow) Cancel() {
	if flow.phase != PhaseOTP {
		return
	}
	flow.phase = PhaseForm
	flow.otp = nil
}

// Fail records a backend rejection of the confirmation and returns to
// the form with the draft intact.
func (flow *Flow) Fail(message string) {
	flow.phase = PhaseForm
	flow.otp = nil
	flow.failure = message
}

// Finish marks the signup confirmed.
func (flow *Flow) Finish() {
	flow.phase = PhaseDone
	flow.otp = nil
	flow.failure = ""
}
