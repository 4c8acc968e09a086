// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

// Screen identifies which view is active. Navigation is a simple
// replace: there is no screen stack, and leaving a screen invalidates
// its outstanding fetches via the request sequence number.
type Screen int

const (
	// ScreenSignin is the email/password form, the entry point when
	// no session exists.
	ScreenSignin Screen = iota
	// ScreenSignup is the account form followed by the OTP step.
	ScreenSignup
	// ScreenReset is the password reset request and submission form.
	ScreenReset
	// ScreenHome is the curated event sections and search.
	ScreenHome
	// ScreenDetail is a single event with its attendees.
	ScreenDetail
	// ScreenDashboard lists the user's own events: created events
	// for campus accounts, registered events for students.
	ScreenDashboard
	// ScreenEventForm is the create/edit event form.
	ScreenEventForm
	// ScreenProfile is the student or campus details form.
	ScreenProfile
)

func (screen Screen) String() string {
	switch screen {
	case ScreenSignin:
		return "signin"
	case ScreenSignup:
		return "signup"
	case ScreenReset:
		return "reset"
	case ScreenHome:
		return "home"
	case ScreenDetail:
		return "detail"
	case ScreenDashboard:
		return "dashboard"
	case ScreenEventForm:
		return "event-form"
	case ScreenProfile:
		return "profile"
	}
	return "unknown"
}
