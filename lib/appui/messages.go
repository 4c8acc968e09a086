// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"github.com/campusvibes/campusvibes/lib/api"
)

// Asynchronous backend calls deliver their results through the
// bubbletea message loop as the typed messages below. Each fetch
// message carries the request sequence number issued when the call
// started; the model discards results whose sequence no longer
// matches, so a response that arrives after the user has navigated
// away cannot overwrite the current screen.

// otpDispatchedMsg is sent when the signup OTP request completes.
type otpDispatchedMsg struct {
	seq int
	err error
}

// authResultMsg is sent when a signup confirmation or signin
// completes.
type authResultMsg struct {
	seq    int
	result *api.AuthResponse
	err    error
}

// resetRequestedMsg is sent when a password reset request completes.
type resetRequestedMsg struct {
	seq int
	err error
}

// resetDoneMsg is sent when a password reset submission completes.
type resetDoneMsg struct {
	seq int
	err error
}

// sectionLoadedMsg is sent when one curated section finishes loading.
type sectionLoadedMsg struct {
	seq     int
	section api.Section
	events  []api.Event
	err     error
}

// searchResultMsg is sent when a search completes.
type searchResultMsg struct {
	seq    int
	query  string
	events []api.Event
	err    error
}

// eventLoadedMsg is sent when an event detail fetch completes.
type eventLoadedMsg struct {
	seq    int
	detail *api.EventDetail
	err    error
}

// registrationResultMsg is sent when a register or unregister call
// completes. attendees is the server's replacement list on success.
type registrationResultMsg struct {
	eventID   string
	attendees []api.Attendee
	err       error
}

// attendanceLoadedMsg is sent when an attendance report fetch
// completes.
type attendanceLoadedMsg struct {
	seq    int
	report *api.AttendanceReport
	err    error
}

// dashboardLoadedMsg is sent when a dashboard event list fetch
// completes.
type dashboardLoadedMsg struct {
	seq    int
	events []api.Event
	err    error
}

// eventSavedMsg is sent when an event create or update completes.
type eventSavedMsg struct {
	seq   int
	event *api.Event
	err   error
}

// eventDeletedMsg is sent when an event delete completes.
type eventDeletedMsg struct {
	eventID string
	err     error
}

// profileLoadedMsg is sent when a profile fetch completes.
type profileLoadedMsg struct {
	seq     int
	details *api.UserDetails
	err     error
}

// profileSavedMsg is sent when a profile submission completes.
type profileSavedMsg struct {
	seq int
	err error
}

// noticeFadeMsg is sent after a delay to clear the transient notice
// from the status bar.
type noticeFadeMsg struct {
	seq int
}
