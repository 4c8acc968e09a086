// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"

	"github.com/campusvibes/campusvibes/lib/api"
)

// Backend is the slice of the API client the TUI depends on. Tests
// substitute a fake; production passes *api.Client.
type Backend interface {
	SendOTP(ctx context.Context, email string) (*api.OTPResponse, error)
	ConfirmSignup(ctx context.Context, request api.SignupRequest) (*api.AuthResponse, error)
	Signin(ctx context.Context, email, password string) (*api.AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) (*api.OTPResponse, error)
	ResetPassword(ctx context.Context, token, password string) (*api.OTPResponse, error)

	Events(ctx context.Context, section api.Section) ([]api.Event, error)
	SearchEvents(ctx context.Context, query string) ([]api.Event, error)
	Event(ctx context.Context, eventID string) (*api.EventDetail, error)
	Register(ctx context.Context, eventID string) ([]api.Attendee, error)
	Unregister(ctx context.Context, eventID string) ([]api.Attendee, error)
	Attendance(ctx context.Context, eventID string) (*api.AttendanceReport, error)
	CreatedEvents(ctx context.Context) ([]api.Event, error)
	RegisteredEvents(ctx context.Context) ([]api.Event, error)
	CreateEvent(ctx context.Context, draft api.EventDraft, imagePaths []string) (*api.Event, error)
	UpdateEvent(ctx context.Context, eventID string, draft api.EventDraft, existingImages []api.Image, imagePaths []string) (*api.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error

	UserProfile(ctx context.Context, userID string) (*api.UserDetails, error)
	SubmitUserDetails(ctx context.Context, details api.UserDetails) error
	SubmitCampusDetails(ctx context.Context, details api.CampusDetails) error
}

var _ Backend = (*api.Client)(nil)
