// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// Package appui implements the CampusVibes terminal application: a
// bubbletea model covering authentication (signin, signup with email
// verification, password reset), the curated event sections with
// search, event detail with registration, role dashboards, event
// create/edit, and the profile forms.
//
// All backend access goes through the Backend interface so tests can
// drive the model against a fake. Every asynchronous fetch carries
// the request sequence number current when it was issued; navigation
// bumps the sequence, so late responses from an abandoned screen are
// discarded on arrival.
package appui
