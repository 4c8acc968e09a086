// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the CampusVibes client. Built on bubbletea (Elm architecture), these
// components handle common patterns: the color theme, dropdown
// overlays, modal text editing, scrollbars, and ANSI-aware overlay
// splicing.
//
// The application screens in lib/appui import this package for
// consistent look and behavior; this package knows nothing about
// events, sessions, or the backend.
package tui
