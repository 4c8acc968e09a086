// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of account kinds the backend issues. The wire
// format is a string, but unknown values are rejected at the decode
// boundary so the rest of the client never branches on free-form
// strings.
type Role string

const (
	// RoleStudent browses and registers for events.
	RoleStudent Role = "student"
	// RoleCampus organizes events: create, edit, delete, attendance.
	RoleCampus Role = "campus"
)

// ParseRole validates a wire-format role string.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleStudent, RoleCampus:
		return Role(value), nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// UnmarshalJSON rejects role strings outside the closed set.
func (role *Role) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseRole(value)
	if err != nil {
		return err
	}
	*role = parsed
	return nil
}

// MarshalJSON emits the wire-format role string.
func (role Role) MarshalJSON() ([]byte, error) {
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}
	return json.Marshal(string(role))
}

// Capability is an action the current session's role permits. The
// navigation bar renders only the links the capability set contains.
type Capability int

const (
	// CapBrowseEvents shows the events browsing screen (students).
	CapBrowseEvents Capability = iota
	// CapCreateEvent shows the event creation screen (organizers).
	CapCreateEvent
)

// Dashboard routes, as the backend names them in redirect targets.
const (
	UserDashboardRoute   = "/user-dashboard"
	CampusDashboardRoute = "/campus-dashboard"
)

// Capabilities returns the action set for a role. The UI derives every
// role-gated link from this; nothing else branches on the role.
func Capabilities(role Role) []Capability {
	switch role {
	case RoleStudent:
		return []Capability{CapBrowseEvents}
	case RoleCampus:
		return []Capability{CapCreateEvent}
	default:
		return nil
	}
}

// DashboardRoute returns the dashboard destination for a role.
func DashboardRoute(role Role) string {
	if role == RoleCampus {
		return CampusDashboardRoute
	}
	return UserDashboardRoute
}
