// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// Package registration tracks the user's membership in event attendee
// sets and serializes the register/unregister mutations against them.
// The backend's attendee list is the source of truth; the tracker is
// a cache that is replaced wholesale from each successful response,
// never edited locally.
package registration

import (
	"sync"

	"github.com/campusvibes/campusvibes/lib/api"
)

// State is the user's registration standing for one event.
type State int

const (
	// StateUnknown means no attendee list has been seen yet.
	StateUnknown State = iota
	// StateNotRegistered means the user is absent from the list.
	StateNotRegistered
	// StateRegistered means the user is present in the list.
	StateRegistered
)

// Kind is the direction of an in-flight mutation.
type Kind int

const (
	// KindRegister joins the attendee set.
	KindRegister Kind = iota + 1
	// KindUnregister leaves it.
	KindUnregister
)

type entry struct {
	state     State
	attendees []api.Attendee
	inFlight  Kind // 0 when idle
}

// Tracker holds per-event registration state. At most one mutation
// may be in flight per event; Begin rejects a second until the first
// resolves or fails.
type Tracker struct {
	mutex  sync.Mutex
	selfID string
	events map[string]*entry
}

// NewTracker returns a tracker for the signed-in user.
func NewTracker(selfID string) *Tracker {
	return &Tracker{
		selfID: selfID,
		events: make(map[string]*entry),
	}
}

func (tracker *Tracker) entry(eventID string) *entry {
	e, ok := tracker.events[eventID]
	if !ok {
		e = &entry{}
		tracker.events[eventID] = e
	}
	return e
}

// State returns the user's standing for an event.
func (tracker *Tracker) State(eventID string) State {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	if e, ok := tracker.events[eventID]; ok {
		return e.state
	}
	return StateUnknown
}

// Attendees returns the cached attendee list for an event.
func (tracker *Tracker) Attendees(eventID string) []api.Attendee {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	if e, ok := tracker.events[eventID]; ok {
		return e.attendees
	}
	return nil
}

// Busy reports whether a mutation is in flight for an event.
func (tracker *Tracker) Busy(eventID string) bool {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	if e, ok := tracker.events[eventID]; ok {
		return e.inFlight != 0
	}
	return false
}

// Begin claims the mutation slot for an event. It returns false when
// another mutation is already in flight; the caller must not issue
// the request in that case.
func (tracker *Tracker) Begin(eventID string, kind Kind) bool {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	e := tracker.entry(eventID)
	if e.inFlight != 0 {
		return false
	}
	e.inFlight = kind
	return true
}

// Resolve completes an in-flight mutation (or applies a fresh detail
// fetch) with the server's attendee list. The cache is replaced and
// the state derived from the user's membership in the new list, so a
// response that disagrees with the request direction still wins.
func (tracker *Tracker) Resolve(eventID string, attendees []api.Attendee) State {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	e := tracker.entry(eventID)
	e.inFlight = 0
	e.attendees = attendees
	e.state = StateNotRegistered
	for _, attendee := range attendees {
		if attendee.ID == tracker.selfID {
			e.state = StateRegistered
			break
		}
	}
	return e.state
}

// Fail releases the mutation slot after a request error. The cached
// list and state are left as they were.
func (tracker *Tracker) Fail(eventID string) {
	tracker.mutex.Lock()
	defer tracker.mutex.Unlock()
	if e, ok := tracker.events[eventID]; ok {
		e.inFlight = 0
	}
}
