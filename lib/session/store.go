// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the client's authenticated identity: who is
// signed in, their role, and the bearer credential proving it. The
// session is the only cross-screen mutable state in the client; it is
// read by many screens and written only by the auth flow (sign-in and
// signup completion) and sign-out.
//
// A Session exists if and only if a credential is held. Absence means
// unauthenticated. The session persists across runs in a JSON file
// (owner-only permissions, like SSH keys: authenticate once, then
// access is seamless). There is no client-side expiry check; an
// expired credential is discovered when a call fails with an auth
// error.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Session is the client-held record of the authenticated identity and
// its bearer credential.
type Session struct {
	// UserID is the backend's identifier for the account.
	UserID string `json:"user_id"`

	// Name is the display name (student name or campus name).
	Name string `json:"name"`

	// Role determines which screens and actions are available.
	Role Role `json:"role"`

	// Token is the bearer credential sent on every authenticated call.
	Token string `json:"token"`
}

// Change is delivered to subscribers when the session is set or
// cleared. Session is nil after sign-out.
type Change struct {
	Session *Session
}

// FilePath returns the path to the persisted session file. Checks the
// CAMPUSVIBES_SESSION_FILE environment variable first, then falls back
// to ~/.config/campusvibes/session.json.
func FilePath() string {
	if envPath := os.Getenv("CAMPUSVIBES_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback; this should rarely happen.
			return filepath.Join("/tmp", "campusvibes-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "campusvibes", "session.json")
}

// Store owns the current session and its persistence. All methods are
// safe for concurrent use; reads always observe a complete session,
// never a half-updated one.
type Store struct {
	mutex       sync.RWMutex
	path        string
	current     *Session
	subscribers []chan Change
}

// Open creates a Store persisting to the given path and loads any
// existing session from disk. A missing file is the unauthenticated
// state, not an error; a corrupt or incomplete file is an error so the
// caller can surface it rather than silently signing the user out.
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var loaded Session
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	if loaded.UserID == "" {
		return nil, fmt.Errorf("session file %s has no user_id", path)
	}
	if loaded.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", path)
	}

	store.current = &loaded
	return store, nil
}

// Current returns a copy of the session. The second return is false
// when no session is held (unauthenticated).
func (store *Store) Current() (Session, bool) {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	if store.current == nil {
		return Session{}, false
	}
	return *store.current, true
}

// Token implements the api.TokenSource contract: the bearer credential
// for authenticated calls, or "" when unauthenticated.
func (store *Store) Token() string {
	store.mutex.RLock()
	defer store.mutex.RUnlock()
	if store.current == nil {
		return ""
	}
	return store.current.Token
}

// SetSession installs a new session, persists it, and notifies
// subscribers. The swap is atomic with respect to Current: no reader
// observes a partially written session.
func (store *Store) SetSession(newSession Session) error {
	if newSession.UserID == "" {
		return fmt.Errorf("session has no user id")
	}
	if newSession.Token == "" {
		return fmt.Errorf("session has no token")
	}
	if _, err := ParseRole(string(newSession.Role)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(&newSession, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}
	// The file carries an access token: owner-only read/write.
	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}

	store.mutex.Lock()
	installed := newSession
	store.current = &installed
	subscribers := store.subscribers
	store.mutex.Unlock()

	dispatch(subscribers, Change{Session: &installed})
	return nil
}

// Clear removes the session and its file, then notifies subscribers.
// Idempotent: clearing an absent session succeeds and still routes the
// notification, so sign-out always lands the UI in the signed-out
// state.
func (store *Store) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}

	store.mutex.Lock()
	store.current = nil
	subscribers := store.subscribers
	store.mutex.Unlock()

	dispatch(subscribers, Change{Session: nil})
	return nil
}

// Subscribe returns a channel that receives a Change whenever the
// session is set or cleared. The channel is buffered; a subscriber
// that falls behind misses intermediate changes and picks up current
// state from its next Current call.
func (store *Store) Subscribe() <-chan Change {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	channel := make(chan Change, 8)
	store.subscribers = append(store.subscribers, channel)
	return channel
}

// dispatch delivers a change to all subscribers without blocking.
func dispatch(subscribers []chan Change, change Change) {
	for _, subscriber := range subscribers {
		select {
		case subscriber <- change:
		default:
			// Subscriber buffer full: drop. State is re-read on the
			// next Current call.
		}
	}
}
