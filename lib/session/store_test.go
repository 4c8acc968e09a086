// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "campusvibes", "session.json")
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	store, err := Open(testPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Error("missing file should open unauthenticated")
	}
	if store.Token() != "" {
		t.Error("unauthenticated store should return an empty token")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := testPath(t)
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	saved := Session{UserID: "u1", Name: "Ana", Role: RoleStudent, Token: "tok-abc"}
	if err := store.SetSession(saved); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	// A fresh store over the same path sees the signed-in session.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	current, ok := reopened.Current()
	if !ok {
		t.Fatal("reopened store should be authenticated")
	}
	if current != saved {
		t.Errorf("session = %+v, want %+v", current, saved)
	}
	if reopened.Token() != "tok-abc" {
		t.Errorf("Token = %q, want tok-abc", reopened.Token())
	}
}

func TestSetSessionValidates(t *testing.T) {
	t.Parallel()

	store, err := Open(testPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	cases := []struct {
		name    string
		session Session
	}{
		{"missing user", Session{Role: RoleStudent, Token: "t"}},
		{"missing token", Session{UserID: "u1", Role: RoleStudent}},
		{"bad role", Session{UserID: "u1", Role: "admin", Token: "t"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := store.SetSession(c.session); err == nil {
				t.Error("SetSession should reject the session")
			}
		})
	}
}

func TestOpenCorruptFile(t *testing.T) {
	t.Parallel()

	path := testPath(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("corrupt session file should fail Open")
	}
}

func TestClearIdempotent(t *testing.T) {
	t.Parallel()

	path := testPath(t)
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.SetSession(Session{UserID: "u1", Role: RoleCampus, Token: "t"}); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Error("store should be unauthenticated after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}

	// Clearing again is a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestSubscribeNotifies(t *testing.T) {
	t.Parallel()

	store, err := Open(testPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	changes := store.Subscribe()

	if err := store.SetSession(Session{UserID: "u1", Role: RoleStudent, Token: "t"}); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	change := <-changes
	if change.Session == nil || change.Session.UserID != "u1" {
		t.Errorf("change = %+v, want session for u1", change)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	change = <-changes
	if change.Session != nil {
		t.Errorf("change = %+v, want nil session after Clear", change)
	}
}

func TestFilePathOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv("CAMPUSVIBES_SESSION_FILE", override)
	if got := FilePath(); got != override {
		t.Errorf("FilePath = %q, want %q", got, override)
	}
}
