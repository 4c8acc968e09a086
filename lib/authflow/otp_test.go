// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package authflow

import "testing"

func TestOTPEntryTyping(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	for _, r := range "123456" {
		entry.Input(r)
	}
	if !entry.Complete() {
		t.Fatal("entry should be complete after six digits")
	}
	code, ok := entry.Consume()
	if !ok {
		t.Fatal("Consume should succeed on a complete entry")
	}
	if code != "123456" {
		t.Errorf("code = %q, want 123456", code)
	}
}

func TestOTPEntryRejectsNonDigits(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	entry.Input('a')
	entry.Input(' ')
	entry.Input('-')
	if entry.Focus() != 0 {
		t.Errorf("focus = %d, want 0 after rejected input", entry.Focus())
	}
	if entry.Cell(0) != 0 {
		t.Error("cell 0 should stay empty after rejected input")
	}
}

func TestOTPEntryLastCellOverwrite(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	for _, r := range "123456" {
		entry.Input(r)
	}
	entry.Input('9')
	if entry.Focus() != OTPLength-1 {
		t.Errorf("focus = %d, want %d", entry.Focus(), OTPLength-1)
	}
	code, _ := entry.Consume()
	if code != "123459" {
		t.Errorf("code = %q, want 123459", code)
	}
}

func TestOTPEntryBackspace(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	entry.Input('1')
	entry.Input('2')
	// Focus sits on empty cell 2: first backspace moves back and
	// clears cell 1, second clears cell 0.
	entry.Backspace()
	if entry.Cell(1) != 0 {
		t.Error("cell 1 should be cleared")
	}
	if entry.Focus() != 1 {
		t.Errorf("focus = %d, want 1", entry.Focus())
	}
	entry.Backspace()
	entry.Backspace()
	if entry.Cell(0) != 0 || entry.Focus() != 0 {
		t.Errorf("cell 0 = %d, focus = %d, want empty at 0", entry.Cell(0), entry.Focus())
	}
}

func TestOTPEntryPaste(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	entry.Paste("code: 987-654 (expires soon)")
	if !entry.Complete() {
		t.Fatal("entry should be complete after pasting six digits")
	}
	code, _ := entry.Consume()
	if code != "987654" {
		t.Errorf("code = %q, want 987654", code)
	}
}

func TestOTPEntryPastePartial(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	entry.Paste("12")
	if entry.Complete() {
		t.Fatal("two digits should not complete the entry")
	}
	if entry.Focus() != 2 {
		t.Errorf("focus = %d, want 2", entry.Focus())
	}
	for _, r := range "3456" {
		entry.Input(r)
	}
	code, _ := entry.Consume()
	if code != "123456" {
		t.Errorf("code = %q, want 123456", code)
	}
}

func TestOTPEntryConsumeOnce(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	for _, r := range "111111" {
		entry.Input(r)
	}
	if _, ok := entry.Consume(); !ok {
		t.Fatal("first Consume should succeed")
	}
	if _, ok := entry.Consume(); ok {
		t.Fatal("second Consume must fail")
	}
	if !entry.Consumed() {
		t.Error("Consumed should report true")
	}
}

func TestOTPEntryConsumeIncomplete(t *testing.T) {
	t.Parallel()

	entry := NewOTPEntry()
	entry.Input('1')
	if _, ok := entry.Consume(); ok {
		t.Fatal("Consume must fail on an incomplete entry")
	}
	if entry.Consumed() {
		t.Error("failed Consume must not mark the entry consumed")
	}
}
