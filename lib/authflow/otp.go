// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package authflow

// OTPLength is the number of digit cells in a verification code.
const OTPLength = 6

// OTPEntry is the six-cell code input. Each cell holds one digit; the
// focus advances as digits are typed and retreats on backspace. Once
// all six cells are filled the code is complete, and Consume hands it
// out at most once so the confirmation request cannot be duplicated
// by repeated key events.
type OTPEntry struct {
	cells    [OTPLength]byte // 0 means empty
	focus    int
	consumed bool
}

// NewOTPEntry returns an empty entry focused on the first cell.
func NewOTPEntry() *OTPEntry {
	return &OTPEntry{}
}

// Focus returns the index of the focused cell.
func (entry *OTPEntry) Focus() int { return entry.focus }

// Cell returns the digit in cell i as a printable byte, or 0 when the
// cell is empty.
func (entry *OTPEntry) Cell(i int) byte {
	if i < 0 || i >= OTPLength {
		return 0
	}
	return entry.cells[i]
}

// Input places a typed rune into the focused cell. Non-digit input is
// rejected and the focus does not move. Typing into the last cell
// overwrites it.
func (entry *OTPEntry) Input(r rune) {
	if r < '0' || r > '9' {
		return
	}
	entry.cells[entry.focus] = byte(r)
	if entry.focus < OTPLength-1 {
		entry.focus++
	}
}

// Backspace clears the focused cell if it holds a digit, otherwise
// moves focus back one cell and clears that one.
func (entry *OTPEntry) Backspace() {
	if entry.cells[entry.focus] != 0 {
		entry.cells[entry.focus] = 0
		return
	}
	if entry.focus > 0 {
		entry.focus--
		entry.cells[entry.focus] = 0
	}
}

// Paste fills cells from the start of the entry with the digits of
// text, ignoring everything else. Six or more digits complete the
// code.
func (entry *OTPEntry) Paste(text string) {
	i := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		if i >= OTPLength {
			break
		}
		entry.cells[i] = byte(r)
		i++
	}
	if i == 0 {
		return
	}
	entry.focus = i - 1
	if i < OTPLength {
		entry.focus = i
	}
}

// Complete reports whether all six cells hold digits.
func (entry *OTPEntry) Complete() bool {
	for _, cell := range entry.cells {
		if cell == 0 {
			return false
		}
	}
	return true
}

// Consume returns the completed code exactly once. Subsequent calls,
// and calls before the code is complete, return ok=false. This is the
// guard that keeps a completed entry from confirming twice.
func (entry *OTPEntry) Consume() (code string, ok bool) {
	if entry.consumed || !entry.Complete() {
		return "", false
	}
	entry.consumed = true
	return string(entry.cells[:]), true
}

// Consumed reports whether the code has already been handed out.
func (entry *OTPEntry) Consumed() bool { return entry.consumed }
