// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate pre-checks user input before any request is issued. All
// checks are pure and synchronous; a failed check returns a plain error with
// the reason, it never panics and never touches the network.
package validate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxFileSize is the upload ceiling (100 MiB).
const MaxFileSize = 100 << 20

const (
	minNameLength = 3
	maxNameLength = 200
)

// namePattern is the full allowed alphabet for university names.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9 .,&()'"-]+$`)

// CheckFile verifies that a document is submittable: a PDF or plain-text
// file, non-empty, and at most MaxFileSize bytes. The extension check is a
// case-insensitive fallback for clients that send no or a generic MIME type.
func CheckFile(name, mimeType string, size int64) error {
	if !allowedFileType(name, mimeType) {
		return fmt.Errorf("unsupported file type for %q: only PDF and plain-text files are accepted", name)
	}
	if size == 0 {
		return fmt.Errorf("file %q is empty", name)
	}
	if size > MaxFileSize {
		return fmt.Errorf("file %q exceeds the 100 MiB limit", name)
	}
	return nil
}

func allowedFileType(name, mimeType string) bool {
	switch mimeType {
	case "application/pdf", "text/plain":
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
		return true
	}
	return false
}

// CheckUniversityName verifies a search string: non-empty, trimmed length in
// [3,200], and drawn entirely from the allowed alphabet (letters, digits,
// spaces, and common punctuation).
func CheckUniversityName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("university name is required")
	}
	if len(trimmed) < minNameLength {
		return fmt.Errorf("university name must be at least %d characters", minNameLength)
	}
	if len(trimmed) > maxNameLength {
		return fmt.Errorf("university name must be at most %d characters", maxNameLength)
	}
	if !namePattern.MatchString(trimmed) {
		return fmt.Errorf("university name contains unsupported characters")
	}
	return nil
}

// FormatUniversityName normalizes whitespace and title-cases each word. It is
// for display only; validation and request construction always use the
// caller's original (trimmed) input.
func FormatUniversityName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return w
	}
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
