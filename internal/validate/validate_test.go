// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"strings"
	"testing"
)

func TestCheckFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		mime     string
		size     int64
		wantErr  bool
	}{
		{"pdf by mime", "report.bin", "application/pdf", 1 << 20, false},
		{"txt by mime", "notes", "text/plain", 1024, false},
		{"extension fallback upper", "report.PDF", "", 3 << 20, false},
		{"extension fallback txt", "notes.TXT", "application/octet-stream", 2048, false},
		{"wrong mime and extension", "image.png", "image/png", 1024, true},
		{"no mime no extension", "blob", "", 1024, true},
		{"empty file", "report.pdf", "application/pdf", 0, true},
		{"over limit", "big.pdf", "application/pdf", 101 << 20, true},
		{"at limit", "full.pdf", "application/pdf", 100 << 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFile(tt.fileName, tt.mime, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckFile(%q, %q, %d) = %v, wantErr %v", tt.fileName, tt.mime, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestCheckUniversityName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"three chars", "IIT", false},
		{"two chars", "IT", true},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"punctuation allowed", `O'Brien & Sons (Intl.)`, false},
		{"quotes allowed", `"State" University`, false},
		{"angle brackets rejected", "Test<script>", true},
		{"slash rejected", "A/B University", true},
		{"max length ok", strings.Repeat("a", 200), false},
		{"over max length", strings.Repeat("a", 201), true},
		{"trimmed before length check", "  AB  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUniversityName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckUniversityName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFormatUniversityName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"massachusetts institute of technology", "Massachusetts Institute Of Technology"},
		{"  IIT   bombay ", "Iit Bombay"},
		{"o'brien", "O'brien"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatUniversityName(tt.input); got != tt.want {
			t.Errorf("FormatUniversityName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
