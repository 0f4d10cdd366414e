// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-skf.
//
// go-skf is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package validation

import (
	"strings"
	"testing"
)

func TestValidateVendorName(t *testing.T) {
	tests := []struct {
		name    string
		vendor  string
		wantErr bool
	}{
		// Valid names
		{"lowercase", "wisec", false},
		{"with digits", "gmt0016", false},
		{"with dash", "acme-token", false},
		{"with underscore", "acme_v2", false},
		{"single letter", "a", false},
		{"max length", strings.Repeat("a", MaxVendorNameLength), false},

		// Invalid names
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxVendorNameLength+1), true},
		{"uppercase", "WISEC", true},
		{"leading digit", "0016", true},
		{"leading dash", "-wisec", true},
		{"space", "wisec token", true},
		{"null byte", "wisec\x00", true},
		{"newline", "wisec\n", true},
		{"dot", "wisec.v2", true},
		{"slash", "vendors/wisec", true},
		{"label injection", `wisec",status="success`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVendorName(tt.vendor)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVendorName(%q) error = %v, wantErr %v", tt.vendor, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "WISEC Co.,Ltd", "WISEC Co.,Ltd"},
		{"nul padding", "wisec\x00\x00\x00", "wisec"},
		{"newline injection", "wisec\nlevel=ERROR", "wiseclevel=ERROR"},
		{"carriage return", "wi\rsec", "wisec"},
		{"delete", "wi\x7fsec", "wisec"},
		{"unicode kept", "握奇", "握奇"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeForLog(tt.input); got != tt.want {
				t.Errorf("SanitizeForLog(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeForLog_Truncates(t *testing.T) {
	got := SanitizeForLog(strings.Repeat("x", 500))
	if !strings.HasSuffix(got, "...[truncated]") {
		t.Errorf("expected truncation marker, got %q", got)
	}
	if len(got) != maxLogLength+len("...[truncated]") {
		t.Errorf("len = %d, want %d", len(got), maxLogLength+len("...[truncated]"))
	}
}
