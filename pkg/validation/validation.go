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

// Package validation checks strings that cross from configuration or from a
// device into the adapter registry and the logs.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxVendorNameLength bounds adapter names.
	MaxVendorNameLength = 32

	// maxLogLength bounds device-supplied strings in log records. DEVINFO
	// string fields are 64 bytes; anything longer is not a real device.
	maxLogLength = 128
)

// vendorNamePattern matches adapter names: a lowercase letter followed by
// lowercase letters, digits, hyphens or underscores.
var vendorNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_\-]*$`)

// ValidateVendorName validates an adapter name.
// Names are registry keys and appear as metric label values, so they are
// restricted to short lowercase identifiers such as "wisec" or "gmt0016".
func ValidateVendorName(name string) error {
	if name == "" {
		return fmt.Errorf("vendor name cannot be empty")
	}

	// Check length before the pattern match
	if len(name) > MaxVendorNameLength {
		return fmt.Errorf("vendor name too long (max %d characters)", MaxVendorNameLength)
	}

	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("vendor name contains null byte")
	}

	if !vendorNamePattern.MatchString(name) {
		return fmt.Errorf("vendor name %q contains invalid characters (allowed: a-z, 0-9, -, _; must start with a letter)", name)
	}

	return nil
}

// SanitizeForLog strips control characters from a device-supplied string
// and truncates it, so a malformed DEVINFO cannot forge log lines.
func SanitizeForLog(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)

	if len(s) > maxLogLength {
		s = s[:maxLogLength] + "...[truncated]"
	}

	return s
}
