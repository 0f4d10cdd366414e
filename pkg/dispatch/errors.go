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

package dispatch

import "errors"

var (
	// ErrUnsupportedDevice is returned when no enabled adapter matches the
	// requested vendor or device manufacturer. It always wraps
	// vendor.ErrVendorNotFound.
	ErrUnsupportedDevice = errors.New("dispatch: unsupported device")

	// ErrNilRegistry is returned by New when no registry is supplied.
	ErrNilRegistry = errors.New("dispatch: nil registry")

	// ErrUnsealedRegistry is returned by New when the registry can still be
	// modified.
	ErrUnsealedRegistry = errors.New("dispatch: registry is not sealed")

	// ErrAliasConflict is returned by New when alias keys collide after
	// manufacturer normalization.
	ErrAliasConflict = errors.New("dispatch: conflicting manufacturer alias")
)
