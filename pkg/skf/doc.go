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

// Package skf defines the standard identifier spaces of the GM/T 0016 smart
// token API: GM/T 0006 algorithm identifiers, capability bitmasks built from
// them, and the library's failure-reason codes.
//
// Vendor adapters in pkg/vendor translate device-native identifiers into the
// types defined here. Nothing in this package performs I/O.
//
// # Sentinels
//
// AlgorithmNone and ReasonUnknown are both zero. No GM/T 0006 algorithm and no
// defined reason uses zero, so a failed translation can never be confused with
// a legitimate identifier.
package skf
