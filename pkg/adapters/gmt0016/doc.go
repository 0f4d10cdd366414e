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

// Package gmt0016 provides the adapter for tokens whose drivers already use
// the GM/T 0006 algorithm identifiers and GM/T 0016 SAR_* return codes.
//
// Algorithm translation is the identity over every identifier defined in
// pkg/skf. Each SAR_* code maps to its own skf.Reason. SAR_OK is not in the
// error table and translates to skf.ReasonUnknown like any other unmapped code.
package gmt0016
