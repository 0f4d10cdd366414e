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

// Package wisec provides the vendor adapter for WISEC smart tokens.
//
// WISEC firmware encodes a block cipher as an algorithm family bit combined
// with a mode bit (SM4|ModeCBC == 0x1002), so a capability mask announcing
// CBC support for SM4 also announces the bare SM4 family.
package wisec
