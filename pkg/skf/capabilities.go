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

package skf

import (
	"fmt"
	"strings"
)

// CapabilityMask is a standard-space capability bitmask as reported in the
// AlgSymCap, AlgHashCap and AlgAsymCap fields of an SKF DEVINFO structure.
//
// The three spaces share numeric ranges (SGD_SM3 is a subset of SGD_SM1_ECB),
// so a mask is only meaningful together with its AlgorithmClass.
type CapabilityMask uint32

// Has reports whether every bit of the algorithm's pattern is set.
// AlgorithmNone is never contained in a mask.
func (m CapabilityMask) Has(a AlgorithmID) bool {
	return a != AlgorithmNone && uint32(m)&uint32(a) == uint32(a)
}

// With returns m with the algorithm's bits set.
func (m CapabilityMask) With(a AlgorithmID) CapabilityMask {
	return m | CapabilityMask(a)
}

// Algorithms returns the known algorithms of class contained in the mask.
func (m CapabilityMask) Algorithms(class AlgorithmClass) []AlgorithmID {
	var ids []AlgorithmID
	for _, id := range Algorithms(class) {
		if m.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Format renders the mask as a "|" separated list of algorithm names of the
// given class, e.g. "SGD_SM4|SGD_SM4_CBC".
func (m CapabilityMask) Format(class AlgorithmClass) string {
	if m == 0 {
		return "0"
	}
	ids := m.Algorithms(class)
	if len(ids) == 0 {
		return m.String()
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return strings.Join(names, "|")
}

// String returns the mask in hexadecimal.
func (m CapabilityMask) String() string {
	return fmt.Sprintf("0x%08X", uint32(m))
}
