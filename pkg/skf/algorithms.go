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
	"slices"
)

// AlgorithmID is a GM/T 0006 algorithm identifier as used by the SKF API.
//
// Identifiers are also bit patterns: a device capability mask is the OR of
// the identifiers it supports, see CapabilityMask.
type AlgorithmID uint32

// AlgorithmNone is returned when a vendor identifier has no standard mapping.
// No GM/T 0006 algorithm uses the value zero.
const AlgorithmNone AlgorithmID = 0

// =============================================================================
// Block Ciphers
// =============================================================================

const (
	SGD_SM1     AlgorithmID = 0x00000100
	SGD_SM1_ECB AlgorithmID = 0x00000101
	SGD_SM1_CBC AlgorithmID = 0x00000102
	SGD_SM1_CFB AlgorithmID = 0x00000104
	SGD_SM1_OFB AlgorithmID = 0x00000108
	SGD_SM1_MAC AlgorithmID = 0x00000110

	SGD_SSF33     AlgorithmID = 0x00000200
	SGD_SSF33_ECB AlgorithmID = 0x00000201
	SGD_SSF33_CBC AlgorithmID = 0x00000202
	SGD_SSF33_CFB AlgorithmID = 0x00000204
	SGD_SSF33_OFB AlgorithmID = 0x00000208
	SGD_SSF33_MAC AlgorithmID = 0x00000210

	SGD_SM4     AlgorithmID = 0x00000400
	SGD_SM4_ECB AlgorithmID = 0x00000401
	SGD_SM4_CBC AlgorithmID = 0x00000402
	SGD_SM4_CFB AlgorithmID = 0x00000404
	SGD_SM4_OFB AlgorithmID = 0x00000408
	SGD_SM4_MAC AlgorithmID = 0x00000410
)

// =============================================================================
// Digests
// =============================================================================

const (
	SGD_SM3    AlgorithmID = 0x00000001
	SGD_SHA1   AlgorithmID = 0x00000002
	SGD_SHA256 AlgorithmID = 0x00000004
)

// =============================================================================
// Public Key Algorithms
// =============================================================================

const (
	SGD_RSA      AlgorithmID = 0x00010000
	SGD_RSA_SIGN AlgorithmID = 0x00010100
	SGD_RSA_ENC  AlgorithmID = 0x00010200

	// SGD_SM2 is the SM2 elliptic curve algorithm family.
	SGD_SM2 AlgorithmID = 0x00020100
	// SGD_SM2_1 is SM2 signature.
	SGD_SM2_1 AlgorithmID = 0x00020200
	// SGD_SM2_2 is SM2 key exchange.
	SGD_SM2_2 AlgorithmID = 0x00020400
	// SGD_SM2_3 is SM2 encryption.
	SGD_SM2_3 AlgorithmID = 0x00020800
)

// AlgorithmClass groups identifiers into the three SKF identifier spaces.
type AlgorithmClass int

const (
	ClassUnknown AlgorithmClass = iota
	ClassCipher
	ClassDigest
	ClassPublicKey
)

// String returns the string representation.
func (c AlgorithmClass) String() string {
	switch c {
	case ClassCipher:
		return "cipher"
	case ClassDigest:
		return "digest"
	case ClassPublicKey:
		return "pkey"
	default:
		return "unknown"
	}
}

// ParseAlgorithmClass parses a class name. Accepts the String() forms and
// the DEVINFO field aliases "sym", "hash" and "asym".
func ParseAlgorithmClass(s string) (AlgorithmClass, error) {
	switch s {
	case "cipher", "sym":
		return ClassCipher, nil
	case "digest", "hash":
		return ClassDigest, nil
	case "pkey", "publickey", "asym":
		return ClassPublicKey, nil
	default:
		return ClassUnknown, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
}

type algorithmInfo struct {
	name  string
	class AlgorithmClass
}

var algorithmNames = map[AlgorithmID]algorithmInfo{
	SGD_SM1:       {"SGD_SM1", ClassCipher},
	SGD_SM1_ECB:   {"SGD_SM1_ECB", ClassCipher},
	SGD_SM1_CBC:   {"SGD_SM1_CBC", ClassCipher},
	SGD_SM1_CFB:   {"SGD_SM1_CFB", ClassCipher},
	SGD_SM1_OFB:   {"SGD_SM1_OFB", ClassCipher},
	SGD_SM1_MAC:   {"SGD_SM1_MAC", ClassCipher},
	SGD_SSF33:     {"SGD_SSF33", ClassCipher},
	SGD_SSF33_ECB: {"SGD_SSF33_ECB", ClassCipher},
	SGD_SSF33_CBC: {"SGD_SSF33_CBC", ClassCipher},
	SGD_SSF33_CFB: {"SGD_SSF33_CFB", ClassCipher},
	SGD_SSF33_OFB: {"SGD_SSF33_OFB", ClassCipher},
	SGD_SSF33_MAC: {"SGD_SSF33_MAC", ClassCipher},
	SGD_SM4:       {"SGD_SM4", ClassCipher},
	SGD_SM4_ECB:   {"SGD_SM4_ECB", ClassCipher},
	SGD_SM4_CBC:   {"SGD_SM4_CBC", ClassCipher},
	SGD_SM4_CFB:   {"SGD_SM4_CFB", ClassCipher},
	SGD_SM4_OFB:   {"SGD_SM4_OFB", ClassCipher},
	SGD_SM4_MAC:   {"SGD_SM4_MAC", ClassCipher},
	SGD_SM3:       {"SGD_SM3", ClassDigest},
	SGD_SHA1:      {"SGD_SHA1", ClassDigest},
	SGD_SHA256:    {"SGD_SHA256", ClassDigest},
	SGD_RSA:       {"SGD_RSA", ClassPublicKey},
	SGD_RSA_SIGN:  {"SGD_RSA_SIGN", ClassPublicKey},
	SGD_RSA_ENC:   {"SGD_RSA_ENC", ClassPublicKey},
	SGD_SM2:       {"SGD_SM2", ClassPublicKey},
	SGD_SM2_1:     {"SGD_SM2_1", ClassPublicKey},
	SGD_SM2_2:     {"SGD_SM2_2", ClassPublicKey},
	SGD_SM2_3:     {"SGD_SM2_3", ClassPublicKey},
}

// String returns the GM/T name of the algorithm, or its hex value when the
// identifier is not a known standard algorithm.
func (a AlgorithmID) String() string {
	if a == AlgorithmNone {
		return "NONE"
	}
	if info, ok := algorithmNames[a]; ok {
		return info.name
	}
	return fmt.Sprintf("0x%08X", uint32(a))
}

// Class returns the identifier space the algorithm belongs to.
func (a AlgorithmID) Class() AlgorithmClass {
	return algorithmNames[a].class
}

// IsNone reports whether a is the no-mapping sentinel.
func (a AlgorithmID) IsNone() bool {
	return a == AlgorithmNone
}

// IsKnown reports whether a is a GM/T 0006 algorithm this package defines.
func (a AlgorithmID) IsKnown() bool {
	_, ok := algorithmNames[a]
	return ok
}

// Algorithms returns every known standard algorithm of the given class in
// ascending identifier order.
func Algorithms(class AlgorithmClass) []AlgorithmID {
	var ids []AlgorithmID
	for id, info := range algorithmNames {
		if info.class == class {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
