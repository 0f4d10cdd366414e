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

package wisec

import (
	"github.com/jeremyhahn/go-skf/pkg/skf"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
)

// Name is the registry key of the WISEC adapter.
const Name = "wisec"

// KeyLength is the size in bytes of WISEC native key material.
const KeyLength = 16

// WISEC block cipher identifiers: an algorithm family bit ORed with a mode bit.
const (
	SM1   uint32 = 0x0400
	SSF33 uint32 = 0x0800
	SM4   uint32 = 0x1000

	ModeECB uint32 = 0x01
	ModeCBC uint32 = 0x02
	ModeCFB uint32 = 0x04
	ModeOFB uint32 = 0x08
	ModeMAC uint32 = 0x10
)

// WISEC digest identifiers.
const (
	SM3    uint32 = 0x10
	SHA1   uint32 = 0x20
	SHA256 uint32 = 0x40
)

// WISEC public key identifiers.
const (
	RSA     uint32 = 0x0100
	RSASign uint32 = 0x0101
	RSAEnc  uint32 = 0x0102
	SM2     uint32 = 0x0200
	SM2Sign uint32 = 0x0201
	SM2KeyX uint32 = 0x0202
	SM2Enc  uint32 = 0x0204
)

// WISEC device error codes beyond the GM/T 0016 SAR_* range.
const (
	ErrAuthBlocked        uint32 = 0x0A000101
	ErrCertNoUsage        uint32 = 0x0A000102
	ErrInvalidContainer   uint32 = 0x0A000103
	ErrContainerNotExists uint32 = 0x0A000104
	ErrContainerExists    uint32 = 0x0A000105
	ErrCertUsage          uint32 = 0x0A000106
	ErrKeyNoUsage         uint32 = 0x0A000107
	ErrFileAttribute      uint32 = 0x0A000108
	ErrDevNoAuth          uint32 = 0x0A000109
)

var ciphers = vendor.AlgorithmTable{
	{Standard: skf.SGD_SM1, Vendor: SM1},
	{Standard: skf.SGD_SM1_ECB, Vendor: SM1 | ModeECB},
	{Standard: skf.SGD_SM1_CBC, Vendor: SM1 | ModeCBC},
	{Standard: skf.SGD_SM1_CFB, Vendor: SM1 | ModeCFB},
	{Standard: skf.SGD_SM1_OFB, Vendor: SM1 | ModeOFB},
	{Standard: skf.SGD_SM1_MAC, Vendor: SM1 | ModeMAC},
	{Standard: skf.SGD_SM4, Vendor: SM4},
	{Standard: skf.SGD_SM4_ECB, Vendor: SM4 | ModeECB},
	{Standard: skf.SGD_SM4_CBC, Vendor: SM4 | ModeCBC},
	{Standard: skf.SGD_SM4_CFB, Vendor: SM4 | ModeCFB},
	{Standard: skf.SGD_SM4_OFB, Vendor: SM4 | ModeOFB},
	{Standard: skf.SGD_SM4_MAC, Vendor: SM4 | ModeMAC},
	{Standard: skf.SGD_SSF33, Vendor: SSF33},
	{Standard: skf.SGD_SSF33_ECB, Vendor: SSF33 | ModeECB},
	{Standard: skf.SGD_SSF33_CBC, Vendor: SSF33 | ModeCBC},
	{Standard: skf.SGD_SSF33_CFB, Vendor: SSF33 | ModeCFB},
	{Standard: skf.SGD_SSF33_OFB, Vendor: SSF33 | ModeOFB},
	{Standard: skf.SGD_SSF33_MAC, Vendor: SSF33 | ModeMAC},
}

var digests = vendor.AlgorithmTable{
	{Standard: skf.SGD_SM3, Vendor: SM3},
	{Standard: skf.SGD_SHA1, Vendor: SHA1},
	{Standard: skf.SGD_SHA256, Vendor: SHA256},
}

var pkeys = vendor.AlgorithmTable{
	{Standard: skf.SGD_RSA, Vendor: RSA},
	{Standard: skf.SGD_RSA_SIGN, Vendor: RSASign},
	{Standard: skf.SGD_RSA_ENC, Vendor: RSAEnc},
	{Standard: skf.SGD_SM2, Vendor: SM2},
	{Standard: skf.SGD_SM2_1, Vendor: SM2Sign},
	{Standard: skf.SGD_SM2_2, Vendor: SM2KeyX},
	{Standard: skf.SGD_SM2_3, Vendor: SM2Enc},
}

var errorReasons = vendor.ErrorTable{
	{Code: ErrAuthBlocked, Reason: skf.ReasonWisecAuthBlocked},
	{Code: ErrCertNoUsage, Reason: skf.ReasonWisecCertNoUsage},
	{Code: ErrInvalidContainer, Reason: skf.ReasonWisecInvalidContainer},
	{Code: ErrContainerNotExists, Reason: skf.ReasonWisecContainerNotExists},
	{Code: ErrContainerExists, Reason: skf.ReasonWisecContainerExists},
	{Code: ErrCertUsage, Reason: skf.ReasonWisecCertUsage},
	{Code: ErrKeyNoUsage, Reason: skf.ReasonWisecKeyNoUsage},
	{Code: ErrFileAttribute, Reason: skf.ReasonWisecFileAttribute},
	{Code: ErrDevNoAuth, Reason: skf.ReasonWisecDevNoAuth},
}

// Adapter translates WISEC token identifiers.
var Adapter = vendor.MustAdapter(vendor.Definition{
	Name:      Name,
	KeyLength: KeyLength,
	Ciphers:   ciphers,
	Digests:   digests,
	PublicKey: pkeys,
	Errors:    errorReasons,
})
