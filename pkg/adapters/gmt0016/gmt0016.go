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

package gmt0016

import (
	"github.com/jeremyhahn/go-skf/pkg/skf"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
)

// Name is the registry key of the GM/T 0016 adapter.
const Name = "gmt0016"

// KeyLength is the size in bytes of the device authentication key.
const KeyLength = 16

// GM/T 0016 return codes.
const (
	SAR_OK                        uint32 = 0x00000000
	SAR_FAIL                      uint32 = 0x0A000001
	SAR_UNKNOWNERR                uint32 = 0x0A000002
	SAR_NOTSUPPORTYETERR          uint32 = 0x0A000003
	SAR_FILEERR                   uint32 = 0x0A000004
	SAR_INVALIDHANDLEERR          uint32 = 0x0A000005
	SAR_INVALIDPARAMERR           uint32 = 0x0A000006
	SAR_READFILEERR               uint32 = 0x0A000007
	SAR_WRITEFILEERR              uint32 = 0x0A000008
	SAR_NAMELENERR                uint32 = 0x0A000009
	SAR_KEYUSAGEERR               uint32 = 0x0A00000A
	SAR_MODULUSLENERR             uint32 = 0x0A00000B
	SAR_NOTINITIALIZEERR          uint32 = 0x0A00000C
	SAR_OBJERR                    uint32 = 0x0A00000D
	SAR_MEMORYERR                 uint32 = 0x0A00000E
	SAR_TIMEOUTERR                uint32 = 0x0A00000F
	SAR_INDATALENERR              uint32 = 0x0A000010
	SAR_INDATAERR                 uint32 = 0x0A000011
	SAR_GENRANDERR                uint32 = 0x0A000012
	SAR_HASHOBJERR                uint32 = 0x0A000013
	SAR_HASHERR                   uint32 = 0x0A000014
	SAR_GENRSAKEYERR              uint32 = 0x0A000015
	SAR_RSAMODULUSLENERR          uint32 = 0x0A000016
	SAR_CSPIMPRTPUBKEYERR         uint32 = 0x0A000017
	SAR_RSAENCERR                 uint32 = 0x0A000018
	SAR_RSADECERR                 uint32 = 0x0A000019
	SAR_HASHNOTEQUALERR           uint32 = 0x0A00001A
	SAR_KEYNOTFOUNTERR            uint32 = 0x0A00001B
	SAR_CERTNOTFOUNTERR           uint32 = 0x0A00001C
	SAR_NOTEXPORTERR              uint32 = 0x0A00001D
	SAR_DECRYPTPADERR             uint32 = 0x0A00001E
	SAR_MACLENERR                 uint32 = 0x0A00001F
	SAR_BUFFER_TOO_SMALL          uint32 = 0x0A000020
	SAR_KEYINFOTYPEERR            uint32 = 0x0A000021
	SAR_NOT_EVENTERR              uint32 = 0x0A000022
	SAR_DEVICE_REMOVED            uint32 = 0x0A000023
	SAR_PIN_INCORRECT             uint32 = 0x0A000024
	SAR_PIN_LOCKED                uint32 = 0x0A000025
	SAR_PIN_INVALID               uint32 = 0x0A000026
	SAR_PIN_LEN_RANGE             uint32 = 0x0A000027
	SAR_USER_ALREADY_LOGGED_IN    uint32 = 0x0A000028
	SAR_USER_PIN_NOT_INITIALIZED  uint32 = 0x0A000029
	SAR_USER_TYPE_INVALID         uint32 = 0x0A00002A
	SAR_APPLICATION_NAME_INVALID  uint32 = 0x0A00002B
	SAR_APPLICATION_EXISTS        uint32 = 0x0A00002C
	SAR_USER_NOT_LOGGED_IN        uint32 = 0x0A00002D
	SAR_APPLICATION_NOT_EXISTS    uint32 = 0x0A00002E
	SAR_FILE_ALREADY_EXIST        uint32 = 0x0A00002F
	SAR_NO_ROOM                   uint32 = 0x0A000030
	SAR_FILE_NOT_EXIST            uint32 = 0x0A000031
	SAR_REACH_MAX_CONTAINER_COUNT uint32 = 0x0A000032
)

var errorReasons = vendor.ErrorTable{
	{Code: SAR_FAIL, Reason: skf.ReasonFail},
	{Code: SAR_UNKNOWNERR, Reason: skf.ReasonUnknownErr},
	{Code: SAR_NOTSUPPORTYETERR, Reason: skf.ReasonNotSupportYet},
	{Code: SAR_FILEERR, Reason: skf.ReasonFileErr},
	{Code: SAR_INVALIDHANDLEERR, Reason: skf.ReasonInvalidHandle},
	{Code: SAR_INVALIDPARAMERR, Reason: skf.ReasonInvalidParam},
	{Code: SAR_READFILEERR, Reason: skf.ReasonReadFile},
	{Code: SAR_WRITEFILEERR, Reason: skf.ReasonWriteFile},
	{Code: SAR_NAMELENERR, Reason: skf.ReasonNameLen},
	{Code: SAR_KEYUSAGEERR, Reason: skf.ReasonKeyUsage},
	{Code: SAR_MODULUSLENERR, Reason: skf.ReasonModulusLen},
	{Code: SAR_NOTINITIALIZEERR, Reason: skf.ReasonNotInitialize},
	{Code: SAR_OBJERR, Reason: skf.ReasonObj},
	{Code: SAR_MEMORYERR, Reason: skf.ReasonMemory},
	{Code: SAR_TIMEOUTERR, Reason: skf.ReasonTimeout},
	{Code: SAR_INDATALENERR, Reason: skf.ReasonInDataLen},
	{Code: SAR_INDATAERR, Reason: skf.ReasonInData},
	{Code: SAR_GENRANDERR, Reason: skf.ReasonGenRand},
	{Code: SAR_HASHOBJERR, Reason: skf.ReasonHashObj},
	{Code: SAR_HASHERR, Reason: skf.ReasonHash},
	{Code: SAR_GENRSAKEYERR, Reason: skf.ReasonGenRSAKey},
	{Code: SAR_RSAMODULUSLENERR, Reason: skf.ReasonRSAModulusLen},
	{Code: SAR_CSPIMPRTPUBKEYERR, Reason: skf.ReasonCSPImportPubKey},
	{Code: SAR_RSAENCERR, Reason: skf.ReasonRSAEnc},
	{Code: SAR_RSADECERR, Reason: skf.ReasonRSADec},
	{Code: SAR_HASHNOTEQUALERR, Reason: skf.ReasonHashNotEqual},
	{Code: SAR_KEYNOTFOUNTERR, Reason: skf.ReasonKeyNotFound},
	{Code: SAR_CERTNOTFOUNTERR, Reason: skf.ReasonCertNotFound},
	{Code: SAR_NOTEXPORTERR, Reason: skf.ReasonNotExport},
	{Code: SAR_DECRYPTPADERR, Reason: skf.ReasonDecryptPad},
	{Code: SAR_MACLENERR, Reason: skf.ReasonMACLen},
	{Code: SAR_BUFFER_TOO_SMALL, Reason: skf.ReasonBufferTooSmall},
	{Code: SAR_KEYINFOTYPEERR, Reason: skf.ReasonKeyInfoType},
	{Code: SAR_NOT_EVENTERR, Reason: skf.ReasonNotEvent},
	{Code: SAR_DEVICE_REMOVED, Reason: skf.ReasonDeviceRemoved},
	{Code: SAR_PIN_INCORRECT, Reason: skf.ReasonPINIncorrect},
	{Code: SAR_PIN_LOCKED, Reason: skf.ReasonPINLocked},
	{Code: SAR_PIN_INVALID, Reason: skf.ReasonPINInvalid},
	{Code: SAR_PIN_LEN_RANGE, Reason: skf.ReasonPINLenRange},
	{Code: SAR_USER_ALREADY_LOGGED_IN, Reason: skf.ReasonUserAlreadyLoggedIn},
	{Code: SAR_USER_PIN_NOT_INITIALIZED, Reason: skf.ReasonUserPINNotInitialized},
	{Code: SAR_USER_TYPE_INVALID, Reason: skf.ReasonUserTypeInvalid},
	{Code: SAR_APPLICATION_NAME_INVALID, Reason: skf.ReasonApplicationNameInvalid},
	{Code: SAR_APPLICATION_EXISTS, Reason: skf.ReasonApplicationExists},
	{Code: SAR_USER_NOT_LOGGED_IN, Reason: skf.ReasonUserNotLoggedIn},
	{Code: SAR_APPLICATION_NOT_EXISTS, Reason: skf.ReasonApplicationNotExists},
	{Code: SAR_FILE_ALREADY_EXIST, Reason: skf.ReasonFileAlreadyExist},
	{Code: SAR_NO_ROOM, Reason: skf.ReasonNoRoom},
	{Code: SAR_FILE_NOT_EXIST, Reason: skf.ReasonFileNotExist},
	{Code: SAR_REACH_MAX_CONTAINER_COUNT, Reason: skf.ReasonReachMaxContainerCount},
}

// identity pairs every standard algorithm of class with itself.
func identity(class skf.AlgorithmClass) vendor.AlgorithmTable {
	ids := skf.Algorithms(class)
	table := make(vendor.AlgorithmTable, len(ids))
	for i, id := range ids {
		table[i] = vendor.AlgorithmPair{Standard: id, Vendor: uint32(id)}
	}
	return table
}

// Adapter translates identifiers of tokens that implement GM/T 0016 natively.
var Adapter = vendor.MustAdapter(vendor.Definition{
	Name:      Name,
	KeyLength: KeyLength,
	Ciphers:   identity(skf.ClassCipher),
	Digests:   identity(skf.ClassDigest),
	PublicKey: identity(skf.ClassPublicKey),
	Errors:    errorReasons,
})
