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

import "fmt"

// Reason is a library failure-reason code. Vendor adapters translate raw
// device error codes into a Reason; ReasonUnknown means no specific reason is
// known and must be treated as a generic failure, never as success.
type Reason uint32

// ReasonUnknown is the generic failure reason.
const ReasonUnknown Reason = 0

// Reasons corresponding to the GM/T 0016 SAR_* return codes.
const (
	ReasonFail Reason = iota + 100
	ReasonUnknownErr
	ReasonNotSupportYet
	ReasonFileErr
	ReasonInvalidHandle
	ReasonInvalidParam
	ReasonReadFile
	ReasonWriteFile
	ReasonNameLen
	ReasonKeyUsage
	ReasonModulusLen
	ReasonNotInitialize
	ReasonObj
	ReasonMemory
	ReasonTimeout
	ReasonInDataLen
	ReasonInData
	ReasonGenRand
	ReasonHashObj
	ReasonHash
	ReasonGenRSAKey
	ReasonRSAModulusLen
	ReasonCSPImportPubKey
	ReasonRSAEnc
	ReasonRSADec
	ReasonHashNotEqual
	ReasonKeyNotFound
	ReasonCertNotFound
	ReasonNotExport
	ReasonDecryptPad
	ReasonMACLen
	ReasonBufferTooSmall
	ReasonKeyInfoType
	ReasonNotEvent
	ReasonDeviceRemoved
	ReasonPINIncorrect
	ReasonPINLocked
	ReasonPINInvalid
	ReasonPINLenRange
	ReasonUserAlreadyLoggedIn
	ReasonUserPINNotInitialized
	ReasonUserTypeInvalid
	ReasonApplicationNameInvalid
	ReasonApplicationExists
	ReasonUserNotLoggedIn
	ReasonApplicationNotExists
	ReasonFileAlreadyExist
	ReasonNoRoom
	ReasonFileNotExist
	ReasonReachMaxContainerCount
)

// Reasons raised only by WISEC tokens.
const (
	ReasonWisecAuthBlocked Reason = iota + 150
	ReasonWisecCertNoUsage
	ReasonWisecInvalidContainer
	ReasonWisecContainerNotExists
	ReasonWisecContainerExists
	ReasonWisecCertUsage
	ReasonWisecKeyNoUsage
	ReasonWisecFileAttribute
	ReasonWisecDevNoAuth
)

var reasonNames = map[Reason]string{
	ReasonFail:                    "fail",
	ReasonUnknownErr:              "unknown_error",
	ReasonNotSupportYet:           "not_supported_yet",
	ReasonFileErr:                 "file_error",
	ReasonInvalidHandle:           "invalid_handle",
	ReasonInvalidParam:            "invalid_param",
	ReasonReadFile:                "read_file",
	ReasonWriteFile:               "write_file",
	ReasonNameLen:                 "name_length",
	ReasonKeyUsage:                "key_usage",
	ReasonModulusLen:              "modulus_length",
	ReasonNotInitialize:           "not_initialized",
	ReasonObj:                     "object",
	ReasonMemory:                  "memory",
	ReasonTimeout:                 "timeout",
	ReasonInDataLen:               "input_data_length",
	ReasonInData:                  "input_data",
	ReasonGenRand:                 "gen_random",
	ReasonHashObj:                 "hash_object",
	ReasonHash:                    "hash",
	ReasonGenRSAKey:               "gen_rsa_key",
	ReasonRSAModulusLen:           "rsa_modulus_length",
	ReasonCSPImportPubKey:         "import_public_key",
	ReasonRSAEnc:                  "rsa_encrypt",
	ReasonRSADec:                  "rsa_decrypt",
	ReasonHashNotEqual:            "hash_not_equal",
	ReasonKeyNotFound:             "key_not_found",
	ReasonCertNotFound:            "cert_not_found",
	ReasonNotExport:               "not_exportable",
	ReasonDecryptPad:              "decrypt_padding",
	ReasonMACLen:                  "mac_length",
	ReasonBufferTooSmall:          "buffer_too_small",
	ReasonKeyInfoType:             "key_info_type",
	ReasonNotEvent:                "no_event",
	ReasonDeviceRemoved:           "device_removed",
	ReasonPINIncorrect:            "pin_incorrect",
	ReasonPINLocked:               "pin_locked",
	ReasonPINInvalid:              "pin_invalid",
	ReasonPINLenRange:             "pin_length_range",
	ReasonUserAlreadyLoggedIn:     "user_already_logged_in",
	ReasonUserPINNotInitialized:   "user_pin_not_initialized",
	ReasonUserTypeInvalid:         "user_type_invalid",
	ReasonApplicationNameInvalid:  "application_name_invalid",
	ReasonApplicationExists:       "application_exists",
	ReasonUserNotLoggedIn:         "user_not_logged_in",
	ReasonApplicationNotExists:    "application_not_exists",
	ReasonFileAlreadyExist:        "file_already_exists",
	ReasonNoRoom:                  "no_room",
	ReasonFileNotExist:            "file_not_exists",
	ReasonReachMaxContainerCount:  "max_container_count",
	ReasonWisecAuthBlocked:        "wisec_auth_blocked",
	ReasonWisecCertNoUsage:        "wisec_cert_no_usage",
	ReasonWisecInvalidContainer:   "wisec_invalid_container",
	ReasonWisecContainerNotExists: "wisec_container_not_exists",
	ReasonWisecContainerExists:    "wisec_container_exists",
	ReasonWisecCertUsage:          "wisec_cert_usage",
	ReasonWisecKeyNoUsage:         "wisec_key_no_usage",
	ReasonWisecFileAttribute:      "wisec_file_attribute",
	ReasonWisecDevNoAuth:          "wisec_dev_no_auth",
}

// String returns a stable snake_case name suitable for logs and metric labels.
func (r Reason) String() string {
	if r == ReasonUnknown {
		return "unknown"
	}
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason_%d", uint32(r))
}

// IsKnown reports whether r is a defined reason other than ReasonUnknown.
func (r Reason) IsKnown() bool {
	_, ok := reasonNames[r]
	return ok
}
