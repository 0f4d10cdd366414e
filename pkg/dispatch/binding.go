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

import (
	"math/bits"

	"github.com/google/uuid"
	"github.com/jeremyhahn/go-skf/pkg/logging"
	"github.com/jeremyhahn/go-skf/pkg/metrics"
	"github.com/jeremyhahn/go-skf/pkg/skf"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
)

// Binding is an adapter selected for one device. It forwards every call to
// the adapter unchanged and records metrics and debug logs on the way, so
// upper layers can hold a Binding wherever they would hold a vendor.Vendor.
type Binding struct {
	id     string
	vendor vendor.Vendor
	logger *logging.Logger
}

var _ vendor.Vendor = (*Binding)(nil)

func newBinding(v vendor.Vendor, logger *logging.Logger) *Binding {
	id := uuid.New().String()
	return &Binding{
		id:     id,
		vendor: v,
		logger: logger.With("binding", id, "vendor", v.Name()),
	}
}

// ID returns the unique identifier of this binding, used to correlate logs.
func (b *Binding) ID() string {
	return b.id
}

// Adapter returns the underlying adapter.
func (b *Binding) Adapter() vendor.Vendor {
	return b.vendor
}

func (b *Binding) Name() string {
	return b.vendor.Name()
}

func (b *Binding) KeyLength() int {
	return b.vendor.KeyLength()
}

func (b *Binding) CipherAlgorithm(vendorID uint32) (skf.AlgorithmID, bool) {
	id, ok := b.vendor.CipherAlgorithm(vendorID)
	b.recordAlgorithm(metrics.SpaceCipher, vendorID, ok)
	return id, ok
}

func (b *Binding) CipherCapabilities(vendorCap uint32) skf.CapabilityMask {
	caps := b.vendor.CipherCapabilities(vendorCap)
	b.recordCapabilities(skf.ClassCipher, metrics.SpaceCipher, vendorCap)
	return caps
}

func (b *Binding) DigestAlgorithm(vendorID uint32) (skf.AlgorithmID, bool) {
	id, ok := b.vendor.DigestAlgorithm(vendorID)
	b.recordAlgorithm(metrics.SpaceDigest, vendorID, ok)
	return id, ok
}

func (b *Binding) DigestCapabilities(vendorCap uint32) skf.CapabilityMask {
	caps := b.vendor.DigestCapabilities(vendorCap)
	b.recordCapabilities(skf.ClassDigest, metrics.SpaceDigest, vendorCap)
	return caps
}

func (b *Binding) PublicKeyAlgorithm(vendorID uint32) (skf.AlgorithmID, bool) {
	id, ok := b.vendor.PublicKeyAlgorithm(vendorID)
	b.recordAlgorithm(metrics.SpacePublicKey, vendorID, ok)
	return id, ok
}

func (b *Binding) PublicKeyCapabilities(vendorCap uint32) skf.CapabilityMask {
	caps := b.vendor.PublicKeyCapabilities(vendorCap)
	b.recordCapabilities(skf.ClassPublicKey, metrics.SpacePublicKey, vendorCap)
	return caps
}

func (b *Binding) ErrorReason(code uint32) skf.Reason {
	reason := b.vendor.ErrorReason(code)
	mapped := reason != skf.ReasonUnknown
	metrics.RecordTranslation(b.vendor.Name(), metrics.SpaceError, mapped)
	if !mapped {
		b.logger.Debugf("unmapped vendor error code 0x%08X", code)
	}
	return reason
}

// Capabilities translates the three DEVINFO capability masks of a device.
func (b *Binding) Capabilities(info DeviceInfo) Capabilities {
	return Capabilities{
		Cipher:    b.CipherCapabilities(info.AlgSymCap),
		Digest:    b.DigestCapabilities(info.AlgHashCap),
		PublicKey: b.PublicKeyCapabilities(info.AlgAsymCap),
	}
}

func (b *Binding) recordAlgorithm(space string, vendorID uint32, mapped bool) {
	metrics.RecordTranslation(b.vendor.Name(), space, mapped)
	if !mapped {
		b.logger.Debugf("unmapped %s algorithm 0x%08X", space, vendorID)
	}
}

func (b *Binding) recordCapabilities(class skf.AlgorithmClass, space string, vendorCap uint32) {
	metrics.RecordTranslation(b.vendor.Name(), space, true)
	reporter, ok := b.vendor.(vendor.UnmappedReporter)
	if !ok {
		return
	}
	if dropped := reporter.Unmapped(class, vendorCap); dropped != 0 {
		metrics.RecordDroppedBits(b.vendor.Name(), space, bits.OnesCount32(dropped))
		b.logger.Debugf("dropped unmapped %s capability bits 0x%08X", space, dropped)
	}
}
