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
	"bytes"
	"testing"

	"github.com/jeremyhahn/go-skf/pkg/adapters/wisec"
	"github.com/jeremyhahn/go-skf/pkg/logging"
	"github.com/jeremyhahn/go-skf/pkg/metrics"
	"github.com/jeremyhahn/go-skf/pkg/skf"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opaqueVendor hides the adapter's UnmappedReporter implementation.
type opaqueVendor struct {
	vendor.Vendor
}

func TestBinding_Forwards(t *testing.T) {
	b, err := newTestDispatcher(t).Select("wisec")
	require.NoError(t, err)

	assert.Equal(t, wisec.KeyLength, b.KeyLength())

	id, ok := b.CipherAlgorithm(0x1002)
	assert.True(t, ok)
	assert.Equal(t, skf.SGD_SM4_CBC, id)

	id, ok = b.CipherAlgorithm(0x9999)
	assert.False(t, ok)
	assert.Equal(t, skf.AlgorithmNone, id)

	id, ok = b.DigestAlgorithm(wisec.SM3)
	assert.True(t, ok)
	assert.Equal(t, skf.SGD_SM3, id)

	id, ok = b.PublicKeyAlgorithm(wisec.SM2Enc)
	assert.True(t, ok)
	assert.Equal(t, skf.SGD_SM2_3, id)

	assert.Equal(t, skf.ReasonWisecDevNoAuth, b.ErrorReason(wisec.ErrDevNoAuth))
	assert.Equal(t, skf.ReasonUnknown, b.ErrorReason(0x0A0001FF))
}

func TestBinding_Capabilities(t *testing.T) {
	b, err := newTestDispatcher(t).Select("wisec")
	require.NoError(t, err)

	caps := b.Capabilities(DeviceInfo{
		Manufacturer: "wisec",
		AlgSymCap:    0x1000 | 0x4,
		AlgHashCap:   wisec.SM3 | wisec.SHA256,
		AlgAsymCap:   wisec.SM2Sign,
	})

	// 0x1004 is SM4 CFB on these tokens.
	assert.Equal(t, skf.CapabilityMask(skf.SGD_SM4|skf.SGD_SM4_CFB), caps.Cipher)
	assert.Equal(t, skf.CapabilityMask(skf.SGD_SM3|skf.SGD_SHA256), caps.Digest)
	assert.Equal(t, skf.CapabilityMask(skf.SGD_SM2|skf.SGD_SM2_1), caps.PublicKey)
}

func TestBinding_RecordsMetrics(t *testing.T) {
	metrics.Enable()
	b, err := newTestDispatcher(t).Select("wisec")
	require.NoError(t, err)

	mapped := metrics.TranslationsTotal.WithLabelValues("wisec", metrics.SpaceCipher, metrics.ResultMapped)
	unmapped := metrics.TranslationsTotal.WithLabelValues("wisec", metrics.SpaceCipher, metrics.ResultUnmapped)
	errUnmapped := metrics.TranslationsTotal.WithLabelValues("wisec", metrics.SpaceError, metrics.ResultUnmapped)
	dropped := metrics.CapabilityBitsDroppedTotal.WithLabelValues("wisec", metrics.SpaceCipher)

	mappedBefore := testutil.ToFloat64(mapped)
	unmappedBefore := testutil.ToFloat64(unmapped)
	errBefore := testutil.ToFloat64(errUnmapped)
	droppedBefore := testutil.ToFloat64(dropped)

	b.CipherAlgorithm(0x1000)
	b.CipherAlgorithm(0x9999)
	b.ErrorReason(0x0A0001FF)
	b.CipherCapabilities(0x1000 | 0x8000 | 0x4000_0000)

	assert.Equal(t, mappedBefore+2, testutil.ToFloat64(mapped))
	assert.Equal(t, unmappedBefore+1, testutil.ToFloat64(unmapped))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(errUnmapped))
	assert.Equal(t, droppedBefore+2, testutil.ToFloat64(dropped))
}

func TestBinding_MetricsDisabled(t *testing.T) {
	b, err := newTestDispatcher(t).Select("wisec")
	require.NoError(t, err)

	counter := metrics.TranslationsTotal.WithLabelValues("wisec", metrics.SpaceDigest, metrics.ResultMapped)
	before := testutil.ToFloat64(counter)

	metrics.Disable()
	defer metrics.Enable()
	b.DigestAlgorithm(wisec.SM3)

	assert.Equal(t, before, testutil.ToFloat64(counter))
}

func TestBinding_LogsDroppedBits(t *testing.T) {
	var buf bytes.Buffer
	d := newTestDispatcher(t, WithLogger(logging.New("debug", "text", &buf)))

	b, err := d.Select("wisec")
	require.NoError(t, err)
	b.DigestCapabilities(wisec.SM3 | 0x01)

	out := buf.String()
	assert.Contains(t, out, "dropped unmapped digest capability bits 0x00000001")
	assert.Contains(t, out, "binding="+b.ID())
	assert.Contains(t, out, "vendor=wisec")
}

func TestBinding_WithoutUnmappedReporter(t *testing.T) {
	registry, err := vendor.NewRegistry(opaqueVendor{wisec.Adapter})
	require.NoError(t, err)
	d, err := New(registry.Seal())
	require.NoError(t, err)

	b, err := d.Select("wisec")
	require.NoError(t, err)

	_, ok := b.Adapter().(vendor.UnmappedReporter)
	assert.False(t, ok)
	assert.Equal(t, skf.CapabilityMask(skf.SGD_SM4), b.CipherCapabilities(0x1000|0x8000))
}
