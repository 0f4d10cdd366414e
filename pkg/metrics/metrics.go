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

// Package metrics provides Prometheus instrumentation for vendor translation.
// It counts translations by outcome, capability bits dropped for lack of a
// mapping, and adapter resolutions, so that a vendor firmware change that
// outgrows its tables shows up on a dashboard instead of silently disabling
// algorithms.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all translation metrics
	Namespace = "skf"

	// Label names
	LabelVendor = "vendor"
	LabelSpace  = "space"
	LabelResult = "result"
	LabelStatus = "status"

	// Translation results
	ResultMapped   = "mapped"
	ResultUnmapped = "unmapped"

	// Resolution status values
	StatusSuccess = "success"
	StatusError   = "error"

	// VendorUnsupported labels failed resolutions. Resolution labels never
	// carry device-supplied text.
	VendorUnsupported = "unsupported"

	// Identifier spaces
	SpaceCipher    = "cipher"
	SpaceDigest    = "digest"
	SpacePublicKey = "pkey"
	SpaceError     = "error"
)

var (
	// TranslationsTotal counts identifier and error-code translations by
	// vendor, space and whether a mapping existed.
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "translations_total",
			Help:      "Total number of vendor identifier translations by vendor, space, and result",
		},
		[]string{LabelVendor, LabelSpace, LabelResult},
	)

	// CapabilityBitsDroppedTotal counts vendor capability bits that had no
	// standard counterpart and were dropped from a translated mask.
	CapabilityBitsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "capability_bits_dropped_total",
			Help:      "Total number of vendor capability bits dropped for lack of a mapping",
		},
		[]string{LabelVendor, LabelSpace},
	)

	// ResolutionsTotal counts adapter lookups by resolved vendor and status.
	// Failed lookups share the VendorUnsupported label.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "resolutions_total",
			Help:      "Total number of vendor adapter resolutions by vendor and status",
		},
		[]string{LabelVendor, LabelStatus},
	)

	// RegisteredVendors is the number of adapters available to the dispatcher.
	RegisteredVendors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "registered_vendors",
			Help:      "Number of vendor adapters available for dispatch",
		},
	)

	// enabled tracks whether metrics collection is enabled
	enabled atomic.Bool
)

func init() {
	// Metrics are enabled by default
	enabled.Store(true)
}

// RecordTranslation records one translation. mapped is false when the
// vendor value had no entry in the adapter's table.
func RecordTranslation(vendor, space string, mapped bool) {
	if !enabled.Load() {
		return
	}
	result := ResultMapped
	if !mapped {
		result = ResultUnmapped
	}
	TranslationsTotal.WithLabelValues(vendor, space, result).Inc()
}

// RecordDroppedBits adds the number of dropped capability bits. Zero is a
// no-op so callers can pass the popcount unconditionally.
func RecordDroppedBits(vendor, space string, bits int) {
	if !enabled.Load() || bits <= 0 {
		return
	}
	CapabilityBitsDroppedTotal.WithLabelValues(vendor, space).Add(float64(bits))
}

// RecordResolution records an adapter lookup. vendor is the resolved
// adapter name; it is ignored on failure so the label set stays bounded.
func RecordResolution(vendor string, err error) {
	if !enabled.Load() {
		return
	}
	status := StatusSuccess
	if err != nil {
		vendor, status = VendorUnsupported, StatusError
	}
	ResolutionsTotal.WithLabelValues(vendor, status).Inc()
}

// SetRegisteredVendors sets the number of adapters available for dispatch.
func SetRegisteredVendors(count int) {
	if !enabled.Load() {
		return
	}
	RegisteredVendors.Set(float64(count))
}

// Enable enables metrics collection.
func Enable() {
	enabled.Store(true)
}

// Disable disables metrics collection.
// Useful for testing or when metrics are not desired.
func Disable() {
	enabled.Store(false)
}

// IsEnabled returns whether metrics collection is currently enabled.
func IsEnabled() bool {
	return enabled.Load()
}
