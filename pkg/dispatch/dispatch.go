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
	"fmt"
	"slices"
	"strings"

	"github.com/jeremyhahn/go-skf/pkg/logging"
	"github.com/jeremyhahn/go-skf/pkg/metrics"
	"github.com/jeremyhahn/go-skf/pkg/skf"
	"github.com/jeremyhahn/go-skf/pkg/validation"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
)

// DeviceInfo carries the DEVINFO fields used to pick and apply an adapter.
// Capability masks are in the vendor's native layout.
type DeviceInfo struct {
	Manufacturer string
	Label        string
	SerialNumber string
	AlgSymCap    uint32
	AlgAsymCap   uint32
	AlgHashCap   uint32
}

// Capabilities holds a device's capability masks in the standard space.
type Capabilities struct {
	Cipher    skf.CapabilityMask
	Digest    skf.CapabilityMask
	PublicKey skf.CapabilityMask
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger *logging.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithAliases maps device manufacturer strings to adapter names. Keys are
// normalized the same way DeviceInfo.Manufacturer is; two keys that normalize
// to the same manufacturer, or a key that normalizes to nothing, make New
// fail with ErrAliasConflict.
func WithAliases(aliases map[string]string) Option {
	return func(d *Dispatcher) {
		manufacturers := make([]string, 0, len(aliases))
		for manufacturer := range aliases {
			manufacturers = append(manufacturers, manufacturer)
		}
		slices.Sort(manufacturers)
		for _, manufacturer := range manufacturers {
			key := NormalizeManufacturer(manufacturer)
			if key == "" {
				d.setErr(fmt.Errorf("%w: %q is empty after normalization", ErrAliasConflict, manufacturer))
				continue
			}
			if prev, ok := d.aliasKeys[key]; ok {
				d.setErr(fmt.Errorf("%w: %q and %q both normalize to %q", ErrAliasConflict, prev, manufacturer, key))
				continue
			}
			d.aliasKeys[key] = manufacturer
			d.aliases[key] = aliases[manufacturer]
		}
	}
}

// WithEnabled restricts dispatch to the named adapters. Without it every
// adapter in the registry is eligible.
func WithEnabled(names ...string) Option {
	return func(d *Dispatcher) {
		if len(names) == 0 {
			return
		}
		d.enabled = make(map[string]struct{}, len(names))
		for _, name := range names {
			d.enabled[name] = struct{}{}
		}
	}
}

// Dispatcher selects the adapter for a connected device. It is read-only
// after New returns and safe for concurrent use.
type Dispatcher struct {
	registry *vendor.Registry
	logger   *logging.Logger
	aliases  map[string]string
	enabled  map[string]struct{}

	// aliasKeys maps a normalized alias to the key it was configured as.
	aliasKeys map[string]string
	optErr    error
}

// New creates a dispatcher over a sealed registry. Every enabled name and
// alias target must resolve; a dangling reference is a configuration error.
func New(registry *vendor.Registry, opts ...Option) (*Dispatcher, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if !registry.Sealed() {
		return nil, ErrUnsealedRegistry
	}
	d := &Dispatcher{
		registry:  registry,
		logger:    logging.Discard(),
		aliases:   make(map[string]string),
		aliasKeys: make(map[string]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.optErr != nil {
		return nil, d.optErr
	}
	for name := range d.enabled {
		if _, err := registry.Resolve(name); err != nil {
			return nil, fmt.Errorf("enabled vendor: %w", err)
		}
	}
	for manufacturer, name := range d.aliases {
		if _, err := registry.Resolve(name); err != nil {
			return nil, fmt.Errorf("alias %q: %w", manufacturer, err)
		}
		if !d.isEnabled(name) {
			return nil, fmt.Errorf("alias %q targets disabled vendor %q", manufacturer, name)
		}
	}
	metrics.SetRegisteredVendors(len(d.Vendors()))
	d.logger.Debug("vendor dispatcher ready", "vendors", d.Vendors())
	return d, nil
}

// Vendors returns the names of the adapters eligible for dispatch, sorted.
func (d *Dispatcher) Vendors() []string {
	if d.enabled == nil {
		return d.registry.Names()
	}
	names := make([]string, 0, len(d.enabled))
	for name := range d.enabled {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Select binds the adapter registered under exactly name.
func (d *Dispatcher) Select(name string) (*Binding, error) {
	v, err := d.resolve(name)
	if err != nil {
		metrics.RecordResolution(metrics.VendorUnsupported, err)
		d.logger.Warn("vendor not supported", "vendor", validation.SanitizeForLog(name))
		return nil, err
	}
	metrics.RecordResolution(v.Name(), nil)
	b := newBinding(v, d.logger)
	b.logger.Debug("vendor adapter bound")
	return b, nil
}

// SelectDevice binds the adapter for a device, matching its normalized
// manufacturer string against the aliases first and adapter names second.
func (d *Dispatcher) SelectDevice(info DeviceInfo) (*Binding, error) {
	manufacturer := NormalizeManufacturer(info.Manufacturer)
	name := manufacturer
	if alias, ok := d.aliases[manufacturer]; ok {
		name = alias
	}
	b, err := d.Select(name)
	if err != nil {
		return nil, fmt.Errorf("manufacturer %q: %w", manufacturer, err)
	}
	return b, nil
}

func (d *Dispatcher) resolve(name string) (vendor.Vendor, error) {
	if !d.isEnabled(name) {
		return nil, fmt.Errorf("%w: %w: %q is disabled", ErrUnsupportedDevice, vendor.ErrVendorNotFound, name)
	}
	v, err := d.registry.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDevice, err)
	}
	return v, nil
}

// setErr keeps the first option error.
func (d *Dispatcher) setErr(err error) {
	if d.optErr == nil {
		d.optErr = err
	}
}

func (d *Dispatcher) isEnabled(name string) bool {
	if d.enabled == nil {
		return true
	}
	_, ok := d.enabled[name]
	return ok
}

// NormalizeManufacturer strips the NUL padding and surrounding whitespace of
// a fixed-size DEVINFO string.
func NormalizeManufacturer(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
