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

// Package vendors owns the process-wide registry of compiled-in adapters.
//
// Adapters are selected at build time. Each built-in adapter lives in its own
// file guarded by a build tag, so a build with -tags skf_no_wisec ships
// without the WISEC tables. There is no runtime plugin loading.
package vendors

import (
	"sync"

	"github.com/jeremyhahn/go-skf/pkg/vendor"
)

var (
	builtins []vendor.Vendor

	once            sync.Once
	defaultRegistry *vendor.Registry
	defaultErr      error
)

// compiledIn is called from init functions of the per-adapter files.
func compiledIn(v vendor.Vendor) {
	builtins = append(builtins, v)
}

// Default returns the sealed registry of every compiled-in adapter. It is
// built on first use; the error, if any, is a build defect (such as two
// adapters sharing a name) and is returned on every call.
func Default() (*vendor.Registry, error) {
	once.Do(func() {
		registry, err := vendor.NewRegistry(builtins...)
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegistry = registry.Seal()
	})
	return defaultRegistry, defaultErr
}

// MustDefault is like Default but panics if the registry cannot be built.
func MustDefault() *vendor.Registry {
	registry, err := Default()
	if err != nil {
		panic(err)
	}
	return registry
}

// Builtin returns the compiled-in adapters in registration order.
func Builtin() []vendor.Vendor {
	out := make([]vendor.Vendor, len(builtins))
	copy(out, builtins)
	return out
}
