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

// Package dispatch selects the vendor adapter for a connected token and
// forwards translation calls to it.
//
// A Dispatcher sits on top of a sealed vendor.Registry. It adds the pieces a
// device session needs: matching DEVINFO manufacturer strings (which are NUL
// padded and rarely equal to an adapter name) through configured aliases,
// restricting dispatch to an enabled subset of the compiled-in adapters, and
// instrumenting every translation.
//
// An unknown or disabled vendor is reported as ErrUnsupportedDevice. There is
// never a fallback to another vendor's tables.
//
//	d, err := dispatch.New(vendors.MustDefault(),
//		dispatch.WithAliases(map[string]string{"WISEC Co.,Ltd": "wisec"}))
//	if err != nil {
//		return err
//	}
//	b, err := d.SelectDevice(info)
//	if err != nil {
//		return err // errors.Is(err, dispatch.ErrUnsupportedDevice)
//	}
//	caps := b.Capabilities(info)
package dispatch
