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
	"testing"

	"github.com/jeremyhahn/go-skf/pkg/adapters/gmt0016"
	"github.com/jeremyhahn/go-skf/pkg/adapters/wisec"
	"github.com/jeremyhahn/go-skf/pkg/metrics"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *vendor.Registry {
	t.Helper()
	registry, err := vendor.NewRegistry(wisec.Adapter, gmt0016.Adapter)
	require.NoError(t, err)
	return registry.Seal()
}

func newTestDispatcher(t *testing.T, opts ...Option) *Dispatcher {
	t.Helper()
	d, err := New(newTestRegistry(t), opts...)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	d := newTestDispatcher(t)
	assert.Equal(t, []string{"gmt0016", "wisec"}, d.Vendors())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilRegistry)

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"unknown enabled vendor", []Option{WithEnabled("wisec", "acme")}, vendor.ErrVendorNotFound},
		{"alias to unknown vendor", []Option{WithAliases(map[string]string{"ACME": "acme"})}, vendor.ErrVendorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(newTestRegistry(t), tt.opts...)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_UnsealedRegistry(t *testing.T) {
	registry, err := vendor.NewRegistry(wisec.Adapter)
	require.NoError(t, err)

	d, err := New(registry)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrUnsealedRegistry)

	d, err = New(registry.Seal())
	require.NoError(t, err)
	assert.Equal(t, []string{"wisec"}, d.Vendors())
}

func TestNew_AliasConflict(t *testing.T) {
	tests := []struct {
		name    string
		aliases map[string]string
		wantMsg string
	}{
		{
			"nul padded duplicate",
			map[string]string{"WISEC": "wisec", "WISEC\x00 ": "gmt0016"},
			`"WISEC" and "WISEC\x00 " both normalize to "WISEC"`,
		},
		{
			"space padded duplicate with same target",
			map[string]string{" Acme ": "wisec", "Acme": "wisec"},
			`" Acme " and "Acme" both normalize to "Acme"`,
		},
		{
			"empty after normalization",
			map[string]string{"\x00WISEC": "wisec"},
			"empty after normalization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				d, err := New(newTestRegistry(t), WithAliases(tt.aliases))
				assert.Nil(t, d)
				require.ErrorIs(t, err, ErrAliasConflict)
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNew_AliasConflictAcrossOptions(t *testing.T) {
	_, err := New(newTestRegistry(t),
		WithAliases(map[string]string{"WISEC": "wisec"}),
		WithAliases(map[string]string{"WISEC\x00": "gmt0016"}))
	assert.ErrorIs(t, err, ErrAliasConflict)
}

func TestNew_AliasToDisabledVendor(t *testing.T) {
	_, err := New(newTestRegistry(t),
		WithEnabled("gmt0016"),
		WithAliases(map[string]string{"WISEC": "wisec"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled vendor")
}

func TestWithEnabled_EmptyKeepsAll(t *testing.T) {
	d := newTestDispatcher(t, WithEnabled())
	assert.Equal(t, []string{"gmt0016", "wisec"}, d.Vendors())
}

func TestSelect(t *testing.T) {
	d := newTestDispatcher(t)

	b, err := d.Select("wisec")
	require.NoError(t, err)
	assert.Equal(t, "wisec", b.Name())
	assert.Same(t, wisec.Adapter, b.Adapter())
	assert.NotEmpty(t, b.ID())

	other, err := d.Select("wisec")
	require.NoError(t, err)
	assert.NotEqual(t, b.ID(), other.ID())
}

func TestSelect_Unsupported(t *testing.T) {
	d := newTestDispatcher(t)

	for _, name := range []string{"", "acme", "WISEC"} {
		b, err := d.Select(name)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrUnsupportedDevice, name)
		assert.ErrorIs(t, err, vendor.ErrVendorNotFound, name)
	}
}

func TestSelect_Disabled(t *testing.T) {
	d := newTestDispatcher(t, WithEnabled("gmt0016"))
	assert.Equal(t, []string{"gmt0016"}, d.Vendors())

	_, err := d.Select("wisec")
	assert.ErrorIs(t, err, ErrUnsupportedDevice)
	assert.ErrorIs(t, err, vendor.ErrVendorNotFound)
	assert.Contains(t, err.Error(), "disabled")

	_, err = d.Select("gmt0016")
	assert.NoError(t, err)
}

func TestSelectDevice(t *testing.T) {
	d := newTestDispatcher(t, WithAliases(map[string]string{
		" WISEC Co.,Ltd ": "wisec",
	}))

	tests := []struct {
		name         string
		manufacturer string
		want         string
	}{
		{"exact name", "gmt0016", "gmt0016"},
		{"nul padded", "wisec\x00\x00\x00\x00", "wisec"},
		{"space padded", "  wisec  ", "wisec"},
		{"alias", "WISEC Co.,Ltd", "wisec"},
		{"alias nul padded", "WISEC Co.,Ltd\x00garbage", "wisec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := d.SelectDevice(DeviceInfo{Manufacturer: tt.manufacturer})
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Name())
		})
	}
}

func TestSelectDevice_Unsupported(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.SelectDevice(DeviceInfo{Manufacturer: "Acme Tokens\x00\x00"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedDevice)
	assert.ErrorIs(t, err, vendor.ErrVendorNotFound)
	assert.Contains(t, err.Error(), `"Acme Tokens"`)
}

func TestNormalizeManufacturer(t *testing.T) {
	assert.Equal(t, "wisec", NormalizeManufacturer("wisec\x00\x00"))
	assert.Equal(t, "wisec", NormalizeManufacturer("\twisec \n"))
	assert.Equal(t, "", NormalizeManufacturer("\x00wisec"))
	assert.Equal(t, "", NormalizeManufacturer(""))
}

func TestSelect_RecordsResolutions(t *testing.T) {
	metrics.Enable()
	d := newTestDispatcher(t)

	ok := metrics.ResolutionsTotal.WithLabelValues("gmt0016", metrics.StatusSuccess)
	failed := metrics.ResolutionsTotal.WithLabelValues(metrics.VendorUnsupported, metrics.StatusError)
	okBefore := testutil.ToFloat64(ok)
	failedBefore := testutil.ToFloat64(failed)

	_, err := d.Select("gmt0016")
	require.NoError(t, err)
	_, err = d.Select("nosuchvendor")
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.RegisteredVendors))
}

func TestSelectDevice_NonUTF8Manufacturer(t *testing.T) {
	metrics.Enable()
	d := newTestDispatcher(t)

	failed := metrics.ResolutionsTotal.WithLabelValues(metrics.VendorUnsupported, metrics.StatusError)
	before := testutil.ToFloat64(failed)

	// GBK-encoded manufacturer with DEVINFO NUL padding.
	info := DeviceInfo{Manufacturer: "\xce\xd5\xc6\xe6\x00\x00\x00"}

	var err error
	assert.NotPanics(t, func() {
		_, err = d.SelectDevice(info)
	})
	assert.ErrorIs(t, err, ErrUnsupportedDevice)
	assert.ErrorIs(t, err, vendor.ErrVendorNotFound)
	assert.Equal(t, before+1, testutil.ToFloat64(failed))
}

func TestSelectDevice_BoundedResolutionLabels(t *testing.T) {
	metrics.Enable()
	d := newTestDispatcher(t)

	// Make sure every label the dispatcher can produce already exists.
	_, err := d.Select("wisec")
	require.NoError(t, err)
	_, err = d.Select("gmt0016")
	require.NoError(t, err)
	_, err = d.Select("acme")
	require.Error(t, err)

	failed := metrics.ResolutionsTotal.WithLabelValues(metrics.VendorUnsupported, metrics.StatusError)
	before := testutil.ToFloat64(failed)
	series := testutil.CollectAndCount(metrics.ResolutionsTotal)

	for i := 0; i < 500; i++ {
		_, err := d.SelectDevice(DeviceInfo{Manufacturer: fmt.Sprintf("SN-%d", i)})
		require.ErrorIs(t, err, ErrUnsupportedDevice)
	}

	assert.Equal(t, series, testutil.CollectAndCount(metrics.ResolutionsTotal))
	assert.Equal(t, before+500, testutil.ToFloat64(failed))
}
