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

package cli

import (
	"fmt"

	"github.com/jeremyhahn/go-skf/pkg/dispatch"
	"github.com/jeremyhahn/go-skf/pkg/skf"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
	"github.com/spf13/cobra"
)

func newTranslateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <vendor> <cipher|digest|pkey> <id>",
		Short: "Translate a vendor algorithm identifier",
		Long: `Translate a vendor-native algorithm identifier into its GM/T 0006
standard identifier. Unmapped identifiers print NONE.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := skf.ParseAlgorithmClass(args[1])
			if err != nil {
				return err
			}
			vendorID, err := parseUint32(args[2])
			if err != nil {
				return err
			}
			b, err := selectVendor(cfg, cmd, args[0])
			if err != nil {
				return err
			}

			var id skf.AlgorithmID
			var ok bool
			switch class {
			case skf.ClassCipher:
				id, ok = b.CipherAlgorithm(vendorID)
			case skf.ClassDigest:
				id, ok = b.DigestAlgorithm(vendorID)
			case skf.ClassPublicKey:
				id, ok = b.PublicKeyAlgorithm(vendorID)
			}

			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintTranslation(Translation{
				Vendor:   b.Name(),
				Space:    class.String(),
				VendorID: fmt.Sprintf("0x%08X", vendorID),
				Standard: id.String(),
				Mapped:   ok,
			})
		},
	}
}

func newCapsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "caps <vendor> <cipher|digest|pkey> <mask>",
		Short: "Translate a vendor capability mask",
		Long: `Translate a vendor-native capability mask into the standard space.
Vendor bits without a standard counterpart are dropped and reported.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := skf.ParseAlgorithmClass(args[1])
			if err != nil {
				return err
			}
			vendorCap, err := parseUint32(args[2])
			if err != nil {
				return err
			}
			b, err := selectVendor(cfg, cmd, args[0])
			if err != nil {
				return err
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).
				PrintCapabilities(capabilityResult(b, class, vendorCap))
		},
	}
}

func newReasonCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reason <vendor> <code>",
		Short: "Translate a vendor error code",
		Long: `Translate a vendor device error code into a failure reason.
Unrecognized codes translate to "unknown", a generic failure.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseUint32(args[1])
			if err != nil {
				return err
			}
			b, err := selectVendor(cfg, cmd, args[0])
			if err != nil {
				return err
			}
			reason := b.ErrorReason(code)
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintReason(ReasonResult{
				Vendor:     b.Name(),
				Code:       fmt.Sprintf("0x%08X", code),
				Reason:     reason.String(),
				ReasonCode: uint32(reason),
				Known:      reason.IsKnown(),
			})
		},
	}
}

func newDeviceCmd(cfg *Config) *cobra.Command {
	var manufacturer, symCap, hashCap, asymCap string

	deviceCmd := &cobra.Command{
		Use:   "device",
		Short: "Select the adapter for a device and translate its capabilities",
		Long: `Select the vendor adapter for a device by its DEVINFO manufacturer
string, applying configured aliases, and translate the device's
AlgSymCap, AlgHashCap and AlgAsymCap masks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := dispatch.DeviceInfo{Manufacturer: manufacturer}
			var err error
			if info.AlgSymCap, err = parseUint32(symCap); err != nil {
				return err
			}
			if info.AlgHashCap, err = parseUint32(hashCap); err != nil {
				return err
			}
			if info.AlgAsymCap, err = parseUint32(asymCap); err != nil {
				return err
			}

			d, err := cfg.CreateDispatcher(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			b, err := d.SelectDevice(info)
			if err != nil {
				return err
			}

			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintDevice(DeviceResult{
				Manufacturer: dispatch.NormalizeManufacturer(manufacturer),
				Vendor:       b.Name(),
				Binding:      b.ID(),
				KeyLength:    b.KeyLength(),
				Capabilities: []CapabilityResult{
					capabilityResult(b, skf.ClassCipher, info.AlgSymCap),
					capabilityResult(b, skf.ClassDigest, info.AlgHashCap),
					capabilityResult(b, skf.ClassPublicKey, info.AlgAsymCap),
				},
			})
		},
	}

	deviceCmd.Flags().StringVar(&manufacturer, "manufacturer", "", "DEVINFO manufacturer string")
	deviceCmd.Flags().StringVar(&symCap, "sym-cap", "0", "DEVINFO AlgSymCap")
	deviceCmd.Flags().StringVar(&hashCap, "hash-cap", "0", "DEVINFO AlgHashCap")
	deviceCmd.Flags().StringVar(&asymCap, "asym-cap", "0", "DEVINFO AlgAsymCap")
	_ = deviceCmd.MarkFlagRequired("manufacturer")

	return deviceCmd
}

func selectVendor(cfg *Config, cmd *cobra.Command, name string) (*dispatch.Binding, error) {
	d, err := cfg.CreateDispatcher(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return d.Select(name)
}

func capabilityResult(b *dispatch.Binding, class skf.AlgorithmClass, vendorCap uint32) CapabilityResult {
	var caps skf.CapabilityMask
	switch class {
	case skf.ClassCipher:
		caps = b.CipherCapabilities(vendorCap)
	case skf.ClassDigest:
		caps = b.DigestCapabilities(vendorCap)
	case skf.ClassPublicKey:
		caps = b.PublicKeyCapabilities(vendorCap)
	}

	result := CapabilityResult{
		Vendor:     b.Name(),
		Space:      class.String(),
		VendorMask: fmt.Sprintf("0x%08X", vendorCap),
		Mask:       caps.String(),
		Algorithms: []string{},
	}
	for _, id := range caps.Algorithms(class) {
		result.Algorithms = append(result.Algorithms, id.String())
	}
	if reporter, ok := b.Adapter().(vendor.UnmappedReporter); ok {
		if dropped := reporter.Unmapped(class, vendorCap); dropped != 0 {
			result.Dropped = fmt.Sprintf("0x%08X", dropped)
		}
	}
	return result
}
