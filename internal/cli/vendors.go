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

	"github.com/jeremyhahn/go-skf/pkg/skf"
	"github.com/jeremyhahn/go-skf/pkg/vendor"
	"github.com/spf13/cobra"
)

func newVendorsCmd(cfg *Config) *cobra.Command {
	vendorsCmd := &cobra.Command{
		Use:   "vendors",
		Short: "List and inspect vendor adapters",
		Long:  `List the vendor adapters compiled into this build and view their translation tables`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all available vendor adapters",
		Long:  `List the vendor adapters eligible for dispatch under the current configuration`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := cfg.CreateDispatcher(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			var summaries []VendorSummary
			for _, name := range d.Vendors() {
				b, err := d.Select(name)
				if err != nil {
					return err
				}
				summaries = append(summaries, VendorSummary{Name: b.Name(), KeyLength: b.KeyLength()})
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintVendorList(summaries)
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info <vendor>",
		Short: "Show the translation tables of a vendor adapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := cfg.CreateDispatcher(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			b, err := d.Select(args[0])
			if err != nil {
				return err
			}
			info := VendorInfo{Name: b.Name(), KeyLength: b.KeyLength()}
			if a, ok := b.Adapter().(*vendor.Adapter); ok {
				info.Ciphers = tableEntries(a.Table(skf.ClassCipher))
				info.Digests = tableEntries(a.Table(skf.ClassDigest))
				info.PublicKeys = tableEntries(a.Table(skf.ClassPublicKey))
				info.ErrorCodes = len(a.Errors())
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintVendorInfo(info)
		},
	}

	vendorsCmd.AddCommand(listCmd)
	vendorsCmd.AddCommand(infoCmd)
	return vendorsCmd
}

func tableEntries(table vendor.AlgorithmTable) []TableEntry {
	entries := make([]TableEntry, len(table))
	for i, p := range table {
		entries[i] = TableEntry{
			Standard:   p.Standard.String(),
			StandardID: fmt.Sprintf("0x%08X", uint32(p.Standard)),
			VendorID:   fmt.Sprintf("0x%08X", p.Vendor),
		}
	}
	return entries
}
