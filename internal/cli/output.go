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
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// VendorSummary is one row of the vendor list.
type VendorSummary struct {
	Name      string `json:"name"`
	KeyLength int    `json:"key_length"`
}

// TableEntry is one algorithm pair of an adapter table.
type TableEntry struct {
	Standard   string `json:"standard"`
	StandardID string `json:"standard_id"`
	VendorID   string `json:"vendor_id"`
}

// VendorInfo describes one adapter and its tables.
type VendorInfo struct {
	Name       string       `json:"name"`
	KeyLength  int          `json:"key_length"`
	Ciphers    []TableEntry `json:"ciphers"`
	Digests    []TableEntry `json:"digests"`
	PublicKeys []TableEntry `json:"public_keys"`
	ErrorCodes int          `json:"error_codes"`
}

// Translation is the result of an identifier translation.
type Translation struct {
	Vendor   string `json:"vendor"`
	Space    string `json:"space"`
	VendorID string `json:"vendor_id"`
	Standard string `json:"standard"`
	Mapped   bool   `json:"mapped"`
}

// CapabilityResult is the result of a capability mask translation.
type CapabilityResult struct {
	Vendor     string   `json:"vendor"`
	Space      string   `json:"space"`
	VendorMask string   `json:"vendor_mask"`
	Mask       string   `json:"mask"`
	Algorithms []string `json:"algorithms"`
	Dropped    string   `json:"dropped_bits"`
}

// ReasonResult is the result of an error code translation.
type ReasonResult struct {
	Vendor     string `json:"vendor"`
	Code       string `json:"code"`
	Reason     string `json:"reason"`
	ReasonCode uint32 `json:"reason_code"`
	Known      bool   `json:"known"`
}

// DeviceResult is the adapter selected for a device and its capabilities.
type DeviceResult struct {
	Manufacturer string             `json:"manufacturer"`
	Vendor       string             `json:"vendor"`
	Binding      string             `json:"binding"`
	KeyLength    int                `json:"key_length"`
	Capabilities []CapabilityResult `json:"capabilities"`
}

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintVendorList prints the vendors eligible for dispatch
func (p *Printer) PrintVendorList(vendors []VendorSummary) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"vendors": vendors,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, "Available Vendors:")
		for _, v := range vendors {
			fmt.Fprintf(p.writer, "  - %s (key length %d)\n", v.Name, v.KeyLength)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintVendorInfo prints an adapter's metadata and translation tables
func (p *Printer) PrintVendorInfo(info VendorInfo) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(info)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Vendor: %s\n", info.Name)
		fmt.Fprintf(p.writer, "Key length: %d\n", info.KeyLength)
		p.printTable("Ciphers", info.Ciphers)
		p.printTable("Digests", info.Digests)
		p.printTable("Public keys", info.PublicKeys)
		fmt.Fprintf(p.writer, "Error codes: %d\n", info.ErrorCodes)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printTable(title string, entries []TableEntry) {
	fmt.Fprintf(p.writer, "%s (%d):\n", title, len(entries))
	for _, e := range entries {
		fmt.Fprintf(p.writer, "  %-14s %s <- %s\n", e.Standard, e.StandardID, e.VendorID)
	}
}

// PrintTranslation prints an identifier translation
func (p *Printer) PrintTranslation(t Translation) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(t)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "%s %s %s -> %s\n", t.Vendor, t.Space, t.VendorID, t.Standard)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintCapabilities prints a capability mask translation
func (p *Printer) PrintCapabilities(c CapabilityResult) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(c)
	case OutputFormatText:
		p.printCapabilities(c)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printCapabilities(c CapabilityResult) {
	fmt.Fprintf(p.writer, "%s %s %s -> %s", c.Vendor, c.Space, c.VendorMask, c.Mask)
	if len(c.Algorithms) > 0 {
		fmt.Fprintf(p.writer, " (%s)", strings.Join(c.Algorithms, "|"))
	}
	fmt.Fprintln(p.writer)
	if c.Dropped != "" {
		fmt.Fprintf(p.writer, "  dropped unmapped bits: %s\n", c.Dropped)
	}
}

// PrintReason prints an error code translation
func (p *Printer) PrintReason(r ReasonResult) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(r)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "%s %s -> %s (%d)\n", r.Vendor, r.Code, r.Reason, r.ReasonCode)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintDevice prints the adapter bound to a device
func (p *Printer) PrintDevice(d DeviceResult) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(d)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Manufacturer: %s\n", d.Manufacturer)
		fmt.Fprintf(p.writer, "Vendor: %s\n", d.Vendor)
		fmt.Fprintf(p.writer, "Binding: %s\n", d.Binding)
		fmt.Fprintf(p.writer, "Key length: %d\n", d.KeyLength)
		for _, c := range d.Capabilities {
			p.printCapabilities(c)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		})
	default:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	}
}

func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
