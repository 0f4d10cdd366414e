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

package skf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityMask_Has(t *testing.T) {
	mask := CapabilityMask(0).With(SGD_SM4_CBC)

	assert.True(t, mask.Has(SGD_SM4_CBC))
	assert.True(t, mask.Has(SGD_SM4), "mode bits imply the family bit")
	assert.False(t, mask.Has(SGD_SM4_ECB))
	assert.False(t, mask.Has(AlgorithmNone))
}

func TestCapabilityMask_Algorithms(t *testing.T) {
	mask := CapabilityMask(SGD_SM4 | SGD_SM4_CBC)
	assert.Equal(t, []AlgorithmID{SGD_SM4, SGD_SM4_CBC}, mask.Algorithms(ClassCipher))

	digests := CapabilityMask(SGD_SM3 | SGD_SHA256)
	assert.Equal(t, []AlgorithmID{SGD_SM3, SGD_SHA256}, digests.Algorithms(ClassDigest))

	assert.Empty(t, CapabilityMask(0).Algorithms(ClassCipher))
}

func TestCapabilityMask_Format(t *testing.T) {
	tests := []struct {
		name  string
		mask  CapabilityMask
		class AlgorithmClass
		want  string
	}{
		{"zero", 0, ClassCipher, "0"},
		{"sm4 cbc", CapabilityMask(SGD_SM4_CBC), ClassCipher, "SGD_SM4|SGD_SM4_CBC"},
		{"digests", CapabilityMask(SGD_SM3 | SGD_SHA1), ClassDigest, "SGD_SM3|SGD_SHA1"},
		{"no known algorithms", CapabilityMask(0x80000000), ClassCipher, "0x80000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mask.Format(tt.class))
		})
	}
}

func TestCapabilityMask_String(t *testing.T) {
	assert.Equal(t, "0x00000402", CapabilityMask(SGD_SM4_CBC).String())
}
