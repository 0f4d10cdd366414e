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

func TestReason_String(t *testing.T) {
	assert.Equal(t, "unknown", ReasonUnknown.String())
	assert.Equal(t, "fail", ReasonFail.String())
	assert.Equal(t, "pin_locked", ReasonPINLocked.String())
	assert.Equal(t, "max_container_count", ReasonReachMaxContainerCount.String())
	assert.Equal(t, "wisec_dev_no_auth", ReasonWisecDevNoAuth.String())
	assert.Equal(t, "reason_9999", Reason(9999).String())
}

func TestReason_Values(t *testing.T) {
	assert.Equal(t, Reason(100), ReasonFail)
	assert.Equal(t, Reason(149), ReasonReachMaxContainerCount)
	assert.Equal(t, Reason(150), ReasonWisecAuthBlocked)
	assert.Equal(t, Reason(158), ReasonWisecDevNoAuth)
}

func TestReason_NamesAreUnique(t *testing.T) {
	seen := make(map[string]Reason, len(reasonNames))
	for r, name := range reasonNames {
		if prev, ok := seen[name]; ok {
			t.Errorf("reason name %q used by %d and %d", name, prev, r)
		}
		seen[name] = r
	}
	assert.Len(t, reasonNames, 59)
}

func TestReason_IsKnown(t *testing.T) {
	assert.False(t, ReasonUnknown.IsKnown())
	assert.True(t, ReasonTimeout.IsKnown())
	assert.False(t, Reason(1).IsKnown())
}
