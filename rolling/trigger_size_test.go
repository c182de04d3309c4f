// Copyright 2026 The arbor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rolling_test

import (
	"testing"
	"time"

	"github.com/arborlog/arbor/rolling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTriggerRejectsZeroLimit(t *testing.T) {
	_, err := rolling.NewSizeTrigger(0)
	assert.Error(t, err)
}

func TestSizeTriggerRotatesAfterFirstByteOverLimit(t *testing.T) {
	trig, err := rolling.NewSizeTrigger(1)
	require.NoError(t, err)

	now := time.Now()
	assert.False(t, trig.ShouldRotate(rolling.State{CurrentSize: 0, PendingLen: 1, Now: now}))
	assert.True(t, trig.ShouldRotate(rolling.State{CurrentSize: 1, PendingLen: 1, Now: now}))
}

func TestSizeTriggerExactLimitDoesNotRotate(t *testing.T) {
	trig, err := rolling.NewSizeTrigger(100)
	require.NoError(t, err)
	assert.False(t, trig.ShouldRotate(rolling.State{CurrentSize: 90, PendingLen: 10}))
	assert.True(t, trig.ShouldRotate(rolling.State{CurrentSize: 90, PendingLen: 11}))
}
