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

	"github.com/arborlog/arbor/rolling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyDelegatesToTrigger(t *testing.T) {
	trig, err := rolling.NewSizeTrigger(10)
	require.NoError(t, err)
	roller := rolling.NewDeleteRoller()
	policy := &rolling.Policy{Trigger: trig, Roller: roller}

	policy.Init(rolling.State{})
	assert.False(t, policy.ShouldRotate(rolling.State{CurrentSize: 5, PendingLen: 1}))
	assert.True(t, policy.ShouldRotate(rolling.State{CurrentSize: 10, PendingLen: 1}))
}

func TestStartupTriggerFiresOnceForPreexistingFile(t *testing.T) {
	trig := rolling.NewStartupTrigger(1)
	trig.Init(rolling.State{FileExists: true, CurrentSize: 10})
	assert.True(t, trig.ShouldRotate(rolling.State{}))
	assert.False(t, trig.ShouldRotate(rolling.State{}))
}

func TestStartupTriggerSkipsEmptyFile(t *testing.T) {
	trig := rolling.NewStartupTrigger(1)
	trig.Init(rolling.State{FileExists: true, CurrentSize: 0})
	assert.False(t, trig.ShouldRotate(rolling.State{}))
}

func TestStartupTriggerSkipsAbsentFile(t *testing.T) {
	trig := rolling.NewStartupTrigger(1)
	trig.Init(rolling.State{FileExists: false})
	assert.False(t, trig.ShouldRotate(rolling.State{}))
}
