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
)

// TestTimeTriggerModulatedFourHourBoundaries walks the worked example:
// a 4-hour modulated interval anchored at the start of the day rolls
// at 04:00, 08:00, 12:00, 16:00.
func TestTimeTriggerModulatedFourHourBoundaries(t *testing.T) {
	loc := time.UTC
	trig := rolling.NewTimeTrigger(rolling.UnitHour, 4, true, 0)

	now := time.Date(2026, 8, 6, 3, 0, 0, 0, loc)
	trig.Init(rolling.State{Now: now})

	steps := []struct {
		probe time.Time
		want  bool
	}{
		{time.Date(2026, 8, 6, 3, 59, 0, 0, loc), false},
		{time.Date(2026, 8, 6, 4, 0, 0, 0, loc), true},
		{time.Date(2026, 8, 6, 7, 59, 0, 0, loc), false},
		{time.Date(2026, 8, 6, 8, 0, 0, 0, loc), true},
		{time.Date(2026, 8, 6, 11, 59, 0, 0, loc), false},
		{time.Date(2026, 8, 6, 12, 0, 0, 0, loc), true},
		{time.Date(2026, 8, 6, 15, 59, 0, 0, loc), false},
		{time.Date(2026, 8, 6, 16, 0, 0, 0, loc), true},
	}
	for _, s := range steps {
		got := trig.ShouldRotate(rolling.State{Now: s.probe})
		assert.Equalf(t, s.want, got, "at %s", s.probe)
	}
}

func TestTimeTriggerStaleFileCatchUp(t *testing.T) {
	loc := time.UTC
	trig := rolling.NewTimeTrigger(rolling.UnitDay, 1, true, 0)

	now := time.Date(2026, 8, 6, 9, 0, 0, 0, loc)
	staleModTime := time.Date(2026, 8, 4, 23, 0, 0, 0, loc)

	trig.Init(rolling.State{Now: now, FileExists: true, FileModTime: staleModTime})
	assert.True(t, trig.ShouldRotate(rolling.State{Now: now}))
}

func TestTimeTriggerFreshFileNoImmediateRotate(t *testing.T) {
	loc := time.UTC
	trig := rolling.NewTimeTrigger(rolling.UnitDay, 1, true, 0)

	now := time.Date(2026, 8, 6, 9, 0, 0, 0, loc)
	freshModTime := time.Date(2026, 8, 6, 1, 0, 0, 0, loc)

	trig.Init(rolling.State{Now: now, FileExists: true, FileModTime: freshModTime})
	assert.False(t, trig.ShouldRotate(rolling.State{Now: now}))
}

func TestParseTimeUnit(t *testing.T) {
	u, ok := rolling.ParseTimeUnit("hour")
	assert.True(t, ok)
	assert.Equal(t, rolling.UnitHour, u)

	_, ok = rolling.ParseTimeUnit("fortnight")
	assert.False(t, ok)
}
