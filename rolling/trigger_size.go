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

package rolling

// SizeTrigger fires when the active file's size plus the pending
// write would exceed a configured limit (spec §4.5).
type SizeTrigger struct {
	LimitBytes int64
}

// NewSizeTrigger validates limit > 0 (spec §4.7: "size limit = 0" is
// a build error) and returns a SizeTrigger.
func NewSizeTrigger(limitBytes int64) (*SizeTrigger, error) {
	if limitBytes <= 0 {
		return nil, errZeroSizeLimit
	}
	return &SizeTrigger{LimitBytes: limitBytes}, nil
}

// ShouldRotate implements Trigger.
func (t *SizeTrigger) ShouldRotate(s State) bool {
	return s.CurrentSize+int64(s.PendingLen) > t.LimitBytes
}

// Init implements Trigger; size triggers have no startup behavior.
func (t *SizeTrigger) Init(State) {}
