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

// Package filter implements the per-appender pre-dispatch predicates
// described in spec §4.3. Only one kind is defined in the closed set —
// threshold — but arbor.Filter lets the config registry add more, the
// same closed-tagged-variant-plus-registry shape spec §9 prescribes
// for every dynamic kind in this system.
package filter

import "github.com/arborlog/arbor"

// Threshold accepts events at or above a configured severity and
// denies everything else; Off denies unconditionally.
type Threshold struct {
	Level arbor.LevelFilter
}

// NewThreshold builds a Threshold filter.
func NewThreshold(lf arbor.LevelFilter) *Threshold {
	return &Threshold{Level: lf}
}

// Decide implements arbor.Filter.
func (t *Threshold) Decide(e *arbor.Event) arbor.FilterResult {
	if t.Level.Passes(e.Level) {
		return arbor.Accept
	}
	return arbor.Deny
}
