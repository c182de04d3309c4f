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

// StartupTrigger fires exactly once per process lifetime, when the
// active file already exists at process start and is at least
// MinSize bytes (spec §4.5: default MinSize is 1).
type StartupTrigger struct {
	MinSize int64

	fired       bool
	fireOnFirst bool
}

// NewStartupTrigger builds a startup trigger. minSize <= 0 defaults
// to 1, per spec.
func NewStartupTrigger(minSize int64) *StartupTrigger {
	if minSize <= 0 {
		minSize = 1
	}
	return &StartupTrigger{MinSize: minSize}
}

// Init implements Trigger: decides, once, whether the pre-existing
// file warrants an immediate rotation.
func (t *StartupTrigger) Init(s State) {
	if s.FileExists && s.CurrentSize >= t.MinSize {
		t.fireOnFirst = true
	}
}

// ShouldRotate implements Trigger. Only the first call after Init can
// fire, and it fires only if Init found a qualifying file; the
// size/pending-write arguments are ignored.
func (t *StartupTrigger) ShouldRotate(State) bool {
	if t.fired {
		return false
	}
	t.fired = true
	return t.fireOnFirst
}
