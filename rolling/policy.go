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

// Package rolling implements the triggers and rollers that make up a
// rolling-file appender's policy (spec §4.5): a trigger decides
// whether a rotation is needed before a write proceeds, a roller
// relocates the active file once a rotation has been decided.
package rolling

import "time"

// State is the information a Trigger needs to decide whether a
// rotation is due.
type State struct {
	CurrentSize int64
	PendingLen  int
	FileExists  bool
	FileModTime time.Time
	Now         time.Time
}

// Trigger is evaluated before every write.
type Trigger interface {
	// ShouldRotate decides whether a rotation must happen before the
	// pending write proceeds.
	ShouldRotate(s State) bool
	// Init is called once, when the appender opens its active file
	// for the first time in the process's lifetime, so a trigger can
	// establish its starting boundary or fire a one-shot startup
	// check (§4.5 OnStartup, and the time trigger's stale-file catch
	// up rule).
	Init(s State)
}

// Roller relocates the active file once ShouldRotate has returned
// true. It is always called with the appender's write mutex held.
type Roller interface {
	Rotate(activePath string) error
}

// Policy pairs exactly one trigger with one roller — spec §4.5:
// "Policy kind: compound (only one)."
type Policy struct {
	Trigger Trigger
	Roller  Roller
}

// ShouldRotate evaluates the policy's trigger.
func (p *Policy) ShouldRotate(s State) bool {
	return p.Trigger.ShouldRotate(s)
}

// Init evaluates the policy's trigger's one-time startup check.
func (p *Policy) Init(s State) {
	p.Trigger.Init(s)
}

// Rotate relocates the active file via the policy's roller.
func (p *Policy) Rotate(activePath string) error {
	return p.Roller.Rotate(activePath)
}
