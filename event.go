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

package arbor

import "time"

// KV is a single key-value pair attached to an event. Values are
// stringly typed: the upstream facade has already rendered them by
// the time they reach arbor (spec: "an ordered list of key-value
// pairs (string key, stringly-typed value)").
type KV struct {
	Key   string
	Value string
}

// Source describes where an event was logged from.
type Source struct {
	File   string
	Line   int
	Module string
}

// Event is the immutable record handed from the upstream emission
// facade into the logger graph. Nothing in arbor mutates an Event
// after it is constructed; appenders and encoders only read it.
type Event struct {
	// Wall is the wall-clock timestamp. Mono, if non-zero, is a
	// monotonic reading taken at the same instant — kept separately
	// because formatting (and JSON serialization) only ever wants
	// Wall, but duration math between events should prefer Mono.
	Wall time.Time
	Mono int64

	Level  Level
	Target string // dotted logger name the event was logged against

	Source Source

	ThreadID   int64
	ThreadName string
	PID        int

	// Message is pre-formatted text produced lazily by the upstream
	// facade; arbor never interpolates it itself.
	Message string

	// KVs is the ordered list of key-value pairs; it is also the
	// backing store MDC reads/writes address by key.
	KVs []KV
}

// KV looks up the last key-value pair with the given key, matching
// MDC "by key" lookup semantics (§4.1 {X}/mdc). Later entries shadow
// earlier ones with the same key, consistent with how an MDC set
// would overwrite a previous value for the same key.
func (e *Event) KV(key string) (string, bool) {
	for i := len(e.KVs) - 1; i >= 0; i-- {
		if e.KVs[i].Key == key {
			return e.KVs[i].Value, true
		}
	}
	return "", false
}
