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

import "bytes"

// FilterResult is the tri-valued outcome of evaluating one appender
// filter (spec §4.3).
type FilterResult int8

const (
	Neutral FilterResult = iota
	Accept
	Deny
)

// Filter is a per-appender pre-dispatch predicate.
type Filter interface {
	Decide(e *Event) FilterResult
}

// RunFilters evaluates filters left-to-right; the first non-Neutral
// result wins. No filters, or all Neutral, means Accept.
func RunFilters(filters []Filter, e *Event) FilterResult {
	for _, f := range filters {
		if r := f.Decide(e); r == Accept || r == Deny {
			return r
		}
	}
	return Accept
}

// Encoder formats an Event into a byte buffer. Implementations must
// not retain buf or e past the call.
type Encoder interface {
	Encode(buf *bytes.Buffer, e *Event) error
}

// Appender is a named sink. Drivers (console/file/rolling-file) each
// pair a Encoder with zero or more Filters and implement this
// interface; the logger graph holds appenders purely through it so
// the hot dispatch path never depends on a concrete driver package.
type Appender interface {
	ID() string
	// Write encodes e with the appender's encoder and hands the
	// bytes to the driver. Filters have already been evaluated by the
	// caller (the dispatcher) by the time Write is called.
	Write(e *Event) error
	// Flush forces buffered bytes to the underlying sink.
	Flush() error
	// Filters returns the appender's configured filter chain, in
	// declaration order, so the dispatcher can run RunFilters before
	// calling Write.
	Filters() []Filter
	// Close releases any OS resources (file handles, workers). Called
	// once no live graph references the appender any longer.
	Close() error
}
