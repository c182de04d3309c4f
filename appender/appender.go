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

// Package appender implements spec §4.4's sink drivers — console,
// file, and rolling-file — all writing through a shared arbor.Encoder
// and arbor.Filter chain. Each driver owns its own mutex around the
// OS handle it writes to, matching the teacher's one-mutex-per-sink
// driver model rather than a single framework-global lock (spec §5).
package appender

import (
	"bytes"
	"sync"

	"github.com/arborlog/arbor"
)

// base carries the fields every driver needs: a stable id, the
// encoder that turns events into bytes, and the filter chain the
// dispatcher consults before Write is called.
type base struct {
	id      string
	encoder arbor.Encoder
	filters []arbor.Filter

	mu  sync.Mutex
	buf bytes.Buffer
}

// ID implements arbor.Appender.
func (b *base) ID() string { return b.id }

// Filters implements arbor.Appender.
func (b *base) Filters() []arbor.Filter { return b.filters }

// encode renders e into b.buf, which callers must hold b.mu for.
func (b *base) encode(e *arbor.Event) error {
	b.buf.Reset()
	return b.encoder.Encode(&b.buf, e)
}
