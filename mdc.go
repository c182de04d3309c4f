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

import "sync"

// MDC is a small mapped-diagnostic-context helper. Call sites that
// don't want to build an []KV by hand can stash values on an MDC and
// pass m.KVs()... to a Logger method; KVs flattens it in insertion
// order.
//
// Every method takes the MDC's own mutex, so one instance may be
// shared across goroutines; it is typically used one instance per
// logical unit of work.
type MDC struct {
	mu   sync.Mutex
	keys []string
	vals map[string]string
}

// NewMDC returns an empty MDC.
func NewMDC() *MDC {
	return &MDC{vals: make(map[string]string)}
}

// Set stores key=value, remembering insertion order for new keys.
func (m *MDC) Set(key, value string) *MDC {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
	return m
}

// Get returns the value for key and whether it was set.
func (m *MDC) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	return v, ok
}

// KVs renders the MDC as an ordered []KV suitable for Event.KVs.
func (m *MDC) KVs() []KV {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]KV, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, KV{Key: k, Value: m.vals[k]})
	}
	return out
}
