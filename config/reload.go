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

package config

import (
	"os"
	"sync"
	"time"

	"github.com/arborlog/arbor"
	"github.com/arborlog/arbor/internal/diag"
)

// Reloader periodically re-stats a config file and, if its mtime has
// moved since the last check, re-parses and rebuilds the graph and
// swaps it into handle (spec §4.8). A parse or build failure is
// reported through diag and the previously active graph is left in
// place untouched — a bad reload never tears down a working config.
type Reloader struct {
	path     string
	interval time.Duration
	reg      *Registry
	handle   *arbor.Handle

	mu      sync.Mutex
	started bool
	lastMod time.Time
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewReloader builds a reload loop that has not yet been started.
func NewReloader(path string, interval time.Duration, reg *Registry, handle *arbor.Handle) *Reloader {
	return &Reloader{path: path, interval: interval, reg: reg, handle: handle}
}

// Start launches the reload loop's goroutine. Calling it twice is a
// programming error.
func (r *Reloader) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		panic("config: Reloader already started")
	}
	r.started = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	if info, err := os.Stat(r.path); err == nil {
		r.lastMod = info.ModTime()
	}
	go r.run()
}

// Stop terminates the reload loop and waits for its goroutine to
// exit. Safe to call on a Reloader that was never started.
func (r *Reloader) Stop() {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	close(r.stopCh)
	<-r.doneCh
}

func (r *Reloader) run() {
	defer close(r.doneCh)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Reloader) tick() {
	info, err := os.Stat(r.path)
	if err != nil {
		diag.Reportf("reload", "stat %s: %v", r.path, err)
		return
	}
	if !info.ModTime().After(r.lastMod) {
		return
	}

	raw, err := LoadDocument(r.path)
	if err != nil {
		diag.Reportf("reload", "loading %s: %v", r.path, err)
		return
	}
	doc, err := DecodeDocument(raw)
	if err != nil {
		diag.Reportf("reload", "decoding %s: %v", r.path, err)
		return
	}
	graph, err := Build(doc, r.reg)
	if err != nil {
		diag.Reportf("reload", "building %s: %v", r.path, err)
		return
	}

	r.lastMod = info.ModTime()
	r.handle.SetConfig(graph)
}

// LoadAndInit loads path, builds the initial graph, installs it via
// arbor.Init, and — if the document sets refresh_rate — starts a
// Reloader watching the same file. The returned *Reloader is nil when
// no refresh_rate was configured.
func LoadAndInit(path string, reg *Registry) (*arbor.Handle, *Reloader, error) {
	raw, err := LoadDocument(path)
	if err != nil {
		return nil, nil, err
	}
	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, nil, err
	}
	graph, err := Build(doc, reg)
	if err != nil {
		return nil, nil, err
	}
	handle, err := arbor.Init(graph)
	if err != nil {
		return nil, nil, err
	}

	var reloader *Reloader
	if doc.RefreshRate != "" {
		interval, err := ParseDuration(doc.RefreshRate)
		if err != nil {
			return nil, nil, err
		}
		reloader = NewReloader(path, interval, reg, handle)
		reloader.Start()
	}
	return handle, reloader, nil
}
