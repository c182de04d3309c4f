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

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/arborlog/arbor/internal/diag"
)

// LoggerSpec is one configured logger node, as resolved by the config
// builder (spec §4.7) before the graph is assembled. Name "" denotes
// root.
type LoggerSpec struct {
	Name        string
	Level       LevelFilter
	HasLevel    bool
	AppenderIDs []string
	Additive    bool
}

type graphNode struct {
	level       LevelFilter
	hasLevel    bool
	appenderIDs []string
	additive    bool
}

// Graph is the immutable, built configuration a dispatch runs against
// (spec §3 "Config graph"). It owns the appenders referenced by its
// loggers and is closed once no dispatch holds a reference to it and
// it has been superseded by a newer config (see Handle.SetConfig):
// inflight counts concurrent dispatches in progress against this
// graph, retired is set once Handle.SetConfig swaps this graph out,
// and closeOnce guarantees the appenders are released exactly once,
// whichever of retire/release observes the count drop to zero.
type Graph struct {
	nodes     map[string]*graphNode
	appenders map[string]Appender

	inflight  int64
	retired   int32
	closeOnce sync.Once
	closeErr  error
}

// acquire records a dispatch about to run against g. Paired with
// release.
func (g *Graph) acquire() { atomic.AddInt64(&g.inflight, 1) }

// release records a dispatch against g finishing. If g has already
// been retired and this was the last one, g is closed now rather than
// waiting on the garbage collector (spec §3: "the old graph is
// dropped once all in-flight dispatches finish").
func (g *Graph) release() {
	if atomic.AddInt64(&g.inflight, -1) == 0 && atomic.LoadInt32(&g.retired) == 1 {
		g.doClose()
	}
}

// retire marks g as superseded. If no dispatch currently holds it, it
// is closed immediately; otherwise the last release() closes it.
func (g *Graph) retire() {
	atomic.StoreInt32(&g.retired, 1)
	if atomic.LoadInt64(&g.inflight) == 0 {
		g.doClose()
	}
}

func (g *Graph) doClose() {
	g.closeOnce.Do(func() {
		g.closeErr = g.closeAppenders()
	})
}

// BuildGraph assembles a Graph from resolved logger specs and already
// constructed appenders, enforcing spec §3's invariants: root must
// carry an explicit level, every referenced appender id must exist,
// and logger names must be unique (callers pass a []LoggerSpec, so
// uniqueness is checked here rather than relying on a map key, to give
// a clear duplicate-name error).
func BuildGraph(specs []LoggerSpec, appenders map[string]Appender) (*Graph, error) {
	nodes := make(map[string]*graphNode, len(specs))
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if seen[s.Name] {
			return nil, &ConfigError{Msg: "duplicate logger name " + quote(s.Name)}
		}
		seen[s.Name] = true

		for _, id := range s.AppenderIDs {
			if _, ok := appenders[id]; !ok {
				return nil, &ConfigError{Msg: "logger " + quote(s.Name) + " references unknown appender " + quote(id)}
			}
		}
		nodes[s.Name] = &graphNode{
			level:       s.Level,
			hasLevel:    s.HasLevel,
			appenderIDs: s.AppenderIDs,
			additive:    s.Additive,
		}
	}

	root, ok := nodes[""]
	if !ok || !root.hasLevel {
		return nil, &ConfigError{Msg: "root logger must have an explicit level"}
	}

	return &Graph{nodes: nodes, appenders: appenders}, nil
}

func quote(s string) string { return "\"" + s + "\"" }

// Dispatch implements spec §4.6's per-event algorithm: resolve the
// effective level and appender set by walking target's registered
// ancestors, then fan out to every surviving appender. Trimming one
// dot-segment at a time off target is a string-header slice, not a
// copy; the walk allocates only the dedup set and the collected
// appender-id list.
func (g *Graph) Dispatch(e *Event) {
	var (
		level        LevelFilter
		haveLevel    bool
		appenderIDs  []string
		seenAppender map[string]bool
		stopAdditive bool
	)

	name := e.Target
	for {
		if node, ok := g.nodes[name]; ok {
			if !haveLevel && node.hasLevel {
				level = node.level
				haveLevel = true
			}
			if !stopAdditive {
				for _, id := range node.appenderIDs {
					if seenAppender == nil {
						seenAppender = make(map[string]bool, 4)
					}
					if !seenAppender[id] {
						seenAppender[id] = true
						appenderIDs = append(appenderIDs, id)
					}
				}
				if !node.additive {
					stopAdditive = true
				}
			}
		}
		if haveLevel && stopAdditive {
			break
		}
		if name == "" {
			break
		}
		if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
			name = name[:idx]
		} else {
			name = ""
		}
	}

	if !haveLevel || !level.Passes(e.Level) {
		return
	}

	for _, id := range appenderIDs {
		app := g.appenders[id]
		if app == nil {
			continue
		}
		switch RunFilters(app.Filters(), e) {
		case Deny:
			continue
		}
		if err := app.Write(e); err != nil {
			diag.Reportf("appender:"+id, "write failed: %v", err)
			continue
		}
		if e.Level == Error {
			if err := app.Flush(); err != nil {
				diag.Reportf("appender:"+id, "flush failed: %v", err)
			}
		}
	}
}

// Close releases every appender owned by the graph immediately,
// regardless of any in-flight dispatch count. Handle.SetConfig and
// Shutdown use this path (via retire/doClose) to close a superseded
// or final graph deterministically rather than relying on the
// garbage collector; it is safe to call directly too (tests that
// build a Graph without a Handle do), and safe to call more than
// once — only the first call actually closes anything.
func (g *Graph) Close() error {
	g.doClose()
	return g.closeErr
}

func (g *Graph) closeAppenders() error {
	var first error
	for _, app := range g.appenders {
		if err := app.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
