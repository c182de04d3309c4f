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

import "sync/atomic"

// Handle is the clonable, thread-safe reference an application uses
// to atomically swap the active configuration (spec §4.8). Copying a
// *Handle value is just copying a pointer; every copy observes the
// same swaps.
type Handle struct {
	g atomic.Pointer[Graph]
}

// NewHandle builds a standalone Handle around g, independent of the
// package-level Init/GetLogger singleton. Most applications only ever
// need the one global handle Init returns; this constructor exists
// for callers embedding arbor as a library that wants its own
// independently reloadable configuration (e.g. a config package
// wiring a Reloader in a test, without touching global state).
func NewHandle(g *Graph) *Handle {
	h := &Handle{}
	h.g.Store(g)
	return h
}

func newHandle(g *Graph) *Handle { return NewHandle(g) }

// Graph returns the currently active graph. Callers that only want to
// observe the current config (tests, a reload loop checking whether a
// swap already happened) can call this directly; a dispatch should go
// through dispatch instead, so the graph it runs against can't be
// closed out from under it.
func (h *Handle) Graph() *Graph { return h.g.Load() }

// acquireGraph loads the active graph and marks a dispatch as
// in-flight against it, retrying if a concurrent SetConfig swaps the
// pointer out from under the load (spec §5: "a dispatcher loads once
// per event and holds the reference for the dispatch's duration, so
// reload never pulls a graph out from under an in-flight emission").
func (h *Handle) acquireGraph() *Graph {
	for {
		g := h.g.Load()
		g.acquire()
		if h.g.Load() == g {
			return g
		}
		g.release()
	}
}

// dispatch runs e through the active graph, holding it live for the
// call's duration even if SetConfig swaps in a new one concurrently.
func (h *Handle) dispatch(e *Event) {
	g := h.acquireGraph()
	defer g.release()
	g.Dispatch(e)
}

// SetConfig atomically swaps in a new graph. The superseded graph is
// retired: once every dispatch still holding it finishes, its
// appenders are closed deterministically (spec §3: "the old graph is
// dropped once all in-flight dispatches finish"; "destroyed when no
// live graph references it") rather than left for the garbage
// collector, which would never join a rolling appender's background
// compression worker or close its file descriptors on any predictable
// schedule.
func (h *Handle) SetConfig(g *Graph) {
	old := h.g.Swap(g)
	if old != nil {
		old.retire()
	}
}
