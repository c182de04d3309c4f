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

var (
	mgrMu     sync.RWMutex
	mgrHandle *Handle

	loggersMu sync.Mutex
	loggers   = map[string]*Logger{}
)

// Init installs the first configuration and returns a Handle for
// further programmatic swaps. The state machine is Uninitialized ->
// Initialized(handle) -> Initialized(handle'): there is no
// de-initialization state, so calling Init twice is an error (spec
// §4.8).
func Init(g *Graph) (*Handle, error) {
	mgrMu.Lock()
	defer mgrMu.Unlock()
	if mgrHandle != nil {
		return nil, &InitError{Msg: "already initialized"}
	}
	mgrHandle = newHandle(g)
	return mgrHandle, nil
}

func currentHandle() *Handle {
	mgrMu.RLock()
	defer mgrMu.RUnlock()
	return mgrHandle
}

// SetConfig atomically swaps the active graph. It is a package-level
// convenience equivalent to calling SetConfig on the Handle returned
// by Init; racing it against a reload loop's own SetConfig call is
// the underspecified case spec §9 resolves as "last writer wins".
func SetConfig(g *Graph) error {
	h := currentHandle()
	if h == nil {
		return &InitError{Msg: "not initialized"}
	}
	h.SetConfig(g)
	return nil
}

// GetLogger returns the named logger, memoized: repeated calls with
// the same name return the identical *Logger, matching log4g's
// GetLogger guarantee, so callers may safely cache the result in a
// package-level variable without worrying about reconfiguration
// invalidating it.
func GetLogger(name string) *Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := &Logger{name: name}
	loggers[name] = l
	return l
}

// Shutdown flushes and closes every appender owned by the active
// graph. It does not return the manager to Uninitialized — the state
// machine has no such state — so a later emission simply dispatches
// into closed appenders and reports write failures to the error
// handler, as it would for any other I/O failure.
func Shutdown() error {
	h := currentHandle()
	if h == nil {
		return nil
	}
	return h.Graph().Close()
}
