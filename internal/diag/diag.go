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

// Package diag is arbor's internal error channel: the place
// configuration-reload failures and emission failures are reported,
// since a logging framework cannot log its own failures through
// itself (spec §7: reload errors are "logged via the framework's own
// internal error channel"; emission errors go to a "user-pluggable
// error handler, default: write a single line to stderr").
package diag

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Handler receives one diagnostic line at a time. It must not block
// for long and must not panic.
type Handler func(msg string)

var (
	mu      sync.RWMutex
	handler Handler = defaultHandler
)

func defaultHandler(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// SetHandler installs a user-supplied diagnostic handler. Passing nil
// restores the default (write to stderr).
func SetHandler(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = defaultHandler
	}
	handler = h
}

// Reportf formats and dispatches one diagnostic line, prefixed with a
// timestamp and the component it came from.
func Reportf(component, format string, args ...interface{}) {
	mu.RLock()
	h := handler
	mu.RUnlock()
	h(fmt.Sprintf("%s arbor/%s: %s", time.Now().Format(time.RFC3339), component, fmt.Sprintf(format, args...)))
}
