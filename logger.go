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
	"os"
	"runtime"
	"time"
)

// Logger is the per-name emission facade (spec §1 treats this facade
// as an external collaborator whose contract arbor consumes verbatim;
// this is arbor's own convenience implementation of it, grounded on
// log4g's *logger). Obtain one via GetLogger; its zero value is not
// usable.
type Logger struct {
	name string
}

// Name returns the logger's dotted target name.
func (l *Logger) Name() string { return l.name }

// monoBase is the reference instant Event.Mono readings are measured
// from; time.Time.Sub uses Go's monotonic clock when both operands
// carry one.
var monoBase = time.Now()

var pid = os.Getpid()

// emit builds an Event and hands it to the active graph. ThreadID and
// ThreadName are left zero: goroutines are not OS threads and there is
// no portable, allocation-free way to recover one without cgo: callers
// that need it should set it by constructing and dispatching an Event
// directly instead of going through Logger.
func (l *Logger) emit(level Level, msg string, kvs []KV) {
	h := currentHandle()
	if h == nil {
		return
	}
	pc, file, line, _ := runtime.Caller(2)
	module := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		module = fn.Name()
	}
	now := time.Now()
	e := &Event{
		Wall:    now,
		Mono:    int64(now.Sub(monoBase)),
		Level:   level,
		Target:  l.name,
		Source:  Source{File: file, Line: line, Module: module},
		PID:     pid,
		Message: msg,
		KVs:     kvs,
	}
	h.dispatch(e)
}

// Error logs at Error severity.
func (l *Logger) Error(msg string, kvs ...KV) { l.emit(Error, msg, kvs) }

// Warn logs at Warn severity.
func (l *Logger) Warn(msg string, kvs ...KV) { l.emit(Warn, msg, kvs) }

// Info logs at Info severity.
func (l *Logger) Info(msg string, kvs ...KV) { l.emit(Info, msg, kvs) }

// Debug logs at Debug severity.
func (l *Logger) Debug(msg string, kvs ...KV) { l.emit(Debug, msg, kvs) }

// Trace logs at Trace severity.
func (l *Logger) Trace(msg string, kvs ...KV) { l.emit(Trace, msg, kvs) }
