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

package appender

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arborlog/arbor"
)

// FileAppender writes encoded events to a single, non-rotating file.
// Grounded on log4g's fileAppender with the rotation machinery split
// out (see RollingFileAppender): this driver is the `rotate: none`
// case made its own type, per spec §4.4.
type FileAppender struct {
	base
	pathTemplate string
	path         string
	appendMode   bool
	file         *os.File
}

// NewFileAppender builds a file appender. pathTemplate may contain
// `$ENV{NAME}`/`$TIME{fmt}` substitutions (spec §6), resolved once at
// open time.
func NewFileAppender(id string, encoder arbor.Encoder, filters []arbor.Filter, pathTemplate string, appendMode bool) (*FileAppender, error) {
	fa := &FileAppender{
		base:         base{id: id, encoder: encoder, filters: filters},
		pathTemplate: pathTemplate,
		appendMode:   appendMode,
	}
	if err := fa.open(); err != nil {
		return nil, err
	}
	return fa, nil
}

func (f *FileAppender) open() error {
	f.path = InterpolatePath(f.pathTemplate, time.Now())
	if f.path == "" {
		return errEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE
	if f.appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	fd, err := os.OpenFile(f.path, flags, 0o644)
	if err != nil {
		return err
	}
	f.file = fd
	return nil
}

// Write implements arbor.Appender.
func (f *FileAppender) Write(e *arbor.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.encode(e); err != nil {
		return err
	}
	_, err := f.file.Write(f.buf.Bytes())
	return err
}

// Flush implements arbor.Appender.
func (f *FileAppender) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Sync()
}

// Close implements arbor.Appender.
func (f *FileAppender) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}
