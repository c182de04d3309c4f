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

import "github.com/arborlog/arbor/internal/diag"

// ErrorHandler receives a one-line description of an emission failure
// (spec §7): a write, rotation-rename, or compression error on some
// appender. The default handler writes the line to stderr.
type ErrorHandler func(msg string)

// SetErrorHandler installs h as the framework's error handler. Passing
// nil restores the default stderr handler.
func SetErrorHandler(h ErrorHandler) {
	if h == nil {
		diag.SetHandler(nil)
		return
	}
	diag.SetHandler(func(msg string) { h(msg) })
}
