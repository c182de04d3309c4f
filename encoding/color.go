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

package encoding

import (
	"os"

	"golang.org/x/term"
)

// ColorMode is computed once per appender per config and recomputed
// only on reload. Color is on when NO_COLOR is unset and either
// CLICOLOR_FORCE is set to a value other than "0" (regardless of the
// TTY probe), or CLICOLOR is not "0" and the stream is a terminal.
type ColorMode bool

const (
	ColorOff ColorMode = false
	ColorOn  ColorMode = true
)

// DecideColor implements the probe described in spec §9 and §6. fd is
// the file descriptor of the stream the appender writes to (used for
// the TTY probe); pass -1 (or any non-terminal fd) when the
// destination is known not to be a terminal, e.g. a rolling file.
func DecideColor(fd int, isTerminal func(fd int) bool) ColorMode {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ColorOff
	}
	if v, ok := os.LookupEnv("CLICOLOR_FORCE"); ok && v != "0" {
		return ColorOn
	}
	if v, ok := os.LookupEnv("CLICOLOR"); ok && v == "0" {
		return ColorOff
	}
	if isTerminal == nil {
		isTerminal = term.IsTerminal
	}
	if !isTerminal(fd) {
		return ColorOff
	}
	return ColorOn
}

// sgr codes per level, used by the {h}/highlight directive.
var levelSGR = map[string]string{
	"ERROR": "\x1b[31m", // red
	"WARN":  "\x1b[33m", // yellow
	"INFO":  "\x1b[32m", // green
	"DEBUG": "\x1b[36m", // cyan
	"TRACE": "\x1b[90m", // bright black
}

const sgrReset = "\x1b[0m"
