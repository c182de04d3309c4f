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

package rolling

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseSize parses a byte-count string using the unit table in spec
// §4.5: b/kb/kib/mb/mib/gb/gib/tb/tib, case-insensitive, with
// kb=1000 and kib=1024. go-humanize's ParseBytes already implements
// the decimal-vs-binary scaling math correctly; ParseSize just
// canonicalizes the unit spelling/case humanize expects before
// delegating to it.
func ParseSize(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty size")
	}
	numEnd := 0
	for numEnd < len(trimmed) && (isDigit(trimmed[numEnd]) || trimmed[numEnd] == '.') {
		numEnd++
	}
	numPart := trimmed[:numEnd]
	unitPart := strings.ToLower(strings.TrimSpace(trimmed[numEnd:]))

	canon, ok := sizeUnits[unitPart]
	if !ok {
		return 0, fmt.Errorf("unrecognized size unit %q in %q", unitPart, s)
	}
	n, err := humanize.ParseBytes(numPart + canon)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

var sizeUnits = map[string]string{
	"":    "B",
	"b":   "B",
	"kb":  "kB",
	"kib": "KiB",
	"mb":  "MB",
	"mib": "MiB",
	"gb":  "GB",
	"gib": "GiB",
	"tb":  "TB",
	"tib": "TiB",
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
