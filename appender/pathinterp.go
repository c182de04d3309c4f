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
	"strings"
	"time"

	"github.com/arborlog/arbor/internal/chronofmt"
)

const maxTimeSubstitutions = 5

// InterpolatePath expands `$ENV{NAME}` (all occurrences, missing vars
// resolve to empty string) and `$TIME{fmt}` (at most
// maxTimeSubstitutions occurrences, formatted against now; additional
// occurrences are left literal) per spec §6.
func InterpolatePath(path string, now time.Time) string {
	path = expandEnv(path)
	return expandTime(path, now)
}

func expandEnv(path string) string {
	var b strings.Builder
	for {
		start := strings.Index(path, "$ENV{")
		if start < 0 {
			b.WriteString(path)
			break
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			b.WriteString(path)
			break
		}
		end += start
		b.WriteString(path[:start])
		name := path[start+len("$ENV{") : end]
		b.WriteString(os.Getenv(name))
		path = path[end+1:]
	}
	return b.String()
}

func expandTime(path string, now time.Time) string {
	var b strings.Builder
	replaced := 0
	for {
		start := strings.Index(path, "$TIME{")
		if start < 0 {
			b.WriteString(path)
			break
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			b.WriteString(path)
			break
		}
		end += start
		b.WriteString(path[:start])
		if replaced >= maxTimeSubstitutions {
			b.WriteString(path[start : end+1])
		} else {
			chronoFmt := path[start+len("$TIME{") : end]
			b.WriteString(now.Format(chronofmt.ToGoLayout(chronoFmt)))
			replaced++
		}
		path = path[end+1:]
	}
	return b.String()
}
