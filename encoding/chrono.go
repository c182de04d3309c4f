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

import "github.com/arborlog/arbor/internal/chronofmt"

// chronoToGo converts a chrono-style format string (spec §4.1's date
// directive) into a Go reference-time layout. Shared with the file
// appender's path interpolator via internal/chronofmt so both
// directive grammars stay identical.
func chronoToGo(format string) string { return chronofmt.ToGoLayout(format) }

const defaultDateLayout = chronofmt.DefaultLayout
