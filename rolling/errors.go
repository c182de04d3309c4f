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

import "errors"

var (
	errZeroSizeLimit      = errors.New("rolling: size limit must be > 0")
	errZeroCount          = errors.New("rolling: fixed-window count must be > 0")
	errMissingPlaceholder = errors.New(`rolling: fixed-window pattern must contain exactly one "{}"`)
	errUnknownUnit        = errors.New("rolling: unrecognized duration unit")
)
