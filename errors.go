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

// ConfigError reports a configuration build failure (spec §7): an
// unknown kind tag, a missing required field, a dangling appender
// reference, and so on. No partial graph is ever installed when one
// occurs.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "arbor: " + e.Msg }

// InitError reports a violation of the manager's state machine (spec
// §4.8): initializing twice, or using the package before Init.
type InitError struct {
	Msg string
}

func (e *InitError) Error() string { return "arbor: " + e.Msg }
