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

package config

// Document is the untyped-but-typed-field intermediate config model
// (spec §4.7): an optional refresh_rate, a required root, a map of
// appenders, and a map of loggers. Kind-specific fields stay in each
// spec's Extra map until the matching registry factory decodes them
// into its own typed struct — the factory is the only code that knows
// a kind's field shape, the same separation log4g draws between
// logConfig (generic) and each AppenderFactory (kind-specific).
type Document struct {
	RefreshRate string                  `mapstructure:"refresh_rate"`
	Root        RootSpec                `mapstructure:"root"`
	Appenders   map[string]AppenderSpec `mapstructure:"appenders"`
	Loggers     map[string]LoggerSpec   `mapstructure:"loggers"`
}

// RootSpec is the required root logger entry.
type RootSpec struct {
	Level     string   `mapstructure:"level"`
	Appenders []string `mapstructure:"appenders"`
}

// LoggerSpec is one non-root logger entry. Additive defaults to true
// when absent (spec §3: "additive flag (default true)"); a pointer
// distinguishes "absent" from "explicitly false".
type LoggerSpec struct {
	Level     string   `mapstructure:"level"`
	Appenders []string `mapstructure:"appenders"`
	Additive  *bool    `mapstructure:"additive"`
}

// AppenderSpec is one entry in the appenders map. Extra carries every
// field the kind-specific factory needs (path, target, policy, ...);
// ErrorUnused rejects anything neither this struct nor the kind
// factory's own decode step consumes.
type AppenderSpec struct {
	Kind    string                 `mapstructure:"kind"`
	Filters []KindSpec             `mapstructure:"filters"`
	Encoder *KindSpec              `mapstructure:"encoder"`
	Extra   map[string]interface{} `mapstructure:",remain"`
}

// KindSpec is the common (kind, kind-specific-fields) shape shared by
// encoders, filters, triggers, and rollers.
type KindSpec struct {
	Kind  string                 `mapstructure:"kind"`
	Extra map[string]interface{} `mapstructure:",remain"`
}
