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

/*
Package arbor is a hierarchical, configurable logging framework.

It accepts events tagged with a dotted logger name and a severity
level, decides which events survive based on a logger hierarchy with
level and appender inheritance, and dispatches surviving events to one
or more appenders (console, file, rolling file) through a pluggable
encoder (pattern or JSON).

Configuration can be built programmatically or loaded from a YAML,
JSON or TOML document, optionally rescanned on a timer so a running
process can be reconfigured without a restart.

Basic use:

	g, err := arbor.BuildGraph(specs, appenders)
	if err != nil {
		panic(err)
	}
	if _, err := arbor.Init(g); err != nil {
		panic(err)
	}
	defer arbor.Shutdown()

	log := arbor.GetLogger("app.backend.db")
	log.Info("listening")

Most applications build specs and appenders from a declarative
document via the config package instead of constructing them by hand:

	h, reloader, err := config.LoadAndInit("arbor.yaml", config.NewRegistry())
*/
package arbor
