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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arborlog/arbor"
	"github.com/arborlog/arbor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAssemblesGraphFromDocument(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	yaml := `
root:
  level: warn
  appenders: [console]
appenders:
  console:
    kind: console
    target: stdout
  file:
    kind: file
    path: ` + logPath + `
loggers:
  app.db:
    level: info
    appenders: [file]
    additive: false
`
	raw, err := config.DecodeBytes([]byte(yaml), "yaml")
	require.NoError(t, err)
	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	g, err := config.Build(doc, config.NewRegistry())
	require.NoError(t, err)
	require.NotNil(t, g)

	g.Dispatch(&arbor.Event{Level: arbor.Info, Target: "app.db", Message: "connected"})
	require.NoError(t, g.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "connected")
}

func TestBuildRejectsMissingRootLevel(t *testing.T) {
	raw, err := config.DecodeBytes([]byte("root:\n  appenders: [console]\n"), "yaml")
	require.NoError(t, err)
	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	_, err = config.Build(doc, config.NewRegistry())
	assert.Error(t, err)
}

func TestBuildRejectsUnknownAppenderKind(t *testing.T) {
	yaml := `
root:
  level: info
  appenders: [a]
appenders:
  a:
    kind: carrier_pigeon
`
	raw, err := config.DecodeBytes([]byte(yaml), "yaml")
	require.NoError(t, err)
	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	_, err = config.Build(doc, config.NewRegistry())
	assert.Error(t, err)
}

func TestBuildRejectsEmptyEncoderPattern(t *testing.T) {
	yaml := `
root:
  level: info
  appenders: [a]
appenders:
  a:
    kind: console
    encoder:
      kind: pattern
      pattern: ""
`
	raw, err := config.DecodeBytes([]byte(yaml), "yaml")
	require.NoError(t, err)
	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	_, err = config.Build(doc, config.NewRegistry())
	assert.Error(t, err)
}

func TestBuildRejectsUnknownAppenderReferencedByLogger(t *testing.T) {
	yaml := `
root:
  level: info
  appenders: [ghost]
`
	raw, err := config.DecodeBytes([]byte(yaml), "yaml")
	require.NoError(t, err)
	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	_, err = config.Build(doc, config.NewRegistry())
	assert.Error(t, err)
}

func TestBuildRollingFileAssemblesTriggerAndRoller(t *testing.T) {
	dir := t.TempDir()
	active := filepath.Join(dir, "log")
	archive := filepath.Join(dir, "log.{}")

	yaml := `
root:
  level: info
  appenders: [rf]
appenders:
  rf:
    kind: rolling_file
    path: ` + active + `
    policy:
      trigger:
        kind: size
        limit: 1mb
      roller:
        kind: fixed_window
        pattern: ` + archive + `
        base: 1
        count: 3
`
	raw, err := config.DecodeBytes([]byte(yaml), "yaml")
	require.NoError(t, err)
	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	g, err := config.Build(doc, config.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, g.Close())
}

func TestBuildRejectsUnrecognizedTimeDirective(t *testing.T) {
	yaml := `
root:
  level: info
  appenders: [a]
appenders:
  a:
    kind: file
    path: /tmp/arbor-$TIME{%Q}.log
`
	raw, err := config.DecodeBytes([]byte(yaml), "yaml")
	require.NoError(t, err)
	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	_, err = config.Build(doc, config.NewRegistry())
	assert.Error(t, err)
}
