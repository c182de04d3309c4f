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
	"testing"

	"github.com/arborlog/arbor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
refresh_rate: 30 seconds
root:
  level: info
  appenders: [console]
appenders:
  console:
    kind: console
    target: stdout
    encoder:
      kind: pattern
      pattern: "{d} {l} {t} - {m}{n}"
loggers:
  app.db:
    level: debug
    appenders: [console]
    additive: false
`

func TestDecodeBytesAndDocument(t *testing.T) {
	raw, err := config.DecodeBytes([]byte(sampleYAML), "yaml")
	require.NoError(t, err)

	doc, err := config.DecodeDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, "30 seconds", doc.RefreshRate)
	assert.Equal(t, "info", doc.Root.Level)
	assert.Equal(t, []string{"console"}, doc.Root.Appenders)

	appender, ok := doc.Appenders["console"]
	require.True(t, ok)
	assert.Equal(t, "console", appender.Kind)
	require.NotNil(t, appender.Encoder)
	assert.Equal(t, "pattern", appender.Encoder.Kind)
	assert.Equal(t, "{d} {l} {t} - {m}{n}", appender.Encoder.Extra["pattern"])

	logger, ok := doc.Loggers["app.db"]
	require.True(t, ok)
	assert.Equal(t, "debug", logger.Level)
	require.NotNil(t, logger.Additive)
	assert.False(t, *logger.Additive)
}

func TestDecodeDocumentRejectsUnknownTopLevelField(t *testing.T) {
	raw, err := config.DecodeBytes([]byte("bogus_field: true\nroot:\n  level: info\n"), "yaml")
	require.NoError(t, err)

	_, err = config.DecodeDocument(raw)
	assert.Error(t, err)
}
