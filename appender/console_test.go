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

package appender_test

import (
	"testing"

	"github.com/arborlog/arbor/appender"
	"github.com/arborlog/arbor/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleAppenderRejectsUnknownTarget(t *testing.T) {
	enc, err := encoding.CompilePattern("{m}{n}", encoding.ColorOff)
	require.NoError(t, err)

	_, err = appender.NewConsoleAppender("c1", enc, nil, "bogus", false)
	assert.Error(t, err)
}

func TestNewConsoleAppenderAcceptsStdoutAndStderr(t *testing.T) {
	enc, err := encoding.CompilePattern("{m}{n}", encoding.ColorOff)
	require.NoError(t, err)

	_, err = appender.NewConsoleAppender("c1", enc, nil, "stdout", false)
	assert.NoError(t, err)

	_, err = appender.NewConsoleAppender("c2", enc, nil, "stderr", false)
	assert.NoError(t, err)

	_, err = appender.NewConsoleAppender("c3", enc, nil, "", false)
	assert.NoError(t, err)
}
