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
	"strings"
	"testing"
	"time"

	"github.com/arborlog/arbor/appender"
	"github.com/stretchr/testify/assert"
)

func TestInterpolatePathEnvAndTime(t *testing.T) {
	t.Setenv("LOGDIR", "/var/log")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got := appender.InterpolatePath("$ENV{LOGDIR}/app_$TIME{%Y}.log", now)
	assert.Equal(t, "/var/log/app_2025.log", got)
}

func TestInterpolatePathMissingEnvIsEmpty(t *testing.T) {
	t.Setenv("MISSING_VAR_XYZ", "")
	got := appender.InterpolatePath("$ENV{MISSING_VAR_XYZ}/app.log", time.Now())
	assert.Equal(t, "/app.log", got)
}

func TestInterpolatePathCapsAtFiveTimeSubstitutions(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	path := strings.Repeat("$TIME{%Y}-", 7) + "log"
	got := appender.InterpolatePath(path, now)

	assert.Equal(t, 5, strings.Count(got, "2025"))
	assert.Equal(t, 2, strings.Count(got, "$TIME{%Y}"))
}
