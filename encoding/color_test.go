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

package encoding_test

import (
	"testing"

	"github.com/arborlog/arbor/encoding"
	"github.com/stretchr/testify/assert"
)

func TestDecideColorNoColorWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("CLICOLOR_FORCE", "1")
	got := encoding.DecideColor(1, func(int) bool { return true })
	assert.Equal(t, encoding.ColorOff, got)
}

func TestDecideColorForceOverridesNonTTY(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "1")
	got := encoding.DecideColor(1, func(int) bool { return false })
	assert.Equal(t, encoding.ColorOn, got)
}

func TestDecideColorClicolorZeroDisables(t *testing.T) {
	t.Setenv("CLICOLOR", "0")
	got := encoding.DecideColor(1, func(int) bool { return true })
	assert.Equal(t, encoding.ColorOff, got)
}

func TestDecideColorTTYProbe(t *testing.T) {
	assert.Equal(t, encoding.ColorOn, encoding.DecideColor(1, func(int) bool { return true }))
	assert.Equal(t, encoding.ColorOff, encoding.DecideColor(1, func(int) bool { return false }))
}
