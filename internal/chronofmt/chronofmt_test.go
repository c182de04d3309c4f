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

package chronofmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGoLayoutRecognizedDirectives(t *testing.T) {
	cases := map[string]string{
		"%Y-%m-%d":                "2006-01-02",
		"%H:%M:%S":                "15:04:05",
		"%Y-%m-%dT%H:%M:%S%.3f":   "2006-01-02T15:04:05.000",
		"%a, %d %b %Y":            "Mon, 02 Jan 2006",
		"100%%":                   "100%",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToGoLayout(in), in)
	}
}

func TestToGoLayoutPassesUnrecognizedDirectivesThrough(t *testing.T) {
	assert.Equal(t, "%Qabc", ToGoLayout("%Qabc"))
}

func TestToGoLayoutTrailingPercentIsLiteral(t *testing.T) {
	assert.Equal(t, "foo%", ToGoLayout("foo%"))
}

func TestValidateAcceptsRecognizedDirectives(t *testing.T) {
	assert.NoError(t, Validate("%Y-%m-%dT%H:%M:%S%.9f"))
	assert.NoError(t, Validate("%a %A %b %B %z %Z %%"))
}

func TestValidateRejectsUnrecognizedDirective(t *testing.T) {
	err := Validate("%Qabc")
	assert.Error(t, err)
}

func TestValidateRejectsMalformedFractionalSeconds(t *testing.T) {
	err := Validate("%.g")
	assert.Error(t, err)
}
