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

package arbor_test

import (
	"testing"

	"github.com/arborlog/arbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAppender struct {
	id      string
	events  []*arbor.Event
	filters []arbor.Filter
}

func (r *recordingAppender) ID() string                 { return r.id }
func (r *recordingAppender) Filters() []arbor.Filter     { return r.filters }
func (r *recordingAppender) Flush() error                { return nil }
func (r *recordingAppender) Close() error                { return nil }
func (r *recordingAppender) Write(e *arbor.Event) error {
	r.events = append(r.events, e)
	return nil
}

// TestGraphHierarchyAndAdditivity walks spec §8 scenario 1: root -> [A]
// level Warn; app.backend.db level Info, no appenders, additive. An
// event at app.backend.db.pool, level Info, reaches A exactly once.
func TestGraphHierarchyAndAdditivity(t *testing.T) {
	a := &recordingAppender{id: "A"}
	appenders := map[string]arbor.Appender{"A": a}

	specs := []arbor.LoggerSpec{
		{Name: "", Level: arbor.FilterWarn, HasLevel: true, AppenderIDs: []string{"A"}, Additive: false},
		{Name: "app.backend.db", Level: arbor.FilterInfo, HasLevel: true, Additive: true},
	}
	g, err := arbor.BuildGraph(specs, appenders)
	require.NoError(t, err)

	g.Dispatch(&arbor.Event{Level: arbor.Info, Target: "app.backend.db.pool"})

	require.Len(t, a.events, 1)
	assert.Equal(t, "app.backend.db.pool", a.events[0].Target)
}

// TestGraphNonAdditiveOverride walks spec §8 scenario 2: root -> [A]
// Warn; app.requests level Info, appenders [R], additive=false. R
// receives the event, A does not.
func TestGraphNonAdditiveOverride(t *testing.T) {
	a := &recordingAppender{id: "A"}
	r := &recordingAppender{id: "R"}
	appenders := map[string]arbor.Appender{"A": a, "R": r}

	specs := []arbor.LoggerSpec{
		{Name: "", Level: arbor.FilterWarn, HasLevel: true, AppenderIDs: []string{"A"}, Additive: false},
		{Name: "app.requests", Level: arbor.FilterInfo, HasLevel: true, AppenderIDs: []string{"R"}, Additive: false},
	}
	g, err := arbor.BuildGraph(specs, appenders)
	require.NoError(t, err)

	g.Dispatch(&arbor.Event{Level: arbor.Info, Target: "app.requests"})

	assert.Len(t, r.events, 1)
	assert.Len(t, a.events, 0)
}

func TestGraphDedupsAppenderByID(t *testing.T) {
	shared := &recordingAppender{id: "shared"}
	appenders := map[string]arbor.Appender{"shared": shared}

	specs := []arbor.LoggerSpec{
		{Name: "", Level: arbor.FilterInfo, HasLevel: true, AppenderIDs: []string{"shared"}, Additive: false},
		{Name: "app", Level: arbor.FilterInfo, HasLevel: false, AppenderIDs: []string{"shared"}, Additive: true},
	}
	g, err := arbor.BuildGraph(specs, appenders)
	require.NoError(t, err)

	g.Dispatch(&arbor.Event{Level: arbor.Info, Target: "app.child"})

	assert.Len(t, shared.events, 1)
}

func TestGraphDropsEventBelowEffectiveLevel(t *testing.T) {
	a := &recordingAppender{id: "A"}
	appenders := map[string]arbor.Appender{"A": a}
	specs := []arbor.LoggerSpec{
		{Name: "", Level: arbor.FilterWarn, HasLevel: true, AppenderIDs: []string{"A"}, Additive: false},
	}
	g, err := arbor.BuildGraph(specs, appenders)
	require.NoError(t, err)

	g.Dispatch(&arbor.Event{Level: arbor.Debug, Target: "anything"})
	assert.Len(t, a.events, 0)
}

func TestBuildGraphRejectsMissingRootLevel(t *testing.T) {
	_, err := arbor.BuildGraph([]arbor.LoggerSpec{{Name: ""}}, nil)
	assert.Error(t, err)
}

func TestBuildGraphRejectsUnknownAppenderReference(t *testing.T) {
	specs := []arbor.LoggerSpec{
		{Name: "", Level: arbor.FilterInfo, HasLevel: true, AppenderIDs: []string{"ghost"}},
	}
	_, err := arbor.BuildGraph(specs, map[string]arbor.Appender{})
	assert.Error(t, err)
}

func TestBuildGraphRejectsDuplicateLoggerName(t *testing.T) {
	specs := []arbor.LoggerSpec{
		{Name: "", Level: arbor.FilterInfo, HasLevel: true},
		{Name: "dup"},
		{Name: "dup"},
	}
	_, err := arbor.BuildGraph(specs, map[string]arbor.Appender{})
	assert.Error(t, err)
}
