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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerEmitDispatchesToGraph(t *testing.T) {
	resetManager(t)
	a := &captureAppender{id: "A"}
	g, err := BuildGraph([]LoggerSpec{{Name: "", Level: FilterInfo, HasLevel: true, AppenderIDs: []string{"A"}}}, map[string]Appender{"A": a})
	require.NoError(t, err)
	_, err = Init(g)
	require.NoError(t, err)

	l := GetLogger("app.db")
	l.Info("connected", KV{Key: "host", Value: "db1"})

	assert.Equal(t, "app.db", l.Name())
	require.Len(t, a.events, 1)
	assert.Equal(t, "app.db", a.events[0].Target)
}

func TestLoggerEmitIsNoopBeforeInit(t *testing.T) {
	resetManager(t)
	l := GetLogger("app.db")
	// must not panic with no active handle
	l.Error("boom")
}

func TestLoggerConvenienceMethodsSetLevel(t *testing.T) {
	resetManager(t)
	a := &captureAppender{id: "A"}
	g, err := BuildGraph([]LoggerSpec{{Name: "", Level: FilterTrace, HasLevel: true, AppenderIDs: []string{"A"}}}, map[string]Appender{"A": a})
	require.NoError(t, err)
	_, err = Init(g)
	require.NoError(t, err)

	l := GetLogger("app")
	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Debug("d")
	l.Trace("t")

	require.Len(t, a.events, 5)
	want := []Level{Error, Warn, Info, Debug, Trace}
	for i, e := range a.events {
		assert.Equal(t, want[i], e.Level)
	}
}

type captureAppender struct {
	id     string
	events []*Event
}

func (c *captureAppender) ID() string        { return c.id }
func (c *captureAppender) Filters() []Filter { return nil }
func (c *captureAppender) Flush() error      { return nil }
func (c *captureAppender) Close() error      { return nil }
func (c *captureAppender) Write(e *Event) error {
	c.events = append(c.events, e)
	return nil
}
