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

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arborlog/arbor"
	"github.com/arborlog/arbor/appender"
	"github.com/arborlog/arbor/encoding"
	"github.com/arborlog/arbor/filter"
	"github.com/arborlog/arbor/internal/chronofmt"
	"github.com/arborlog/arbor/rolling"
)

func registerBuiltins(r *Registry) {
	r.encoders["pattern"] = buildPatternEncoder
	r.encoders["json"] = buildJSONEncoder

	r.filters["threshold"] = buildThresholdFilter

	r.triggers["size"] = buildSizeTrigger
	r.triggers["time"] = buildTimeTrigger
	r.triggers["on_startup"] = buildOnStartupTrigger

	r.rollers["delete"] = buildDeleteRoller
	r.rollers["fixed_window"] = buildFixedWindowRoller

	r.appenders["console"] = buildConsoleAppender
	r.appenders["file"] = buildFileAppender
	r.appenders["rolling_file"] = r.buildRollingFileAppender
}

// ---- encoders ----

type patternEncoderSpec struct {
	Pattern string `mapstructure:"pattern"`
}

func buildPatternEncoder(extra map[string]interface{}, color encoding.ColorMode) (arbor.Encoder, error) {
	var spec patternEncoderSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	if spec.Pattern == "" {
		return nil, errEmptyEncoderPattern
	}
	return encoding.CompilePattern(spec.Pattern, color)
}

func buildJSONEncoder(extra map[string]interface{}, _ encoding.ColorMode) (arbor.Encoder, error) {
	if len(extra) > 0 {
		return nil, fmt.Errorf("config: json encoder takes no fields, got %v", extra)
	}
	return encoding.NewJSONEncoder(), nil
}

// ---- filters ----

type thresholdFilterSpec struct {
	Level string `mapstructure:"level"`
}

func buildThresholdFilter(extra map[string]interface{}) (arbor.Filter, error) {
	var spec thresholdFilterSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	lf, ok := arbor.ParseLevelFilter(spec.Level)
	if !ok {
		return nil, fmt.Errorf("config: invalid threshold level %q", spec.Level)
	}
	return filter.NewThreshold(lf), nil
}

// ---- rolling triggers ----

type sizeTriggerSpec struct {
	Limit string `mapstructure:"limit"`
}

func buildSizeTrigger(extra map[string]interface{}) (rolling.Trigger, error) {
	var spec sizeTriggerSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	limit, err := rolling.ParseSize(spec.Limit)
	if err != nil {
		return nil, err
	}
	return rolling.NewSizeTrigger(limit)
}

type timeTriggerSpec struct {
	Interval       string `mapstructure:"interval"`
	Modulate       bool   `mapstructure:"modulate"`
	MaxRandomDelay string `mapstructure:"max_random_delay"`
}

func buildTimeTrigger(extra map[string]interface{}) (rolling.Trigger, error) {
	var spec timeTriggerSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	interval := spec.Interval
	if interval == "" {
		interval = "1 second"
	}
	unit, n, err := ParseInterval(interval)
	if err != nil {
		return nil, err
	}
	jitter, err := parseOptionalDuration(spec.MaxRandomDelay)
	if err != nil {
		return nil, err
	}
	return rolling.NewTimeTrigger(unit, n, spec.Modulate, jitter), nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return ParseDuration(s)
}

type onStartupTriggerSpec struct {
	MinSize int64 `mapstructure:"min_size"`
}

func buildOnStartupTrigger(extra map[string]interface{}) (rolling.Trigger, error) {
	var spec onStartupTriggerSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	return rolling.NewStartupTrigger(spec.MinSize), nil
}

// ---- rolling rollers ----

func buildDeleteRoller(extra map[string]interface{}) (rolling.Roller, error) {
	if len(extra) > 0 {
		return nil, fmt.Errorf("config: delete roller takes no fields, got %v", extra)
	}
	return rolling.NewDeleteRoller(), nil
}

type fixedWindowRollerSpec struct {
	Pattern    string `mapstructure:"pattern"`
	Base       int    `mapstructure:"base"`
	Count      int    `mapstructure:"count"`
	Background bool   `mapstructure:"background"`
}

func buildFixedWindowRoller(extra map[string]interface{}) (rolling.Roller, error) {
	var spec fixedWindowRollerSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	base := spec.Base
	if base == 0 {
		base = 1
	}
	return rolling.NewFixedWindowRoller(spec.Pattern, base, spec.Count, spec.Background)
}

// ---- appenders ----

type consoleSpec struct {
	Target  string `mapstructure:"target"`
	TTYOnly bool   `mapstructure:"tty_only"`
}

func buildConsoleAppender(id string, encoder arbor.Encoder, filters []arbor.Filter, extra map[string]interface{}) (arbor.Appender, error) {
	var spec consoleSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	return appender.NewConsoleAppender(id, encoder, filters, spec.Target, spec.TTYOnly)
}

type fileSpec struct {
	Path   string `mapstructure:"path"`
	Append *bool  `mapstructure:"append"`
}

func buildFileAppender(id string, encoder arbor.Encoder, filters []arbor.Filter, extra map[string]interface{}) (arbor.Appender, error) {
	var spec fileSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	if err := validateTimeDirectives(spec.Path); err != nil {
		return nil, err
	}
	return appender.NewFileAppender(id, encoder, filters, spec.Path, appendDefault(spec.Append))
}

type rollingFileSpec struct {
	Path   string   `mapstructure:"path"`
	Append *bool    `mapstructure:"append"`
	Policy kindPair `mapstructure:"policy"`
}

type kindPair struct {
	Trigger KindSpec `mapstructure:"trigger"`
	Roller  KindSpec `mapstructure:"roller"`
}

func (r *Registry) buildRollingFileAppender(id string, encoder arbor.Encoder, filters []arbor.Filter, extra map[string]interface{}) (arbor.Appender, error) {
	var spec rollingFileSpec
	if err := decodeExtra(extra, &spec); err != nil {
		return nil, err
	}
	if err := validateTimeDirectives(spec.Path); err != nil {
		return nil, err
	}

	triggerFactory, ok := r.triggers[spec.Policy.Trigger.Kind]
	if !ok {
		return nil, fmt.Errorf("config: unknown trigger kind %q", spec.Policy.Trigger.Kind)
	}
	trig, err := triggerFactory(spec.Policy.Trigger.Extra)
	if err != nil {
		return nil, err
	}

	rollerFactory, ok := r.rollers[spec.Policy.Roller.Kind]
	if !ok {
		return nil, fmt.Errorf("config: unknown roller kind %q", spec.Policy.Roller.Kind)
	}
	roll, err := rollerFactory(spec.Policy.Roller.Extra)
	if err != nil {
		return nil, err
	}

	policy := &rolling.Policy{Trigger: trig, Roller: roll}
	return appender.NewRollingFileAppender(id, encoder, filters, spec.Path, appendDefault(spec.Append), policy)
}

func appendDefault(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}

// validateTimeDirectives rejects a path carrying a $TIME{...} segment
// whose chrono format chronofmt can't translate (spec §4.7: "$TIME{}
// format that chrono rejects"). Rendering itself (appender.InterpolatePath)
// stays total — unrecognized directives pass through as literal text —
// so this check only runs once, at build time, rather than on every
// rotation.
func validateTimeDirectives(path string) error {
	rest := path
	for {
		start := strings.Index(rest, "$TIME{")
		if start < 0 {
			return nil
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return nil
		}
		end += start
		if err := chronofmt.Validate(rest[start+len("$TIME{") : end]); err != nil {
			return err
		}
		rest = rest[end+1:]
	}
}

// colorFD picks the file descriptor DecideColor should probe for a
// console appender's target; any other appender kind writes to a
// file, never a terminal.
func colorFD(kind string, extra map[string]interface{}) int {
	if kind != "console" {
		return -1
	}
	if target, _ := extra["target"].(string); target == "stderr" {
		return int(os.Stderr.Fd())
	}
	return int(os.Stdout.Fd())
}
