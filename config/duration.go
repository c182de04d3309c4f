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
	"strconv"
	"strings"
	"time"

	"github.com/arborlog/arbor/rolling"
)

// splitAmountUnit splits a "N unit[s]" string (spec §6) into its
// numeric and unit parts; a bare integer comes back with an empty
// unit so each caller can supply its own default ("bare integers
// meaning seconds").
func splitAmountUnit(s string) (n int64, unit string, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, "", fmt.Errorf("config: empty duration")
	}
	i := 0
	for i < len(trimmed) && (trimmed[i] == '-' || (trimmed[i] >= '0' && trimmed[i] <= '9')) {
		i++
	}
	if i == 0 {
		return 0, "", fmt.Errorf("config: invalid duration %q: no leading number", s)
	}
	n, err = strconv.ParseInt(trimmed[:i], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	unit = strings.ToLower(strings.TrimSpace(trimmed[i:]))
	unit = strings.TrimSuffix(unit, "s")
	return n, unit, nil
}

var durationUnits = map[string]time.Duration{
	"nano":   time.Nanosecond,
	"micro":  time.Microsecond,
	"milli":  time.Millisecond,
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	// month/year have no fixed length; the two call sites that parse a
	// plain duration (refresh_rate, max_random_delay) never need
	// calendar precision, so a 30/365-day approximation is enough.
	"month": 30 * 24 * time.Hour,
	"year":  365 * 24 * time.Hour,
}

// ParseDuration parses spec §6's "N unit[s]" grammar (nanos, micros,
// millis, seconds, minutes, hours, days, weeks, months, years; a bare
// integer means seconds) into a time.Duration.
func ParseDuration(s string) (time.Duration, error) {
	n, unit, err := splitAmountUnit(s)
	if err != nil {
		return 0, err
	}
	if unit == "" {
		unit = "second"
	}
	d, ok := durationUnits[unit]
	if !ok {
		return 0, fmt.Errorf("config: unrecognized duration unit %q in %q", unit, s)
	}
	return time.Duration(n) * d, nil
}

var intervalUnits = map[string]rolling.TimeUnit{
	"second": rolling.UnitSecond,
	"minute": rolling.UnitMinute,
	"hour":   rolling.UnitHour,
	"day":    rolling.UnitDay,
	"week":   rolling.UnitWeek,
	"month":  rolling.UnitMonth,
	"year":   rolling.UnitYear,
}

// ParseInterval parses a time trigger's "interval" field ("4 hours",
// bare "30" meaning 30 seconds) into the (unit, count) pair
// rolling.NewTimeTrigger expects. Unlike ParseDuration, it only
// accepts the calendar units a time trigger understands (no
// nanos/micros/millis).
func ParseInterval(s string) (rolling.TimeUnit, int, error) {
	n, unit, err := splitAmountUnit(s)
	if err != nil {
		return "", 0, err
	}
	if unit == "" {
		unit = "second"
	}
	tu, ok := intervalUnits[unit]
	if !ok {
		return "", 0, fmt.Errorf("config: unrecognized duration unit %q in %q", unit, s)
	}
	return tu, int(n), nil
}
