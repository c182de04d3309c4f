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

package rolling

import (
	"math/rand"
	"strings"
	"time"
)

// TimeUnit is one of the calendar units spec §4.5 accepts for a time
// trigger's interval.
type TimeUnit string

const (
	UnitSecond TimeUnit = "second"
	UnitMinute TimeUnit = "minute"
	UnitHour   TimeUnit = "hour"
	UnitDay    TimeUnit = "day"
	UnitWeek   TimeUnit = "week"
	UnitMonth  TimeUnit = "month"
	UnitYear   TimeUnit = "year"
)

// ParseTimeUnit accepts singular or plural unit names, case
// insensitively normalized by the caller (config layer lower-cases
// before calling).
func ParseTimeUnit(s string) (TimeUnit, bool) {
	s = strings.TrimSuffix(s, "s")
	switch TimeUnit(s) {
	case UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitYear:
		return TimeUnit(s), true
	}
	return "", false
}

// TimeTrigger fires when wall-clock time reaches a computed boundary.
// Boundaries are recomputed each time a rotation happens (or at
// Init), never per-event, so the hot path is a single time
// comparison.
type TimeTrigger struct {
	Unit           TimeUnit
	N              int
	Modulate       bool
	MaxRandomDelay time.Duration

	next time.Time
	rng  *rand.Rand
}

// NewTimeTrigger builds a time trigger. n must be >= 1.
func NewTimeTrigger(unit TimeUnit, n int, modulate bool, maxRandomDelay time.Duration) *TimeTrigger {
	if n < 1 {
		n = 1
	}
	return &TimeTrigger{
		Unit:           unit,
		N:              n,
		Modulate:       modulate,
		MaxRandomDelay: maxRandomDelay,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init implements Trigger. Per spec: "On config load, if the active
// file's mtime predates the current interval boundary, fire
// immediately" — so Init both seeds t.next and reports (via
// ShouldRotate on the very next call, since Init itself cannot signal
// rotation to the driver) whether the existing file is already stale.
// RollingFileAppender.open calls ShouldRotate right after Init, so a
// stale file is rotated at open time.
func (t *TimeTrigger) Init(s State) {
	t.next = t.computeNext(s.Now)
	if s.FileExists && !s.FileModTime.IsZero() {
		prevBoundary := t.previousBoundary(s.Now)
		if s.FileModTime.Before(prevBoundary) {
			// Force the next ShouldRotate check to fire immediately by
			// pulling the boundary back to "now".
			t.next = s.Now
		}
	}
}

// ShouldRotate implements Trigger.
func (t *TimeTrigger) ShouldRotate(s State) bool {
	if t.next.IsZero() {
		t.next = t.computeNext(s.Now)
	}
	if s.Now.Before(t.next) {
		return false
	}
	t.next = t.computeNext(s.Now)
	return true
}

func (t *TimeTrigger) computeNext(now time.Time) time.Time {
	b := nextBoundary(now, t.Unit, t.N, t.Modulate)
	if t.MaxRandomDelay > 0 {
		jitter := time.Duration(t.rng.Int63n(int64(t.MaxRandomDelay) + 1))
		b = b.Add(jitter)
	}
	return b
}

func (t *TimeTrigger) previousBoundary(now time.Time) time.Time {
	return previousBoundary(now, t.Unit, t.N, t.Modulate)
}

// ---- boundary arithmetic ----

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
}

func startOfMinute(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, t.Location())
}

// startOfISOWeek returns 00:00 on the Monday of t's week (ISO-8601:
// weeks start Monday — spec §4.5).
func startOfISOWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return day.AddDate(0, 0, -offset)
}

func fixedUnitDuration(unit TimeUnit) (anchorFn func(time.Time) time.Time, dur time.Duration, ok bool) {
	switch unit {
	case UnitSecond:
		return startOfMinute, time.Second, true
	case UnitMinute:
		return startOfHour, time.Minute, true
	case UnitHour:
		return startOfDay, time.Hour, true
	case UnitDay:
		return startOfDay, 24 * time.Hour, true
	case UnitWeek:
		return startOfISOWeek, 7 * 24 * time.Hour, true
	}
	return nil, 0, false
}

// nextBoundary returns the next instant >= now at which an n-unit
// period elapses, anchored at a calendar-aligned start when modulate
// is true, or at the Unix epoch otherwise (so periods are simply
// multiples of n*unit since 1970-01-01T00:00:00Z).
func nextBoundary(now time.Time, unit TimeUnit, n int, modulate bool) time.Time {
	if anchorFn, unitDur, ok := fixedUnitDuration(unit); ok {
		anchor := time.Unix(0, 0)
		if modulate {
			anchor = anchorFn(now)
		}
		period := time.Duration(n) * unitDur
		if period <= 0 {
			period = unitDur
		}
		elapsed := now.Sub(anchor)
		k := elapsed / period
		next := anchor.Add((k + 1) * period)
		return next
	}

	switch unit {
	case UnitMonth:
		anchor := now
		if modulate {
			y, m, _ := now.Date()
			anchor = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		}
		next := anchor
		for !next.After(now) {
			next = next.AddDate(0, n, 0)
		}
		return next
	case UnitYear:
		anchor := now
		if modulate {
			anchor = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		}
		next := anchor
		for !next.After(now) {
			next = next.AddDate(n, 0, 0)
		}
		return next
	}
	return now
}

// previousBoundary returns the most recent boundary <= now, used by
// Init's stale-file catch-up check.
func previousBoundary(now time.Time, unit TimeUnit, n int, modulate bool) time.Time {
	next := nextBoundary(now, unit, n, modulate)
	if _, unitDur, ok := fixedUnitDuration(unit); ok {
		period := time.Duration(n) * unitDur
		return next.Add(-period)
	}
	switch unit {
	case UnitMonth:
		return next.AddDate(0, -n, 0)
	case UnitYear:
		return next.AddDate(-n, 0, 0)
	}
	return next
}
