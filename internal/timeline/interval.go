/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package timeline computes free air-time for a broadcast week: it subtracts
// the occupied schedule from each day's operating window and carves the
// remaining gaps into fixed 1-hour and 2-hour slots.
package timeline

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Interval is a half-open [Start, End) span of UTC time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Valid reports whether the interval has positive length.
func (iv Interval) Valid() bool {
	return iv.End.After(iv.Start)
}

// Occupied is a scheduled broadcast blocking air-time. The title is carried
// for diagnostics only.
type Occupied struct {
	Interval
	Title string
}

// WeekStart returns Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// WindowConfig describes the daily operating window and planning horizon.
type WindowConfig struct {
	StartHour int // daily window opens (default 9)
	EndHour   int // daily window closes (default 23)
	Days      int // planning horizon in days (default 7)
}

// DefaultWindowConfig returns the station's standard 09:00-23:00, 7-day window.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{StartHour: 9, EndHour: 23, Days: 7}
}

// Windows expands the config into one operating window per day, starting at
// the Monday of the week containing anchor.
func (c WindowConfig) Windows(anchor time.Time) []Interval {
	week := WeekStart(anchor)
	windows := make([]Interval, 0, c.Days)
	for day := 0; day < c.Days; day++ {
		d := week.AddDate(0, 0, day)
		windows = append(windows, Interval{
			Start: time.Date(d.Year(), d.Month(), d.Day(), c.StartHour, 0, 0, 0, time.UTC),
			End:   time.Date(d.Year(), d.Month(), d.Day(), c.EndHour, 0, 0, 0, time.UTC),
		})
	}
	return windows
}

// GapsInWindow subtracts the occupied intervals whose start falls inside the
// window from the window itself and returns the maximal free gaps, ordered by
// start. Malformed intervals (end before start) are skipped with a warning.
// Overlapping shows never produce a negative gap: a running high-water mark of
// interval ends decides where free time resumes.
func GapsInWindow(window Interval, occupied []Occupied, logger zerolog.Logger) []Interval {
	inWindow := make([]Occupied, 0, len(occupied))
	for _, o := range occupied {
		if !o.Valid() {
			logger.Warn().
				Str("title", o.Title).
				Time("start", o.Start).
				Time("end", o.End).
				Msg("skipping malformed occupied interval")
			continue
		}
		if !o.Start.Before(window.Start) && o.Start.Before(window.End) {
			inWindow = append(inWindow, o)
		}
	}

	if len(inWindow) == 0 {
		return []Interval{window}
	}

	sort.Slice(inWindow, func(i, j int) bool {
		return inWindow[i].Start.Before(inWindow[j].Start)
	})

	var gaps []Interval
	cursor := window.Start
	for _, o := range inWindow {
		if o.Start.After(cursor) {
			gaps = append(gaps, Interval{Start: cursor, End: o.Start})
		}
		if o.End.After(cursor) {
			cursor = o.End
		}
	}
	if cursor.Before(window.End) {
		gaps = append(gaps, Interval{Start: cursor, End: window.End})
	}
	return gaps
}
