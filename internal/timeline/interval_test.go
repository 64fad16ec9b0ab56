/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeline

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func day(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC) // a Monday
}

func occupied(title string, start, end time.Time) Occupied {
	return Occupied{Interval: Interval{Start: start, End: end}, Title: title}
}

func TestWeekStartReturnsMondayMidnight(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"wednesday rolls back", time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"sunday rolls back", time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStart(tc.in); !got.Equal(tc.want) {
				t.Fatalf("WeekStart(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestGapsInWindowEmptyDay(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}

	gaps := GapsInWindow(window, nil, zerolog.Nop())

	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if !gaps[0].Start.Equal(window.Start) || !gaps[0].End.Equal(window.End) {
		t.Fatalf("expected the full window as gap, got %v-%v", gaps[0].Start, gaps[0].End)
	}
	if gaps[0].Duration() != 14*time.Hour {
		t.Fatalf("expected 14h gap, got %v", gaps[0].Duration())
	}
}

func TestGapsInWindowSingleShow(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}
	shows := []Occupied{occupied("lunch show", day(12, 0), day(13, 0))}

	gaps := GapsInWindow(window, shows, zerolog.Nop())

	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}
	if !gaps[0].Start.Equal(day(9, 0)) || !gaps[0].End.Equal(day(12, 0)) {
		t.Fatalf("unexpected first gap %v-%v", gaps[0].Start, gaps[0].End)
	}
	if !gaps[1].Start.Equal(day(13, 0)) || !gaps[1].End.Equal(day(23, 0)) {
		t.Fatalf("unexpected second gap %v-%v", gaps[1].Start, gaps[1].End)
	}
}

func TestGapsInWindowBackToBackShowsProduceNoGap(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}
	shows := []Occupied{
		occupied("a", day(9, 0), day(12, 0)),
		occupied("b", day(12, 0), day(23, 0)),
	}

	gaps := GapsInWindow(window, shows, zerolog.Nop())

	if len(gaps) != 0 {
		t.Fatalf("expected no gaps for a fully booked day, got %d", len(gaps))
	}
}

func TestGapsInWindowUnsortedInput(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}
	shows := []Occupied{
		occupied("evening", day(20, 0), day(22, 0)),
		occupied("morning", day(10, 0), day(11, 0)),
	}

	gaps := GapsInWindow(window, shows, zerolog.Nop())

	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	if !gaps[1].Start.Equal(day(11, 0)) || !gaps[1].End.Equal(day(20, 0)) {
		t.Fatalf("unexpected middle gap %v-%v", gaps[1].Start, gaps[1].End)
	}
}

func TestGapsInWindowOverlappingShowsNeverGoNegative(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}
	shows := []Occupied{
		occupied("long", day(10, 0), day(15, 0)),
		occupied("nested", day(11, 0), day(12, 0)),
	}

	gaps := GapsInWindow(window, shows, zerolog.Nop())

	for _, gap := range gaps {
		if !gap.Valid() {
			t.Fatalf("emitted non-positive gap %v-%v", gap.Start, gap.End)
		}
	}
	if len(gaps) != 2 {
		t.Fatalf("expected gaps before and after the long show, got %d", len(gaps))
	}
	if !gaps[1].Start.Equal(day(15, 0)) {
		t.Fatalf("free time should resume at the latest show end, got %v", gaps[1].Start)
	}
}

func TestGapsInWindowSkipsMalformedIntervals(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}
	shows := []Occupied{
		occupied("inverted", day(14, 0), day(13, 0)),
		occupied("zero length", day(10, 0), day(10, 0)),
	}

	gaps := GapsInWindow(window, shows, zerolog.Nop())

	if len(gaps) != 1 {
		t.Fatalf("malformed intervals should be ignored, got %d gaps", len(gaps))
	}
	if gaps[0].Duration() != 14*time.Hour {
		t.Fatalf("expected the full window back, got %v", gaps[0].Duration())
	}
}

func TestGapsInWindowIgnoresShowsStartingOutside(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}
	shows := []Occupied{
		occupied("overnight", day(2, 0), day(10, 0)),  // starts before the window
		occupied("next day", day(23, 30), day(23, 45)), // starts after it closes
	}

	gaps := GapsInWindow(window, shows, zerolog.Nop())

	if len(gaps) != 1 || gaps[0].Duration() != 14*time.Hour {
		t.Fatalf("shows starting outside the window must not occupy it, got %v", gaps)
	}
}

// Gap completeness: gaps plus occupied time tile the window exactly.
func TestGapsInWindowCoverage(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(23, 0)}
	shows := []Occupied{
		occupied("a", day(9, 30), day(11, 0)),
		occupied("b", day(13, 0), day(14, 30)),
		occupied("c", day(19, 0), day(22, 0)),
	}

	gaps := GapsInWindow(window, shows, zerolog.Nop())

	var total time.Duration
	for _, gap := range gaps {
		if !gap.Valid() {
			t.Fatalf("zero-length gap emitted: %v", gap)
		}
		total += gap.Duration()
	}
	for _, s := range shows {
		total += s.Duration()
	}
	if total != window.Duration() {
		t.Fatalf("gaps + shows = %v, want window length %v", total, window.Duration())
	}
}

func TestWindowsSpanThePlanningWeek(t *testing.T) {
	cfg := DefaultWindowConfig()
	windows := cfg.Windows(time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)) // a Wednesday

	if len(windows) != 7 {
		t.Fatalf("expected 7 windows, got %d", len(windows))
	}
	if !windows[0].Start.Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("first window should open Monday 09:00, got %v", windows[0].Start)
	}
	if !windows[6].End.Equal(time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("last window should close Sunday 23:00, got %v", windows[6].End)
	}
	for _, w := range windows {
		if w.Duration() != 14*time.Hour {
			t.Fatalf("each window should be 14h, got %v", w.Duration())
		}
	}
}
