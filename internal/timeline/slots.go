/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeline

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Slot duration classes. These are the only bookable replay lengths.
const (
	SlotMinutesShort = 60
	SlotMinutesLong  = 120
)

// Slot is a bookable unit carved out of a free gap.
type Slot struct {
	Start   time.Time
	End     time.Time
	Minutes int // 60 or 120
}

// Quantize splits a gap into slots, greedy leftmost-first: 2-hour slots while
// at least two hours remain, then a 1-hour slot, dropping any tail shorter
// than an hour. Longer slots are preferred so a 3-hour gap becomes 120+60,
// never 60+60+60.
func Quantize(gap Interval) []Slot {
	var slots []Slot
	cursor := gap.Start
	for cursor.Before(gap.End) {
		remaining := gap.End.Sub(cursor)
		var minutes int
		switch {
		case remaining >= SlotMinutesLong*time.Minute:
			minutes = SlotMinutesLong
		case remaining >= SlotMinutesShort*time.Minute:
			minutes = SlotMinutesShort
		default:
			return slots
		}
		end := cursor.Add(time.Duration(minutes) * time.Minute)
		slots = append(slots, Slot{Start: cursor, End: end, Minutes: minutes})
		cursor = end
	}
	return slots
}

// Planner turns a week's occupied schedule into the canonical slot list.
type Planner struct {
	cfg    WindowConfig
	logger zerolog.Logger
}

// NewPlanner constructs a slot planner for the given window config.
func NewPlanner(cfg WindowConfig, logger zerolog.Logger) *Planner {
	if cfg.Days <= 0 {
		cfg = DefaultWindowConfig()
	}
	return &Planner{cfg: cfg, logger: logger.With().Str("component", "timeline").Logger()}
}

// Plan holds the free time found for a week.
type Plan struct {
	Gaps  []Interval
	Slots []Slot
}

// FindSlots computes per-day gaps for the week containing anchor and
// quantizes them. Slots are returned sorted ascending by start; this ordering
// is the canonical fill order. Gaps never cross a day boundary even when two
// adjacent days are fully empty.
func (p *Planner) FindSlots(anchor time.Time, occupied []Occupied) Plan {
	var plan Plan
	for _, window := range p.cfg.Windows(anchor) {
		gaps := GapsInWindow(window, occupied, p.logger)
		for _, gap := range gaps {
			slots := Quantize(gap)
			p.logger.Debug().
				Time("gap_start", gap.Start).
				Time("gap_end", gap.End).
				Int("slots", len(slots)).
				Msg("quantized gap")
			plan.Slots = append(plan.Slots, slots...)
		}
		plan.Gaps = append(plan.Gaps, gaps...)
	}

	sort.Slice(plan.Slots, func(i, j int) bool {
		return plan.Slots[i].Start.Before(plan.Slots[j].Start)
	})

	p.logger.Info().
		Int("gaps", len(plan.Gaps)).
		Int("slots", len(plan.Slots)).
		Msg("weekly slot plan ready")
	return plan
}
