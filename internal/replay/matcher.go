/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package replay

import (
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/friendsincode/eist_aris/internal/timeline"
)

// Assignment pairs a slot with the candidate that will fill it. The slot and
// candidate always share a duration class.
type Assignment struct {
	Slot      timeline.Slot
	Candidate Candidate
}

// MatchStats summarizes a matching run for the caller. Unfilled slots are a
// normal outcome (a class can simply have no eligible shows), not an error;
// downstream automation decides what to do with them.
type MatchStats struct {
	Assigned map[int]int // duration class -> slots filled
	Unfilled map[int]int // duration class -> slots left empty
	Excluded int         // candidates removed by the exclusion set
	Reused   map[int]int // duration class -> reshuffle passes beyond the first
}

// Matcher assigns candidates to slots of the same duration class. Candidate
// order within a class is a random permutation of the pool; the rand source
// is injected so runs are reproducible under test.
type Matcher struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewMatcher constructs a matcher around the supplied rand source.
func NewMatcher(rng *rand.Rand, logger zerolog.Logger) *Matcher {
	return &Matcher{rng: rng, logger: logger.With().Str("component", "matcher").Logger()}
}

// Match walks the slots in chronological order and pops a candidate of the
// matching class for each. Every distinct candidate is used once before any
// repeat: when a class queue empties and the class pool is non-empty, a fresh
// shuffled copy refills it (reuse pass, warned once per class). Slots whose
// class has no candidates at all are dropped from the output and counted.
func (m *Matcher) Match(slots []timeline.Slot, pool []Candidate, excluded map[string]struct{}) ([]Assignment, MatchStats) {
	stats := MatchStats{
		Assigned: make(map[int]int),
		Unfilled: make(map[int]int),
		Reused:   make(map[int]int),
	}

	byClass := make(map[int][]Candidate)
	for _, c := range pool {
		if _, skip := excluded[strings.TrimSpace(c.Title)]; skip {
			stats.Excluded++
			m.logger.Debug().Str("title", c.Title).Msg("candidate already scheduled, excluded")
			continue
		}
		byClass[c.Minutes] = append(byClass[c.Minutes], c)
	}

	queues := make(map[int][]Candidate, len(byClass))
	for class, candidates := range byClass {
		queues[class] = m.shuffled(candidates)
	}

	assignments := make([]Assignment, 0, len(slots))
	for _, slot := range slots {
		class := slot.Minutes
		if len(queues[class]) == 0 {
			if len(byClass[class]) == 0 {
				stats.Unfilled[class]++
				continue
			}
			if stats.Reused[class] == 0 {
				m.logger.Warn().
					Int("minutes", class).
					Int("pool", len(byClass[class])).
					Msg("all distinct candidates used, reusing pool")
			}
			stats.Reused[class]++
			queues[class] = m.shuffled(byClass[class])
		}

		candidate := queues[class][0]
		queues[class] = queues[class][1:]
		assignments = append(assignments, Assignment{Slot: slot, Candidate: candidate})
		stats.Assigned[class]++
	}

	return assignments, stats
}

// shuffled returns a random permutation without touching the input slice.
func (m *Matcher) shuffled(candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	m.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
