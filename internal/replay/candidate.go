/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package replay

import (
	"github.com/friendsincode/eist_aris/internal/timeline"
)

// ClassToleranceMinutes is how far a show's recorded duration may sit from a
// slot length and still be booked into it. Kept at the station's historical
// value of one minute.
const ClassToleranceMinutes = 1

// Candidate is an eligible previously-aired show. Minutes is its duration
// class (60 or 120); Payload is opaque caller metadata carried through to the
// resulting assignment untouched.
type Candidate struct {
	Title   string
	Minutes int
	Payload any
}

// ClassDuration buckets a raw duration in minutes into a slot class.
// Durations farther than ClassToleranceMinutes from both 60 and 120 are not
// classifiable and the candidate is ineligible. An exact midpoint resolves to
// 60; the strict < comparison is the station's fixed tie-break.
func ClassDuration(rawMinutes int) (int, bool) {
	distShort := absInt(rawMinutes - timeline.SlotMinutesShort)
	distLong := absInt(rawMinutes - timeline.SlotMinutesLong)
	if distShort > ClassToleranceMinutes && distLong > ClassToleranceMinutes {
		return 0, false
	}
	if distLong < distShort {
		return timeline.SlotMinutesLong, true
	}
	return timeline.SlotMinutesShort, true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
