/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package replay

import (
	"github.com/friendsincode/eist_aris/internal/radiocult"
)

// EligibleShow reports whether a scheduled show can be offered as a replay
// candidate: it must have a title not already marked as a replay, and carry
// pre-recorded mix media with a track id so the broadcast can be recreated.
// Duration classing is checked separately via ClassDuration.
func EligibleShow(show radiocult.Show) bool {
	if show.Title == "" {
		return false
	}
	if HasMarker(show.Title) {
		return false
	}
	if show.Media == nil || show.Media.Type != "mix" || show.Media.TrackID == "" {
		return false
	}
	return true
}
