/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package replay selects previously-aired shows for éist arís replay slots:
// candidate eligibility and duration classing, replay-marker title handling,
// and the slot matcher.
package replay

import (
	"regexp"
	"strings"
)

// Marker is the suffix appended to a replayed show's title.
const Marker = "(éist arís)"

// markerPattern matches the replay marker in published titles, including the
// common misspellings seen in the live schedule: "éist arís", "eist aris",
// "ésit arís", with or without parentheses, any case.
var markerPattern = regexp.MustCompile(`(?i)\(?\s*[eé](?:ist|sit)\s+ar[ií]s\s*\)?`)

// HasMarker reports whether a title already carries the replay marker.
func HasMarker(title string) bool {
	return markerPattern.MatchString(title)
}

// StripMarker removes the replay marker from a title and trims the remainder,
// recovering the original show title.
func StripMarker(title string) string {
	return strings.TrimSpace(markerPattern.ReplaceAllString(title, ""))
}

// MarkedTitle returns the title a replay broadcast is published under.
func MarkedTitle(title string) string {
	return title + " " + Marker
}

// ExclusionSet collects the original titles of shows already published as
// replays. Titles without the marker are ignored; marked titles that strip to
// nothing are dropped.
func ExclusionSet(publishedTitles []string) map[string]struct{} {
	excluded := make(map[string]struct{})
	for _, title := range publishedTitles {
		title = strings.TrimSpace(title)
		if title == "" || !HasMarker(title) {
			continue
		}
		if original := StripMarker(title); original != "" {
			excluded[original] = struct{}{}
		}
	}
	return excluded
}
