/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package radiocult

import (
	"encoding/json"
	"strings"
	"time"
)

// Media describes the source attached to a scheduled show.
type Media struct {
	Type    string `json:"type"`
	TrackID string `json:"trackId"`
}

// Show is a scheduled broadcast as returned by the schedule endpoint.
type Show struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Duration    int             `json:"duration"` // minutes
	Media       *Media          `json:"media"`
	Description json.RawMessage `json:"description"`
	ArtistIDs   []string        `json:"artistIds"`
	Artists     json.RawMessage `json:"artists"`
	Color       string          `json:"color"`
}

// Track is a library track from the media endpoint.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration int    `json:"duration"`
}

// Artist is a station artist profile.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlainDescription flattens a rich-text description document (paragraph
// blocks of text nodes) into a single plain string. Non-document descriptions
// and unparseable payloads yield "".
func PlainDescription(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return strings.TrimSpace(plain)
	}

	var doc struct {
		Content []struct {
			Type    string `json:"type"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}

	var parts []string
	for _, block := range doc.Content {
		if block.Type != "paragraph" {
			continue
		}
		for _, node := range block.Content {
			if node.Type == "text" && node.Text != "" {
				parts = append(parts, node.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
