/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package artifact defines the JSON files the planner modes exchange:
// eligible tracks, the current schedule snapshot, empty slots, and the final
// show-to-slot mappings.
package artifact

import (
	"encoding/json"
	"time"

	"github.com/friendsincode/eist_aris/internal/radiocult"
	"github.com/friendsincode/eist_aris/internal/timeline"
)

// Default artifact filenames, overridable per command with --output.
const (
	TracksFile   = "tracks.json"
	ScheduleFile = "schedule.json"
	SlotsFile    = "empty-slots.json"
	MappingsFile = "updated-slots.json"
)

// slotTimeLayout is the human-readable timestamp used in slot artifacts.
const slotTimeLayout = "2006-01-02 15:04"

// TrackRecord is an eligible replay candidate with its track and artist
// details resolved.
type TrackRecord struct {
	Title             string          `json:"title"`
	OriginalStart     string          `json:"original_start"`
	OriginalEnd       string          `json:"original_end"`
	Duration          int             `json:"duration"`
	ScheduledDuration int             `json:"scheduled_duration"`
	MediaType         string          `json:"media_type"`
	TrackID           string          `json:"track_id"`
	Description       json.RawMessage `json:"description"`
	ShowID            string          `json:"show_id"`
	Color             string          `json:"color"`
	ArtistIDs         []string        `json:"artist_ids"`
	Artists           json.RawMessage `json:"artists"`
	ArtistName        string          `json:"artist_name,omitempty"`
	TrackTitle        string          `json:"track_title,omitempty"`
}

// NewTrackRecord builds a candidate record from an eligible show and its
// duration class.
func NewTrackRecord(show radiocult.Show, scheduledDuration int) TrackRecord {
	var mediaType, trackID string
	if show.Media != nil {
		mediaType = show.Media.Type
		trackID = show.Media.TrackID
	}
	return TrackRecord{
		Title:             show.Title,
		OriginalStart:     show.Start.UTC().Format(time.RFC3339),
		OriginalEnd:       show.End.UTC().Format(time.RFC3339),
		Duration:          show.Duration,
		ScheduledDuration: scheduledDuration,
		MediaType:         mediaType,
		TrackID:           trackID,
		Description:       show.Description,
		ShowID:            show.ID,
		Color:             show.Color,
		ArtistIDs:         show.ArtistIDs,
		Artists:           show.Artists,
	}
}

// ScheduleRecord is one show of the current schedule snapshot.
type ScheduleRecord struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Start       string          `json:"start"`
	End         string          `json:"end"`
	Duration    int             `json:"duration"`
	MediaType   string          `json:"media_type"`
	TrackID     string          `json:"track_id"`
	Description json.RawMessage `json:"description"`
	ArtistIDs   []string        `json:"artist_ids"`
	Artists     json.RawMessage `json:"artists"`
	Color       string          `json:"color"`
}

// NewScheduleRecord snapshots a scheduled show.
func NewScheduleRecord(show radiocult.Show) ScheduleRecord {
	var mediaType, trackID string
	if show.Media != nil {
		mediaType = show.Media.Type
		trackID = show.Media.TrackID
	}
	return ScheduleRecord{
		ID:          show.ID,
		Title:       show.Title,
		Start:       show.Start.UTC().Format(time.RFC3339),
		End:         show.End.UTC().Format(time.RFC3339),
		Duration:    show.Duration,
		MediaType:   mediaType,
		TrackID:     trackID,
		Description: show.Description,
		ArtistIDs:   show.ArtistIDs,
		Artists:     show.Artists,
		Color:       show.Color,
	}
}

// SlotRecord is one empty slot found for the target week.
type SlotRecord struct {
	Start             string `json:"start"`
	End               string `json:"end"`
	DurationMinutes   int    `json:"duration_minutes"`
	ScheduledDuration int    `json:"scheduled_duration"`
	DayOfWeek         string `json:"day_of_week"`
	Date              string `json:"date"`
}

// NewSlotRecord converts a quantized slot into its artifact form.
func NewSlotRecord(slot timeline.Slot) SlotRecord {
	return SlotRecord{
		Start:             slot.Start.UTC().Format(slotTimeLayout),
		End:               slot.End.UTC().Format(slotTimeLayout),
		DurationMinutes:   slot.Minutes,
		ScheduledDuration: slot.Minutes,
		DayOfWeek:         slot.Start.UTC().Weekday().String(),
		Date:              slot.Start.UTC().Format("2006-01-02"),
	}
}

// StartTime parses the slot's start timestamp back into UTC time.
func (s SlotRecord) StartTime() (time.Time, error) {
	return time.ParseInLocation(slotTimeLayout, s.Start, time.UTC)
}

// Mapping pairs an empty slot with the show planned into it.
type Mapping struct {
	Slot SlotRecord  `json:"slot"`
	Show TrackRecord `json:"show"`
}
