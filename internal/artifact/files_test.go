/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/friendsincode/eist_aris/internal/timeline"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.json")

	in := []Mapping{
		{
			Slot: SlotRecord{
				Start:             "2026-03-02 09:00",
				End:               "2026-03-02 11:00",
				DurationMinutes:   120,
				ScheduledDuration: 120,
				DayOfWeek:         "Monday",
				Date:              "2026-03-02",
			},
			Show: TrackRecord{Title: "Ceol na nGael", ScheduledDuration: 120, TrackID: "trk-1"},
		},
	}

	written, err := Save(in, MappingsFile, path)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if written != path {
		t.Fatalf("expected explicit path %s to win, got %s", path, written)
	}

	var out []Mapping
	if err := Load(path, &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].Show.Title != "Ceol na nGael" || out[0].Slot.ScheduledDuration != 120 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSaveDefaultsFilename(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})

	written, err := Save([]SlotRecord{}, SlotsFile, "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if written != SlotsFile {
		t.Fatalf("expected default filename %s, got %s", SlotsFile, written)
	}
	if !Exists(SlotsFile) {
		t.Fatal("expected artifact file on disk")
	}
}

func TestSaveKeepsNonASCIIReadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracks.json")

	if _, err := Save([]TrackRecord{{Title: "Ceol na nGael (éist arís)"}}, TracksFile, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "éist arís") {
		t.Fatalf("expected literal UTF-8 in artifact, got %s", data)
	}
}

func TestNewSlotRecord(t *testing.T) {
	slot := timeline.Slot{
		Start:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		End:     time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		Minutes: 120,
	}

	rec := NewSlotRecord(slot)

	if rec.Start != "2026-03-02 09:00" || rec.End != "2026-03-02 11:00" {
		t.Fatalf("unexpected timestamps: %s - %s", rec.Start, rec.End)
	}
	if rec.DayOfWeek != "Monday" || rec.Date != "2026-03-02" {
		t.Fatalf("unexpected day fields: %s %s", rec.DayOfWeek, rec.Date)
	}
	if rec.DurationMinutes != 120 || rec.ScheduledDuration != 120 {
		t.Fatalf("unexpected durations: %d/%d", rec.DurationMinutes, rec.ScheduledDuration)
	}

	back, err := rec.StartTime()
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	if !back.Equal(slot.Start) {
		t.Fatalf("StartTime round trip: got %v, want %v", back, slot.Start)
	}
}
