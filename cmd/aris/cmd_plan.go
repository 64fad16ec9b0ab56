/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/friendsincode/eist_aris/internal/artifact"
	"github.com/friendsincode/eist_aris/internal/replay"
	"github.com/friendsincode/eist_aris/internal/store"
	"github.com/friendsincode/eist_aris/internal/timeline"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Match eligible shows to empty slots and write updated-slots.json",
	Long:  "Read tracks.json, schedule.json and empty-slots.json, filter out shows already published as replays, assign the rest to matching slots, and write updated-slots.json",
	RunE:  runPlan,
}

var planOutput string

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVar(&planOutput, "output", "", "Output JSON file path")
}

func runPlan(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	var trackRecords []artifact.TrackRecord
	if err := artifact.Load(artifact.TracksFile, &trackRecords); err != nil {
		return fmt.Errorf("load candidates (run `aris tracks` first): %w", err)
	}
	logger.Info().Int("candidates", len(trackRecords)).Msg("candidates loaded")

	excluded := loadExclusions()

	var slotRecords []artifact.SlotRecord
	if err := artifact.Load(artifact.SlotsFile, &slotRecords); err != nil {
		return fmt.Errorf("load empty slots (run `aris slots` first): %w", err)
	}
	logger.Info().Int("slots", len(slotRecords)).Msg("empty slots loaded")

	if len(slotRecords) == 0 {
		logger.Info().Msg("schedule is completely filled, nothing to plan")
		path, err := artifact.Save([]artifact.Mapping{}, artifact.MappingsFile, planOutput)
		if err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("empty mappings artifact written")
		return nil
	}

	pool := make([]replay.Candidate, 0, len(trackRecords))
	for _, rec := range trackRecords {
		pool = append(pool, replay.Candidate{
			Title:   rec.Title,
			Minutes: rec.ScheduledDuration,
			Payload: rec,
		})
	}

	slots := make([]timeline.Slot, 0, len(slotRecords))
	recordsByStart := make(map[int64]artifact.SlotRecord, len(slotRecords))
	for _, rec := range slotRecords {
		start, err := rec.StartTime()
		if err != nil {
			return fmt.Errorf("parse slot start %q: %w", rec.Start, err)
		}
		slot := timeline.Slot{
			Start:   start,
			End:     start.Add(time.Duration(rec.ScheduledDuration) * time.Minute),
			Minutes: rec.ScheduledDuration,
		}
		slots = append(slots, slot)
		recordsByStart[start.Unix()] = rec
	}

	seed := cfg.MatchSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	matcher := replay.NewMatcher(rand.New(rand.NewSource(seed)), logger)
	assignments, stats := matcher.Match(slots, pool, excluded)

	mappings := make([]artifact.Mapping, 0, len(assignments))
	for _, a := range assignments {
		rec, ok := a.Candidate.Payload.(artifact.TrackRecord)
		if !ok {
			return fmt.Errorf("unexpected candidate payload for %q", a.Candidate.Title)
		}
		mappings = append(mappings, artifact.Mapping{
			Slot: recordsByStart[a.Slot.Start.Unix()],
			Show: rec,
		})
	}

	path, err := artifact.Save(mappings, artifact.MappingsFile, planOutput)
	if err != nil {
		return err
	}

	logger.Info().
		Str("path", path).
		Int("mapped", len(mappings)).
		Int("assigned_1hr", stats.Assigned[60]).
		Int("assigned_2hr", stats.Assigned[120]).
		Int("unfilled_1hr", stats.Unfilled[60]).
		Int("unfilled_2hr", stats.Unfilled[120]).
		Int("excluded", stats.Excluded).
		Msg("plan written")

	recordPlanRun(cmd, slots, mappings, stats)
	return nil
}

// loadExclusions derives the already-scheduled set from schedule.json. A
// missing snapshot is not fatal: planning proceeds without duplicate
// protection, as when the schedule artifact was never generated.
func loadExclusions() map[string]struct{} {
	if !artifact.Exists(artifact.ScheduleFile) {
		logger.Warn().Msg("schedule.json not found, cannot filter already-scheduled replays")
		return nil
	}

	var scheduleRecords []artifact.ScheduleRecord
	if err := artifact.Load(artifact.ScheduleFile, &scheduleRecords); err != nil {
		logger.Warn().Err(err).Msg("could not read schedule snapshot, skipping exclusions")
		return nil
	}

	titles := make([]string, 0, len(scheduleRecords))
	for _, rec := range scheduleRecords {
		titles = append(titles, rec.Title)
	}
	excluded := replay.ExclusionSet(titles)
	logger.Info().Int("excluded", len(excluded)).Msg("already-scheduled replays found")
	return excluded
}

// recordPlanRun writes the run to the history store when one is configured.
// Store failures are logged, not fatal: the plan artifact is already on disk.
func recordPlanRun(cmd *cobra.Command, slots []timeline.Slot, mappings []artifact.Mapping, stats replay.MatchStats) {
	if cfg.DBDSN == "" {
		return
	}

	st, err := store.Connect(cfg, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("run history store unavailable")
		return
	}
	defer st.Close()

	var weekStart time.Time
	if len(slots) > 0 {
		weekStart = timeline.WeekStart(slots[0].Start)
	}
	if _, err := st.RecordRun(cmd.Context(), weekStart, mappings, stats); err != nil {
		logger.Warn().Err(err).Msg("could not record planning run")
	}
}
