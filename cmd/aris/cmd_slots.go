/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/eist_aris/internal/artifact"
	"github.com/friendsincode/eist_aris/internal/radiocult"
	"github.com/friendsincode/eist_aris/internal/timeline"
)

var slotsCmd = &cobra.Command{
	Use:   "slots <date>",
	Short: "Find empty 1h/2h slots for the target week and write empty-slots.json",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlots,
}

var (
	slotsDays   int
	slotsOutput string
)

func init() {
	rootCmd.AddCommand(slotsCmd)
	slotsCmd.Flags().IntVar(&slotsDays, "days", 0, "Number of days to scan (default from config)")
	slotsCmd.Flags().StringVar(&slotsOutput, "output", "", "Output JSON file path")
}

func runSlots(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	target, err := parseTargetDate(args[0])
	if err != nil {
		return err
	}

	days := slotsDays
	if days <= 0 {
		days = cfg.PlanningDays
	}

	client, err := radiocult.NewClient(cfg.APIBaseURL, cfg.StationID, cfg.APIKey, logger)
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	week := timeline.WeekStart(target)
	end := week.AddDate(0, 0, days)

	shows, err := client.Schedule(cmd.Context(), week, end)
	if err != nil {
		return err
	}

	occupied := make([]timeline.Occupied, 0, len(shows))
	for _, show := range shows {
		occupied = append(occupied, timeline.Occupied{
			Interval: timeline.Interval{Start: show.Start, End: show.End},
			Title:    show.Title,
		})
	}

	planner := timeline.NewPlanner(timeline.WindowConfig{
		StartHour: cfg.DayStartHour,
		EndHour:   cfg.DayEndHour,
		Days:      days,
	}, logger)
	plan := planner.FindSlots(target, occupied)

	if len(plan.Slots) == 0 {
		logger.Info().Msg("schedule is completely filled, no empty slots")
	}

	records := make([]artifact.SlotRecord, 0, len(plan.Slots))
	for _, slot := range plan.Slots {
		records = append(records, artifact.NewSlotRecord(slot))
	}

	path, err := artifact.Save(records, artifact.SlotsFile, slotsOutput)
	if err != nil {
		return err
	}

	short, long := 0, 0
	for _, r := range records {
		if r.ScheduledDuration == 60 {
			short++
		} else {
			long++
		}
	}
	logger.Info().
		Str("path", path).
		Int("gaps", len(plan.Gaps)).
		Int("slots", len(records)).
		Int("1hr", short).
		Int("2hr", long).
		Msg("empty slots artifact written")
	return nil
}
