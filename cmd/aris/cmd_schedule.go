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

var scheduleCmd = &cobra.Command{
	Use:   "schedule <date>",
	Short: "Snapshot the target week's schedule into schedule.json",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchedule,
}

var (
	scheduleDays   int
	scheduleOutput string
)

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().IntVar(&scheduleDays, "days", 0, "Number of days to fetch (default from config)")
	scheduleCmd.Flags().StringVar(&scheduleOutput, "output", "", "Output JSON file path")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	target, err := parseTargetDate(args[0])
	if err != nil {
		return err
	}

	days := scheduleDays
	if days <= 0 {
		days = cfg.PlanningDays
	}

	client, err := radiocult.NewClient(cfg.APIBaseURL, cfg.StationID, cfg.APIKey, logger)
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	week := timeline.WeekStart(target)
	end := week.AddDate(0, 0, days)

	logger.Info().Time("week_start", week).Time("end", end).Msg("fetching current schedule")
	shows, err := client.Schedule(cmd.Context(), week, end)
	if err != nil {
		return err
	}

	records := make([]artifact.ScheduleRecord, 0, len(shows))
	for _, show := range shows {
		records = append(records, artifact.NewScheduleRecord(show))
	}

	path, err := artifact.Save(records, artifact.ScheduleFile, scheduleOutput)
	if err != nil {
		return err
	}

	logger.Info().Str("path", path).Int("shows", len(records)).Msg("schedule artifact written")
	return nil
}
