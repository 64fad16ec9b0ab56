/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/eist_aris/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded planning runs",
	RunE:  runRuns,
}

var runsLimit int

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if cfg.DBDSN == "" {
		return fmt.Errorf("run history store not configured, set ARIS_DB_DSN")
	}

	st, err := store.Connect(cfg, logger)
	if err != nil {
		return fmt.Errorf("open run history store: %w", err)
	}
	defer st.Close()

	runs, err := st.RecentRuns(cmd.Context(), runsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no planning runs recorded yet")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  week %s  %d/%d slots filled  (%d excluded)\n",
			run.CreatedAt.UTC().Format("2006-01-02 15:04"),
			run.WeekStart.Format("2006-01-02"),
			run.SlotsFilled, run.SlotsTotal, run.Excluded)
		for _, a := range run.Assignments {
			fmt.Printf("    %s - %s  %3dmin  %s\n",
				a.SlotStart.UTC().Format("Mon 15:04"),
				a.SlotEnd.UTC().Format("15:04"),
				a.DurationMinutes, a.Title)
		}
	}
	return nil
}
