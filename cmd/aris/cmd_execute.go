/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/eist_aris/internal/artifact"
	"github.com/friendsincode/eist_aris/internal/browser"
)

var executeCmd = &cobra.Command{
	Use:   "execute",
	Short: "Create the planned shows in the web app",
	Long:  "Read updated-slots.json and create each mapped show through the Radiocult web UI with a browser session",
	RunE:  runExecute,
}

var executeInput string

func init() {
	rootCmd.AddCommand(executeCmd)
	executeCmd.Flags().StringVar(&executeInput, "input", artifact.MappingsFile, "Mappings JSON file to execute")
}

func runExecute(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := cfg.RequireLogin(); err != nil {
		return err
	}

	var mappings []artifact.Mapping
	if err := artifact.Load(executeInput, &mappings); err != nil {
		return fmt.Errorf("load mappings (run `aris plan` first): %w", err)
	}

	if len(mappings) == 0 {
		logger.Info().Msg("no mappings to execute")
		return nil
	}
	logger.Info().Int("mappings", len(mappings)).Msg("executing plan")

	automator, err := browser.New(cfg.WebBaseURL, cfg.Headless, logger)
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer automator.Close()

	if _, err := automator.Login(cfg.LoginEmail, cfg.LoginPassword); err != nil {
		return err
	}

	created, failed := automator.Execute(mappings)
	logger.Info().Int("created", created).Int("failed", failed).Msg("execution finished")

	if failed > 0 {
		return fmt.Errorf("%d of %d shows failed to create", failed, len(mappings))
	}
	return nil
}
