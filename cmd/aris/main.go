package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/friendsincode/eist_aris/internal/config"
	"github.com/friendsincode/eist_aris/internal/logging"
)

var (
	logger zerolog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aris",
	Short: "Éist arís replay planner for the station schedule",
	Long:  "aris plans éist arís (replay) broadcasts: it finds empty 1h/2h slots in the weekly schedule, matches eligible previously-aired shows to them, and can create the resulting events in the Radiocult web app.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Environment)
	return nil
}

// parseTargetDate accepts YYYY-MM-DD or YYYY-MM-DD HH:MM:SS, as UTC.
func parseTargetDate(arg string) (time.Time, error) {
	layouts := []string{"2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, arg, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS", arg)
}
