/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/eist_aris/internal/artifact"
	"github.com/friendsincode/eist_aris/internal/browser"
	"github.com/friendsincode/eist_aris/internal/radiocult"
	"github.com/friendsincode/eist_aris/internal/replay"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks <date>",
	Short: "Collect eligible replay shows into tracks.json",
	Long:  "Scan the schedule of the past weeks for shows eligible as éist arís replays, resolve their track and artist details, and write tracks.json",
	Args:  cobra.ExactArgs(1),
	RunE:  runTracks,
}

var (
	tracksWeeksBack int
	tracksOutput    string
)

func init() {
	rootCmd.AddCommand(tracksCmd)
	tracksCmd.Flags().IntVar(&tracksWeeksBack, "weeks-back", 0, "Weeks to look back for shows (default from config)")
	tracksCmd.Flags().StringVar(&tracksOutput, "output", "", "Output JSON file path")
}

func runTracks(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	target, err := parseTargetDate(args[0])
	if err != nil {
		return err
	}

	weeksBack := tracksWeeksBack
	if weeksBack <= 0 {
		weeksBack = cfg.WeeksBack
	}

	client, err := radiocult.NewClient(cfg.APIBaseURL, cfg.StationID, cfg.APIKey, logger)
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	ctx := cmd.Context()
	lookbackStart := target.AddDate(0, 0, -7*weeksBack)

	logger.Info().
		Time("from", lookbackStart).
		Time("to", target).
		Msg("fetching shows for replay candidates")

	shows, err := client.Schedule(ctx, lookbackStart, target)
	if err != nil {
		return err
	}
	logger.Info().Int("shows", len(shows)).Msg("schedule fetched")

	records := make([]artifact.TrackRecord, 0, len(shows))
	for _, show := range shows {
		if !replay.EligibleShow(show) {
			continue
		}
		class, ok := replay.ClassDuration(show.Duration)
		if !ok {
			logger.Debug().
				Str("title", show.Title).
				Int("duration", show.Duration).
				Msg("show duration not classifiable, skipping")
			continue
		}
		records = append(records, artifact.NewTrackRecord(show, class))
	}
	logger.Info().Int("eligible", len(records)).Msg("eligible replay shows found")

	if err := enrichTrackRecords(ctx, client, records); err != nil {
		return err
	}

	path, err := artifact.Save(records, artifact.TracksFile, tracksOutput)
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
		Int("1hr", short).
		Int("2hr", long).
		Msg("tracks artifact written")
	return nil
}

// enrichTrackRecords resolves library track titles and artist names for each
// candidate. The track endpoint needs a web session on top of the API key, so
// a browser login runs first when credentials are configured; without them
// enrichment is skipped with a warning.
func enrichTrackRecords(ctx context.Context, client *radiocult.Client, records []artifact.TrackRecord) error {
	if cfg.LoginEmail == "" || cfg.LoginPassword == "" {
		logger.Warn().Msg("login credentials not set, skipping track/artist enrichment")
		return nil
	}

	automator, err := browser.New(cfg.WebBaseURL, cfg.Headless, logger)
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer automator.Close()

	cookies, err := automator.Login(cfg.LoginEmail, cfg.LoginPassword)
	if err != nil {
		return err
	}
	client.SetSessionCookies(cookies)

	for i := range records {
		rec := &records[i]

		if rec.TrackID != "" {
			track, err := client.Track(ctx, rec.TrackID)
			if err != nil {
				logger.Warn().Err(err).Str("track_id", rec.TrackID).Msg("could not fetch track details")
			} else if track != nil && track.Title != "" {
				rec.TrackTitle = track.Title
			}
		}

		if len(rec.ArtistIDs) > 0 {
			artist, err := client.Artist(ctx, rec.ArtistIDs[0])
			if err != nil {
				logger.Warn().Err(err).Str("artist_id", rec.ArtistIDs[0]).Msg("could not fetch artist details")
			} else if artist != nil && artist.Name != "" {
				rec.ArtistName = artist.Name
			}
		}

		logger.Debug().
			Int("n", i+1).
			Int("total", len(records)).
			Str("title", rec.Title).
			Str("track_title", rec.TrackTitle).
			Str("artist", rec.ArtistName).
			Msg("candidate enriched")
	}
	return nil
}
