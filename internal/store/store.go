/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package store records planning runs so operators can audit what was planned
// and when. The store is optional; commands run without it when no DSN is
// configured.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/friendsincode/eist_aris/internal/artifact"
	"github.com/friendsincode/eist_aris/internal/config"
	"github.com/friendsincode/eist_aris/internal/replay"
)

// Run is one recorded planning pass.
type Run struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	WeekStart    time.Time
	SlotsTotal   int
	SlotsFilled  int
	Excluded     int
	Assignments  []RunAssignment `gorm:"foreignKey:RunID"`
	CreatedAt    time.Time
}

// RunAssignment is one show-to-slot pairing within a run.
type RunAssignment struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	RunID           string `gorm:"type:uuid;index"`
	SlotStart       time.Time
	SlotEnd         time.Time
	DurationMinutes int
	Title           string
	TrackID         string
	CreatedAt       time.Time
}

// Store persists planning runs.
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// Connect opens a gorm connection for the configured backend and migrates the
// run history schema.
func Connect(cfg *config.Config, logger zerolog.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.DBBackend {
	case config.DatabasePostgres:
		dialector = postgres.Open(cfg.DBDSN)
	case config.DatabaseMySQL:
		dialector = mysql.Open(cfg.DBDSN)
	case config.DatabaseSQLite:
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unknown database backend: %s", cfg.DBBackend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return NewStore(db, logger)
}

// NewStore wraps an existing gorm connection and migrates the schema.
func NewStore(db *gorm.DB, logger zerolog.Logger) (*Store, error) {
	if err := db.AutoMigrate(&Run{}, &RunAssignment{}); err != nil {
		return nil, fmt.Errorf("migrate run history schema: %w", err)
	}
	return &Store{db: db, logger: logger.With().Str("component", "store").Logger()}, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordRun persists a planning run and its assignments.
func (s *Store) RecordRun(ctx context.Context, weekStart time.Time, mappings []artifact.Mapping, stats replay.MatchStats) (*Run, error) {
	unfilled := 0
	for _, n := range stats.Unfilled {
		unfilled += n
	}

	run := Run{
		ID:          uuid.NewString(),
		WeekStart:   weekStart.UTC(),
		SlotsTotal:  len(mappings) + unfilled,
		SlotsFilled: len(mappings),
		Excluded:    stats.Excluded,
	}

	for _, m := range mappings {
		slotStart, err := m.Slot.StartTime()
		if err != nil {
			return nil, fmt.Errorf("parse slot start %q: %w", m.Slot.Start, err)
		}
		run.Assignments = append(run.Assignments, RunAssignment{
			ID:              uuid.NewString(),
			RunID:           run.ID,
			SlotStart:       slotStart,
			SlotEnd:         slotStart.Add(time.Duration(m.Slot.ScheduledDuration) * time.Minute),
			DurationMinutes: m.Slot.ScheduledDuration,
			Title:           m.Show.Title,
			TrackID:         m.Show.TrackID,
		})
	}

	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}

	s.logger.Info().
		Str("run_id", run.ID).
		Int("filled", run.SlotsFilled).
		Int("total", run.SlotsTotal).
		Msg("planning run recorded")
	return &run, nil
}

// RecentRuns returns the latest runs with assignments preloaded, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	var runs []Run
	err := s.db.WithContext(ctx).
		Preload("Assignments").
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
