package planner

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/study-planner/backend/internal/models"
)

// LogStore persists productivity entries (planned vs actual hours per day).
// Unlike schedules, the study log survives across sessions.
type LogStore struct {
	db *sql.DB
}

func NewLogStore(db *sql.DB) *LogStore {
	return &LogStore{db: db}
}

// RecordEntry upserts the user's entry for a day; re-submitting replaces the
// earlier numbers.
func (s *LogStore) RecordEntry(userID int64, day time.Time, actual, planned float64) error {
	_, err := s.db.Exec(
		`INSERT INTO study_log (user_id, log_date, actual_hours, planned_hours)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, log_date) DO UPDATE
		 SET actual_hours = EXCLUDED.actual_hours,
		     planned_hours = EXCLUDED.planned_hours,
		     updated_at = NOW()`,
		userID, day, actual, planned,
	)
	if err != nil {
		return fmt.Errorf("record study log: %w", err)
	}
	return nil
}

// ListEntries returns the user's most recent study-log rows, newest first.
func (s *LogStore) ListEntries(userID int64, limit int) ([]models.StudyLogEntry, error) {
	rows, err := s.db.Query(
		`SELECT log_date, planned_hours, actual_hours
		 FROM study_log
		 WHERE user_id = $1
		 ORDER BY log_date DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list study log: %w", err)
	}
	defer rows.Close()

	var entries []models.StudyLogEntry
	for rows.Next() {
		var day time.Time
		var e models.StudyLogEntry
		if err := rows.Scan(&day, &e.PlannedHours, &e.ActualHours); err != nil {
			return nil, fmt.Errorf("scan study log: %w", err)
		}
		e.Date = day.Format("2006-01-02")
		e.Percent = ProductivityPercent(e.ActualHours, e.PlannedHours)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
