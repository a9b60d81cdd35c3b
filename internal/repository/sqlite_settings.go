package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo against the single settings row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT unit_minutes, day_start, units_per_day, wip_limit, created_at, updated_at
		FROM settings WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var createdAt, updatedAt string
	err := row.Scan(&s.UnitMinutes, &s.DayStart, &s.UnitsPerDay, &s.WipLimit, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &s, nil
}

// Update overwrites the single settings row in one statement; the row-level
// write is the atomicity boundary for concurrent settings writers
// (last-writer-wins over the one admin-style record).
func (r *SQLiteSettingsRepo) Update(ctx context.Context, s *domain.Settings) error {
	query := `UPDATE settings SET unit_minutes = ?, day_start = ?, units_per_day = ?,
		wip_limit = ?, updated_at = ? WHERE id = 1`
	_, err := r.db.ExecContext(ctx, query,
		s.UnitMinutes,
		s.DayStart,
		s.UnitsPerDay,
		s.WipLimit,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	return nil
}
