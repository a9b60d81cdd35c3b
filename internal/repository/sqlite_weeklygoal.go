package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/domain"
)

// SQLiteWeeklyGoalRepo implements WeeklyGoalRepo using a SQLite database.
// weekly_goals has a unique week_start per row, one goal entry per week.
type SQLiteWeeklyGoalRepo struct {
	db db.DBTX
}

// NewSQLiteWeeklyGoalRepo creates a new SQLiteWeeklyGoalRepo.
func NewSQLiteWeeklyGoalRepo(conn db.DBTX) *SQLiteWeeklyGoalRepo {
	return &SQLiteWeeklyGoalRepo{db: conn}
}

func (r *SQLiteWeeklyGoalRepo) GetByWeek(ctx context.Context, weekStart time.Time) (*domain.WeeklyGoal, error) {
	query := `SELECT id, week_start, content, created_at, updated_at
		FROM weekly_goals WHERE week_start = ?`
	row := r.db.QueryRowContext(ctx, query, weekStart.Format(dateLayout))

	var g domain.WeeklyGoal
	var ws, createdAt, updatedAt string
	err := row.Scan(&g.ID, &ws, &g.Content, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("weekly goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning weekly goal: %w", err)
	}
	g.WeekStart, _ = time.Parse(dateLayout, ws)
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	g.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &g, nil
}

func (r *SQLiteWeeklyGoalRepo) Upsert(ctx context.Context, g *domain.WeeklyGoal) error {
	query := `INSERT INTO weekly_goals (id, week_start, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(week_start) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.WeekStart.Format(dateLayout),
		g.Content,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting weekly goal: %w", err)
	}
	return nil
}

func (r *SQLiteWeeklyGoalRepo) Delete(ctx context.Context, weekStart time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM weekly_goals WHERE week_start = ?`, weekStart.Format(dateLayout)); err != nil {
		return fmt.Errorf("deleting weekly goal: %w", err)
	}
	return nil
}
