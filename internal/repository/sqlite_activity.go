package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/domain"
)

// activityColumns is the canonical SELECT column list for activities.
const activityColumns = `id, title, list_id, sublist_id, duration, due_date, start_time,
		is_priority, position, is_active, is_completed, completed_at, created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, title, list_id, sublist_id, duration, due_date, start_time,
		is_priority, position, is_active, is_completed, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		a.ListID,
		nullableStrToValue(a.SublistID),
		string(a.Duration),
		a.DueDate.Format(dateLayout),
		a.StartTime,
		boolToInt(a.IsPriority),
		a.Position,
		boolToInt(a.IsActive),
		boolToInt(a.IsCompleted),
		nullableTimeToString(a.CompletedAt, time.RFC3339),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanActivity(row)
}

// ListByContainer returns the container's activities in position order.
// Ties (fresh inserts at position 0, stale runs after a delete) fall back
// to insertion order, which is also the tie-break ReorderPositions uses.
func (r *SQLiteActivityRepo) ListByContainer(ctx context.Context, c Container) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE list_id = ? AND sublist_id IS ?
		ORDER BY position, rowid`
	rows, err := r.db.QueryContext(ctx, query, c.ListID, nullableStrToValue(c.SublistID))
	if err != nil {
		return nil, fmt.Errorf("listing activities by container: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListByList(ctx context.Context, listID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE list_id = ?
		ORDER BY sublist_id IS NOT NULL, sublist_id, position, rowid`
	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("listing activities by list: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

// ListDueBetween returns activities whose due date falls in [start, end],
// the read path behind the weekly WIP report.
func (r *SQLiteActivityRepo) ListDueBetween(ctx context.Context, start, end time.Time) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE due_date >= ? AND due_date <= ?
		ORDER BY due_date, position, rowid`
	rows, err := r.db.QueryContext(ctx, query, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing activities by due date: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET title = ?, list_id = ?, sublist_id = ?, duration = ?,
		due_date = ?, start_time = ?, is_priority = ?, position = ?, is_active = ?,
		is_completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.Title,
		a.ListID,
		nullableStrToValue(a.SublistID),
		string(a.Duration),
		a.DueDate.Format(dateLayout),
		a.StartTime,
		boolToInt(a.IsPriority),
		a.Position,
		boolToInt(a.IsActive),
		boolToInt(a.IsCompleted),
		nullableTimeToString(a.CompletedAt, time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

// ReorderPositions renumbers the container 1..N: all rows sorted by their
// current position (insertion order on ties) get sequential positions.
// Position zero means "not yet positioned" and sorts after every
// positioned row, so fresh inserts and duplicates are appended.
// The caller is responsible for running this inside the transaction that
// performed the structural change, so the read-then-write pass cannot
// interleave with another mutation on the same container.
func (r *SQLiteActivityRepo) ReorderPositions(ctx context.Context, c Container) error {
	query := `SELECT id FROM activities
		WHERE list_id = ? AND sublist_id IS ?
		ORDER BY position <= 0, position, rowid`
	rows, err := r.db.QueryContext(ctx, query, c.ListID, nullableStrToValue(c.SublistID))
	if err != nil {
		return fmt.Errorf("reading container for reorder: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scanning activity id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating container for reorder: %w", err)
	}

	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE activities SET position = ? WHERE id = ?`, i+1, id); err != nil {
			return fmt.Errorf("renumbering activity %s: %w", id, err)
		}
	}
	return nil
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var sublistID, completedAt sql.NullString
	var duration, dueDate, createdAt, updatedAt string
	var isPriority, isActive, isCompleted int
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.ListID,
		&sublistID,
		&duration,
		&dueDate,
		&a.StartTime,
		&isPriority,
		&a.Position,
		&isActive,
		&isCompleted,
		&completedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.SublistID = strFromNullable(sublistID)
	a.Duration = domain.DurationSize(duration)
	a.DueDate, _ = time.Parse(dateLayout, dueDate)
	a.IsPriority = intToBool(isPriority)
	a.IsActive = intToBool(isActive)
	a.IsCompleted = intToBool(isCompleted)
	a.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &a, nil
}

func scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}
