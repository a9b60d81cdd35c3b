package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/domain"
)

// listColumns is the canonical SELECT column list for lists.
const listColumns = `id, title, position, created_at, updated_at`

// SQLiteListRepo implements ListRepo using a SQLite database.
type SQLiteListRepo struct {
	db db.DBTX
}

// NewSQLiteListRepo creates a new SQLiteListRepo.
func NewSQLiteListRepo(conn db.DBTX) *SQLiteListRepo {
	return &SQLiteListRepo{db: conn}
}

func (r *SQLiteListRepo) Create(ctx context.Context, l *domain.List) error {
	query := `INSERT INTO lists (id, title, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Title,
		l.Position,
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting list: %w", err)
	}
	return nil
}

func (r *SQLiteListRepo) GetByID(ctx context.Context, id string) (*domain.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanList(row)
}

func (r *SQLiteListRepo) List(ctx context.Context) ([]*domain.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists ORDER BY position, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	defer rows.Close()

	var lists []*domain.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lists: %w", err)
	}
	return lists, nil
}

func (r *SQLiteListRepo) Update(ctx context.Context, l *domain.List) error {
	query := `UPDATE lists SET title = ?, position = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		l.Title,
		l.Position,
		l.UpdatedAt.Format(time.RFC3339),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating list: %w", err)
	}
	return nil
}

func (r *SQLiteListRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting list: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*domain.List, error) {
	var l domain.List
	var createdAt, updatedAt string
	err := row.Scan(&l.ID, &l.Title, &l.Position, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("list: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning list: %w", err)
	}
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	l.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &l, nil
}
