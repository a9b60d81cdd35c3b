package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/domain"
)

// sublistColumns is the canonical SELECT column list for sublists.
const sublistColumns = `id, list_id, title, position, created_at, updated_at`

// SQLiteSublistRepo implements SublistRepo using a SQLite database.
type SQLiteSublistRepo struct {
	db db.DBTX
}

// NewSQLiteSublistRepo creates a new SQLiteSublistRepo.
func NewSQLiteSublistRepo(conn db.DBTX) *SQLiteSublistRepo {
	return &SQLiteSublistRepo{db: conn}
}

func (r *SQLiteSublistRepo) Create(ctx context.Context, s *domain.Sublist) error {
	query := `INSERT INTO sublists (id, list_id, title, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ListID,
		s.Title,
		s.Position,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sublist: %w", err)
	}
	return nil
}

func (r *SQLiteSublistRepo) GetByID(ctx context.Context, id string) (*domain.Sublist, error) {
	query := `SELECT ` + sublistColumns + ` FROM sublists WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanSublist(row)
}

func (r *SQLiteSublistRepo) ListByList(ctx context.Context, listID string) ([]*domain.Sublist, error) {
	query := `SELECT ` + sublistColumns + ` FROM sublists WHERE list_id = ? ORDER BY position, rowid`
	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("listing sublists: %w", err)
	}
	defer rows.Close()

	var sublists []*domain.Sublist
	for rows.Next() {
		s, err := scanSublist(rows)
		if err != nil {
			return nil, err
		}
		sublists = append(sublists, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sublists: %w", err)
	}
	return sublists, nil
}

func (r *SQLiteSublistRepo) Update(ctx context.Context, s *domain.Sublist) error {
	query := `UPDATE sublists SET title = ?, position = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Title,
		s.Position,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sublist: %w", err)
	}
	return nil
}

func (r *SQLiteSublistRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sublists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting sublist: %w", err)
	}
	return nil
}

func scanSublist(row rowScanner) (*domain.Sublist, error) {
	var s domain.Sublist
	var createdAt, updatedAt string
	err := row.Scan(&s.ID, &s.ListID, &s.Title, &s.Position, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sublist: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning sublist: %w", err)
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &s, nil
}
