package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkoester/paideia/internal/db"
	"github.com/dkoester/paideia/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Upsert(ctx context.Context, n *domain.Note) error {
	query := `INSERT OR REPLACE INTO module_notes (module_code, text, updated_at)
		VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ModuleCode,
		n.Text,
		n.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) Get(ctx context.Context, moduleCode string) (*domain.Note, error) {
	query := `SELECT module_code, text, updated_at FROM module_notes WHERE module_code = ?`
	return scanNote(r.db.QueryRowContext(ctx, query, moduleCode))
}

func (r *SQLiteNoteRepo) List(ctx context.Context) ([]*domain.Note, error) {
	query := `SELECT module_code, text, updated_at FROM module_notes ORDER BY module_code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, moduleCode string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM module_notes WHERE module_code = ?`, moduleCode)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("note %s: %w", moduleCode, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*domain.Note, error) {
	var n domain.Note
	var updatedAt string
	if err := row.Scan(&n.ModuleCode, &n.Text, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing note timestamp: %w", err)
	}
	n.UpdatedAt = ts
	return &n, nil
}
