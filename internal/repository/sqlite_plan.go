package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dkoester/paideia/internal/db"
	"github.com/dkoester/paideia/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Plan
// blocks are stored as a JSON column since they are only ever read back
// whole.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.SavedPlan) error {
	blocks, err := json.Marshal(p.Blocks)
	if err != nil {
		return fmt.Errorf("encoding plan blocks: %w", err)
	}
	query := `INSERT INTO saved_plans
		(id, label, desired_start, gap_events, gap_weeks, category_switches, blocks_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Label,
		p.DesiredStart.UTC().Format(time.RFC3339),
		p.GapEvents,
		p.GapWeeks,
		p.CategorySwitches,
		string(blocks),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting saved plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Get(ctx context.Context, id string) (*domain.SavedPlan, error) {
	query := `SELECT id, label, desired_start, gap_events, gap_weeks, category_switches, blocks_json, created_at
		FROM saved_plans WHERE id = ?`
	p, err := scanSavedPlan(r.db.QueryRowContext(ctx, query, id))
	if err != nil && errors.Is(err, ErrNotFound) {
		// Listings show truncated IDs; accept them back as a prefix.
		return r.getByPrefix(ctx, id)
	}
	return p, err
}

func (r *SQLitePlanRepo) getByPrefix(ctx context.Context, prefix string) (*domain.SavedPlan, error) {
	if prefix == "" {
		return nil, fmt.Errorf("saved plan: %w", ErrNotFound)
	}
	query := `SELECT id, label, desired_start, gap_events, gap_weeks, category_switches, blocks_json, created_at
		FROM saved_plans WHERE id LIKE ? || '%'`
	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("looking up saved plan: %w", err)
	}
	defer rows.Close()

	var found *domain.SavedPlan
	for rows.Next() {
		p, err := scanSavedPlan(rows)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return nil, fmt.Errorf("saved plan id %q is ambiguous", prefix)
		}
		found = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("looking up saved plan: %w", err)
	}
	if found == nil {
		return nil, fmt.Errorf("saved plan %s: %w", prefix, ErrNotFound)
	}
	return found, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.SavedPlan, error) {
	query := `SELECT id, label, desired_start, gap_events, gap_weeks, category_switches, blocks_json, created_at
		FROM saved_plans ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing saved plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.SavedPlan
	for rows.Next() {
		p, err := scanSavedPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	// Resolve prefixes the same way Get does so list/show/rm agree on
	// what counts as an ID.
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_plans WHERE id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("deleting saved plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting saved plan: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("saved plan %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanSavedPlan(row rowScanner) (*domain.SavedPlan, error) {
	var p domain.SavedPlan
	var desiredStart, blocksJSON, createdAt string
	err := row.Scan(
		&p.ID,
		&p.Label,
		&desiredStart,
		&p.GapEvents,
		&p.GapWeeks,
		&p.CategorySwitches,
		&blocksJSON,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("saved plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning saved plan: %w", err)
	}

	if p.DesiredStart, err = time.Parse(time.RFC3339, desiredStart); err != nil {
		return nil, fmt.Errorf("parsing desired start: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if err := json.Unmarshal([]byte(blocksJSON), &p.Blocks); err != nil {
		return nil, fmt.Errorf("decoding plan blocks: %w", err)
	}
	return &p, nil
}
