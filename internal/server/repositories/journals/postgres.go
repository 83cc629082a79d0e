// Package journals stores journal entries. Deleted entries stay in the
// table with is_deleted set and are invisible to every read.
package journals

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/dbx"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

const columns = `id, user_id, entry_date, entry_time, content, mood, tags::text, context, life_phase_name, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.JournalEntry) error {
	query := `
		INSERT INTO journals (id, user_id, entry_date, entry_time, content, mood, tags, context, life_phase_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Date, e.Time, e.Content, e.Mood, e.Tags, e.Context, e.LifePhaseName, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update rewrites the editable fields of a live entry owned by e.UserID.
func (r *PostgresRepository) Update(ctx context.Context, e *models.JournalEntry) error {
	query := `
		UPDATE journals
		SET entry_date = $1, entry_time = $2, content = $3, mood = $4, tags = $5,
			context = $6, life_phase_name = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10 AND NOT is_deleted
	`
	res, err := r.db.ExecContext(ctx, query,
		e.Date, e.Time, e.Content, e.Mood, e.Tags, e.Context, e.LifePhaseName, e.UpdatedAt, e.ID, e.UserID)
	return expectOne(res, err)
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, userID, id string) error {
	query := `
		UPDATE journals SET is_deleted = TRUE, updated_at = now()
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	return expectOne(res, err)
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	query := `SELECT ` + columns + ` FROM journals WHERE id = $1 AND user_id = $2 AND NOT is_deleted`

	e, err := scan(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// List returns the user's live entries matching f, newest date first and
// latest time first within a day.
func (r *PostgresRepository) List(ctx context.Context, userID string, f Filter) ([]*models.JournalEntry, error) {
	var w dbx.Where
	w.Add("user_id = ?", userID)
	w.Add("NOT is_deleted")
	w.AddIf(!f.Date.IsZero(), "entry_date = ?", f.Date)
	w.AddIf(f.Query != "", "content ILIKE ?", dbx.Contains(f.Query))
	w.AddIf(f.Mood != "", "mood = ?", f.Mood)
	w.AddIf(f.Context != "", "context = ?", f.Context)
	w.AddIf(f.Phase != "", "life_phase_name = ?", f.Phase)
	if f.Tag != "" {
		tag, _ := json.Marshal([]string{f.Tag})
		w.Add("tags @> ?::jsonb", string(tag))
	}

	query := `SELECT ` + columns + ` FROM journals` + w.SQL() +
		` ORDER BY entry_date DESC NULLS LAST, entry_time DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to select journals: %w", err)
	}
	defer rows.Close()

	result := []*models.JournalEntry{}
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(s dbx.Scanner) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := s.Scan(&e.ID, &e.UserID, &e.Date, &e.Time, &e.Content, &e.Mood, &e.Tags,
		&e.Context, &e.LifePhaseName, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func expectOne(res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
