package tastes

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

const columns = `id, user_id, taste_type, title, rating, date_consumed, personal_note, mood, tags::text, life_phase_name`

const (
	orderByDate   = ` ORDER BY date_consumed DESC NULLS LAST, title`
	orderByRating = ` ORDER BY rating DESC, date_consumed DESC NULLS LAST, title`
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Taste) error {
	query := `
		INSERT INTO tastes (id, user_id, taste_type, title, rating, date_consumed, personal_note, mood, tags, life_phase_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Type, t.Title, t.Rating, t.DateConsumed, t.PersonalNote, t.Mood, t.Tags, t.LifePhaseName)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.Taste) error {
	query := `
		UPDATE tastes
		SET taste_type = $1, title = $2, rating = $3, date_consumed = $4, personal_note = $5,
			mood = $6, tags = $7, life_phase_name = $8
		WHERE id = $9 AND user_id = $10
	`
	res, err := r.db.ExecContext(ctx, query,
		t.Type, t.Title, t.Rating, t.DateConsumed, t.PersonalNote, t.Mood, t.Tags, t.LifePhaseName, t.ID, t.UserID)
	return expectOne(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tastes WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err)
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Taste, error) {
	query := `SELECT ` + columns + ` FROM tastes WHERE id = $1 AND user_id = $2`
	t, err := scan(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, f Filter) ([]*models.Taste, error) {
	var w dbx.Where
	w.Add("user_id = ?", userID)
	w.AddIf(f.Type != "", "taste_type = ?", f.Type)
	w.AddIf(f.Phase != "", "life_phase_name = ?", f.Phase)
	if f.Query != "" {
		p := dbx.Contains(f.Query)
		w.Add("(title ILIKE ? OR personal_note ILIKE ?)", p, p)
	}
	if f.Tag != "" {
		tag, _ := json.Marshal([]string{f.Tag})
		w.Add("tags @> ?::jsonb", string(tag))
	}

	order := orderByDate
	if f.SortByRating {
		order = orderByRating
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM tastes`+w.SQL()+order, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tastes: %w", err)
	}
	defer rows.Close()

	result := []*models.Taste{}
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(s dbx.Scanner) (*models.Taste, error) {
	var t models.Taste
	err := s.Scan(&t.ID, &t.UserID, &t.Type, &t.Title, &t.Rating, &t.DateConsumed,
		&t.PersonalNote, &t.Mood, &t.Tags, &t.LifePhaseName)
	if err != nil {
		return nil, err
	}
	return &t, nil
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
