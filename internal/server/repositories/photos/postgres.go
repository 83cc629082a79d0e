package photos

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

const columns = `id, user_id, storage_key, image_url, location, mood, tags::text, story, technical_notes, life_phase_name, date_uploaded`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Photo) error {
	query := `
		INSERT INTO photos (id, user_id, storage_key, image_url, location, mood, tags, story,
			technical_notes, life_phase_name, date_uploaded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.StorageKey, p.ImageURL, p.Location, p.Mood, p.Tags, p.Story,
		p.TechnicalNotes, p.LifePhaseName, p.DateUploaded)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Photo, error) {
	query := `SELECT ` + columns + ` FROM photos WHERE id = $1 AND user_id = $2`
	return r.one(ctx, query, id, userID)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (*models.Photo, error) {
	query := `DELETE FROM photos WHERE id = $1 AND user_id = $2 RETURNING ` + columns
	return r.one(ctx, query, id, userID)
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Photo, error) {
	p, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, f Filter) ([]*models.Photo, error) {
	var w dbx.Where
	w.Add("user_id = ?", userID)
	w.AddIf(f.Mood != "", "mood = ?", f.Mood)
	w.AddIf(f.Phase != "", "life_phase_name = ?", f.Phase)
	if f.Tag != "" {
		tag, _ := json.Marshal([]string{f.Tag})
		w.Add("tags @> ?::jsonb", string(tag))
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM photos`+w.SQL()+` ORDER BY date_uploaded DESC`, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to select photos: %w", err)
	}
	defer rows.Close()

	result := []*models.Photo{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(s dbx.Scanner) (*models.Photo, error) {
	var p models.Photo
	err := s.Scan(&p.ID, &p.UserID, &p.StorageKey, &p.ImageURL, &p.Location, &p.Mood, &p.Tags,
		&p.Story, &p.TechnicalNotes, &p.LifePhaseName, &p.DateUploaded)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
