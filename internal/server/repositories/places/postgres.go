package places

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

const columns = `id, user_id, name, place_type, status, latitude, longitude, date_visited, experience_note, mood, tags::text, life_phase_name`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Place) error {
	query := `
		INSERT INTO places (id, user_id, name, place_type, status, latitude, longitude, date_visited,
			experience_note, mood, tags, life_phase_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.Type, p.Status, p.Latitude, p.Longitude, p.DateVisited,
		p.ExperienceNote, p.Mood, p.Tags, p.LifePhaseName)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Place) error {
	query := `
		UPDATE places
		SET name = $1, place_type = $2, status = $3, latitude = $4, longitude = $5, date_visited = $6,
			experience_note = $7, mood = $8, tags = $9, life_phase_name = $10
		WHERE id = $11 AND user_id = $12
	`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Type, p.Status, p.Latitude, p.Longitude, p.DateVisited,
		p.ExperienceNote, p.Mood, p.Tags, p.LifePhaseName, p.ID, p.UserID)
	return expectOne(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM places WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err)
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Place, error) {
	query := `SELECT ` + columns + ` FROM places WHERE id = $1 AND user_id = $2`
	p, err := scan(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// List orders by visit date desc; places never visited come last.
func (r *PostgresRepository) List(ctx context.Context, userID string, f Filter) ([]*models.Place, error) {
	var w dbx.Where
	w.Add("user_id = ?", userID)
	w.AddIf(f.Status != "", "status = ?", f.Status)
	w.AddIf(f.Type != "", "place_type = ?", f.Type)
	w.AddIf(f.Phase != "", "life_phase_name = ?", f.Phase)
	if f.Tag != "" {
		tag, _ := json.Marshal([]string{f.Tag})
		w.Add("tags @> ?::jsonb", string(tag))
	}

	query := `SELECT ` + columns + ` FROM places` + w.SQL() + ` ORDER BY date_visited DESC NULLS LAST, name`
	rows, err := r.db.QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to select places: %w", err)
	}
	defer rows.Close()

	result := []*models.Place{}
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

func scan(s dbx.Scanner) (*models.Place, error) {
	var p models.Place
	err := s.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.Status, &p.Latitude, &p.Longitude,
		&p.DateVisited, &p.ExperienceNote, &p.Mood, &p.Tags, &p.LifePhaseName)
	if err != nil {
		return nil, err
	}
	return &p, nil
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
