package memories

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

const columns = `id, user_id, short_text, mood, tags::text, life_phase_name, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Memory) error {
	query := `
		INSERT INTO memories (id, user_id, short_text, mood, tags, life_phase_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.UserID, m.ShortText, m.Mood, m.Tags, m.LifePhaseName, m.Timestamp); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM memories WHERE id = $1 AND user_id = $2`, id, userID)
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

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Memory, error) {
	query := `SELECT ` + columns + ` FROM memories WHERE id = $1 AND user_id = $2`
	m, err := scan(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// List returns memories newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string, f Filter) ([]*models.Memory, error) {
	var w dbx.Where
	w.Add("user_id = ?", userID)
	w.AddIf(f.Mood != "", "mood = ?", f.Mood)
	w.AddIf(f.Phase != "", "life_phase_name = ?", f.Phase)
	if f.Tag != "" {
		tag, _ := json.Marshal([]string{f.Tag})
		w.Add("tags @> ?::jsonb", string(tag))
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM memories`+w.SQL()+` ORDER BY created_at DESC`, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to select memories: %w", err)
	}
	defer rows.Close()

	result := []*models.Memory{}
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(s dbx.Scanner) (*models.Memory, error) {
	var m models.Memory
	if err := s.Scan(&m.ID, &m.UserID, &m.ShortText, &m.Mood, &m.Tags, &m.LifePhaseName, &m.Timestamp); err != nil {
		return nil, err
	}
	return &m, nil
}
